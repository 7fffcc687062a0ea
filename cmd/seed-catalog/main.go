package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/campuspath/campuspath-backend/internal/config"
	"github.com/campuspath/campuspath-backend/internal/database"
	"github.com/campuspath/campuspath-backend/internal/logger"
	"github.com/campuspath/campuspath-backend/internal/model"
	"github.com/campuspath/campuspath-backend/internal/repository"
)

// catalogFile is the seed document layout: one JSON file carrying the full
// catalog. Requirement documents stay raw so the repository validates
// their shape on insert.
type catalogFile struct {
	Colleges     []model.College            `json:"colleges"`
	Subjects     []model.Subject            `json:"subjects"`
	Courses      []model.Course             `json:"courses"`
	Requirements map[string]json.RawMessage `json:"requirements"`
	Majors       []model.Major              `json:"majors"`
}

func main() {
	var path string
	flag.StringVar(&path, "file", "data/catalog.json", "Path to the catalog seed file")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Failed to read seed file")
	}

	var catalog catalogFile
	if err := json.Unmarshal(raw, &catalog); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse seed file")
	}

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	catalogRepo := repository.NewCatalogRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	reqRepo := repository.NewRequirementRepository(pool)
	majorRepo := repository.NewMajorRepository(pool)

	fmt.Printf("=== Seeding catalog from %s ===\n", path)

	for _, college := range catalog.Colleges {
		if err := catalogRepo.UpsertCollege(ctx, college); err != nil {
			log.Fatal().Err(err).Str("college", college.ID).Msg("Failed to seed college")
		}
	}
	fmt.Printf("Seeded %d colleges\n", len(catalog.Colleges))

	for _, subject := range catalog.Subjects {
		if err := catalogRepo.UpsertSubject(ctx, subject); err != nil {
			log.Fatal().Err(err).Str("subject", subject.Code).Msg("Failed to seed subject")
		}
	}
	fmt.Printf("Seeded %d subjects\n", len(catalog.Subjects))

	courseCount := 0
	for _, course := range catalog.Courses {
		if err := courseRepo.Upsert(ctx, course); err != nil {
			fmt.Printf("Error seeding course %s: %v\n", course.ID, err)
			continue
		}
		courseCount++
		if courseCount%100 == 0 {
			fmt.Printf("Seeded %d courses...\n", courseCount)
		}
	}
	fmt.Printf("Seeded %d/%d courses\n", courseCount, len(catalog.Courses))

	reqCount := 0
	for id, doc := range catalog.Requirements {
		if err := reqRepo.Upsert(ctx, id, doc); err != nil {
			fmt.Printf("Error seeding requirement %s: %v\n", id, err)
			continue
		}
		reqCount++
	}
	fmt.Printf("Seeded %d/%d requirements\n", reqCount, len(catalog.Requirements))

	for _, major := range catalog.Majors {
		if err := majorRepo.Upsert(ctx, major); err != nil {
			log.Fatal().Err(err).Str("major", major.ID).Msg("Failed to seed major")
		}
	}
	fmt.Printf("Seeded %d majors\n", len(catalog.Majors))

	fmt.Println("\nSeed completed!")
}
