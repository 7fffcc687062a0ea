package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/campuspath/campuspath-backend/internal/config"
	"github.com/campuspath/campuspath-backend/internal/model"
	"github.com/campuspath/campuspath-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// SchedulePersistWorker consumes persist_schedule_queue and UPSERTs
// schedule documents to PostgreSQL. Writes are fire-and-forget from the
// session's point of view: a failed write is logged and the payload
// dropped, the user's in-session state is already applied.
type SchedulePersistWorker struct {
	scheduleRepo *repository.ScheduleRepository
	rdb          *redis.Client
	log          zerolog.Logger
}

// NewSchedulePersistWorker creates a new SchedulePersistWorker.
func NewSchedulePersistWorker(scheduleRepo *repository.ScheduleRepository, rdb *redis.Client, log zerolog.Logger) *SchedulePersistWorker {
	return &SchedulePersistWorker{
		scheduleRepo: scheduleRepo,
		rdb:          rdb,
		log:          log.With().Str("component", "schedule_persist_worker").Logger(),
	}
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *SchedulePersistWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// Drain remaining items before exit.
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *SchedulePersistWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.WorkerKey.PersistScheduleQueue).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	w.persist(ctx, []byte(result[1]))
}

func (w *SchedulePersistWorker) persist(ctx context.Context, raw []byte) {
	var cmd model.PersistCommand
	if err := json.Unmarshal(raw, &cmd); err != nil {
		w.log.Error().Err(err).Msg("Unmarshal error")
		return
	}

	if err := w.scheduleRepo.Upsert(ctx, cmd.UserID, cmd.Schedule); err != nil {
		// Logged only. No retry, no rollback of the session state.
		w.log.Error().Err(err).
			Str("user_id", cmd.UserID).
			Time("issued_at", cmd.IssuedAt).
			Msg("Persist error, dropping write")
	}
}

// drain processes all remaining items in the queue before shutdown.
func (w *SchedulePersistWorker) drain(ctx context.Context) {
	drained := 0
	for {
		result, err := w.rdb.LPop(ctx, config.WorkerKey.PersistScheduleQueue).Result()
		if err != nil {
			break
		}
		w.persist(ctx, []byte(result))
		drained++
	}

	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained remaining items")
	}
}
