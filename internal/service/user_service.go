package service

import (
	"context"
	"errors"

	"github.com/campuspath/campuspath-backend/internal/model"
	"github.com/campuspath/campuspath-backend/internal/planner"
	"github.com/campuspath/campuspath-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// ErrEmailTaken is returned when registering with an email that already
// has an account.
var ErrEmailTaken = errors.New("email already registered")

// UserService handles accounts and the major/college profile selection.
type UserService struct {
	userRepo *repository.UserRepository
	catalog  *CatalogService
	auth     *AuthService
	log      zerolog.Logger
}

func NewUserService(userRepo *repository.UserRepository, catalog *CatalogService, auth *AuthService, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		catalog:  catalog,
		auth:     auth,
		log:      log.With().Str("component", "user_service").Logger(),
	}
}

// Register creates an account and returns it with a signed token.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error) {
	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.auth.GenerateToken(user.ID.String())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a signed token.
func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (*model.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Same error for unknown email and bad password.
		return nil, "", ErrInvalidCredentials
	}
	if err := s.auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(user.ID.String())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetByID loads one account.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile stores the major/college/concentration selection after
// checking the referenced major exists and carries an entry for the
// college.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.User, error) {
	if req.MajorID != nil {
		major, err := s.catalog.GetMajor(ctx, *req.MajorID)
		if err != nil {
			return nil, err
		}
		if req.CollegeID != nil {
			if _, ok := planner.ResolveCollegeRequirements(*major, *req.CollegeID); !ok {
				return nil, ErrUnknownCollege
			}
		}
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, req.MajorID, req.CollegeID, req.Concentration); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}
