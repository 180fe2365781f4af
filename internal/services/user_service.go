package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hiltim-backend/internal/models"
	"hiltim-backend/internal/repository"
)

// UserResult is the outcome of an account operation.
type UserResult struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// UserService implements the account stubs. There is no credential
// handling anywhere: registering stores a profile, logging in resolves
// or fabricates one from an email address.
type UserService struct {
	repo   *repository.UserRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewUserService(repo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, logger: logger, now: time.Now}
}

// Register creates a new account. The email must not be taken.
func (s *UserService) Register(email, firstName, lastName, phone, preferences string) UserResult {
	email = strings.TrimSpace(email)
	if email == "" {
		return UserResult{Success: false, Error: "Email is required"}
	}

	user := models.User{
		ID:          uuid.NewString(),
		Email:       email,
		FirstName:   firstName,
		LastName:    lastName,
		Phone:       phone,
		DateCreated: s.now().Format(dateLayout),
		Preferences: preferences,
	}

	if err := s.repo.Create(user); err != nil {
		return UserResult{Success: false, Error: err.Error()}
	}

	s.logger.Info("User account created",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
	)
	return UserResult{Success: true, User: &user, Message: "Account created successfully"}
}

// Login resolves an email to an account. A known email returns the
// stored profile; an unknown one fabricates a guest profile without
// persisting it, matching the no-verification contract.
func (s *UserService) Login(email string) UserResult {
	email = strings.TrimSpace(email)
	if email == "" {
		return UserResult{Success: false, Error: "Please enter your email address"}
	}

	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		s.logger.Error("Failed to look up user", zap.Error(err))
		return UserResult{Success: false, Error: "Failed to look up account"}
	}
	if existing != nil {
		return UserResult{Success: true, User: existing, Message: "Logged in successfully"}
	}

	guest := models.User{
		ID:          uuid.NewString(),
		Email:       email,
		FirstName:   "Guest",
		LastName:    "User",
		DateCreated: s.now().Format(dateLayout),
	}
	return UserResult{Success: true, User: &guest, Message: "Logged in successfully"}
}

// GetByID returns the stored account with the given ID.
func (s *UserService) GetByID(id string) UserResult {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return UserResult{Success: false, Error: "Failed to look up account"}
	}
	if user == nil {
		return UserResult{Success: false, Error: fmt.Sprintf("No account with id %s", id)}
	}
	return UserResult{Success: true, User: user}
}
