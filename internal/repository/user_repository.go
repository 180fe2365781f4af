package repository

import (
	"fmt"
	"strings"
	"sync"

	"hiltim-backend/internal/csvdb"
	"hiltim-backend/internal/models"
	"hiltim-backend/internal/storage"
)

// userHeaders is the column order of the users CSV.
var userHeaders = []string{"id", "email", "firstName", "lastName", "phone", "dateCreated", "preferences"}

// UserRepository persists guest accounts as an append-only CSV. Unlike
// the booking database it never rewrites existing rows.
type UserRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

// Open writes the header row if the users CSV does not exist yet.
func (r *UserRepository) Open() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.store.Exists() {
		return nil
	}
	if err := r.store.Write(strings.Join(userHeaders, ",") + "\n"); err != nil {
		return fmt.Errorf("initialize users file: %w", err)
	}
	return nil
}

// Create appends a user. A user with the same email must not exist.
func (r *UserRepository) Create(user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	content, err := r.store.Read()
	if err != nil {
		return fmt.Errorf("read users file: %w", err)
	}
	if findUser(content, func(u models.User) bool { return u.Email == user.Email }) != nil {
		return fmt.Errorf("user with email %s already exists", user.Email)
	}

	fields := []string{
		user.ID, user.Email, user.FirstName, user.LastName,
		user.Phone, user.DateCreated, user.Preferences,
	}
	for i, f := range fields {
		fields[i] = csvdb.EscapeField(f)
	}
	if !strings.HasSuffix(content, "\n") && content != "" {
		content += "\n"
	}
	content += strings.Join(fields, ",") + "\n"
	if err := r.store.Write(content); err != nil {
		return fmt.Errorf("append user: %w", err)
	}
	return nil
}

// GetByEmail returns the user with the given email, or nil.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	content, err := r.store.Read()
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}
	return findUser(content, func(u models.User) bool { return u.Email == email }), nil
}

// GetByID returns the user with the given ID, or nil.
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	content, err := r.store.Read()
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}
	return findUser(content, func(u models.User) bool { return u.ID == id }), nil
}

func findUser(content string, match func(models.User) bool) *models.User {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		fields := csvdb.ParseLine(line)
		if len(fields) < len(userHeaders) {
			continue
		}
		user := models.User{
			ID:          fields[0],
			Email:       fields[1],
			FirstName:   fields[2],
			LastName:    fields[3],
			Phone:       fields[4],
			DateCreated: fields[5],
			Preferences: fields[6],
		}
		if match(user) {
			return &user
		}
	}
	return nil
}
