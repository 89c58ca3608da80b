package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/user/reelfind/internal/model"
	"gorm.io/gorm"
)

// ErrEmailTaken is returned by Insert when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository is the credential store boundary. One repository serves
// both registration and sign-in, so a registered user can always sign in.
type UserRepository interface {
	// FindByEmail does an exact, case-sensitive match and returns
	// (nil, nil) when no user exists.
	FindByEmail(email string) (*model.User, error)
	FindByID(id string) (*model.User, error)
	Insert(user *model.User) error
}

// seed account kept in sync with the documented demo credentials
// (demo@example.com / password123).
const (
	seedUserEmail = "demo@example.com"
	seedUserName  = "Demo User"
	seedUserHash  = "$2a$12$WUuZazHJMmu6upEK2BjQEegn0myX87pWEyq/0Ghk2HUThbEh1mKY2"
)

// MemoryUserRepository is a process-lifetime store.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*model.User
	byEmail map[string]*model.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	r := &MemoryUserRepository{
		byID:    make(map[string]*model.User),
		byEmail: make(map[string]*model.User),
	}
	r.seed()
	return r
}

func (r *MemoryUserRepository) seed() {
	u := &model.User{
		ID:           "1",
		Email:        seedUserEmail,
		Name:         seedUserName,
		PasswordHash: seedUserHash,
		CreatedAt:    time.Now(),
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
}

func (r *MemoryUserRepository) FindByEmail(email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *MemoryUserRepository) FindByID(id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *MemoryUserRepository) Insert(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[user.Email]; exists {
		return ErrEmailTaken
	}
	copied := *user
	r.byID[copied.ID] = &copied
	r.byEmail[copied.Email] = &copied
	return nil
}

// GormUserRepository is the postgres-backed store.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) Insert(user *model.User) error {
	existing, err := r.FindByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}
	return r.db.Create(user).Error
}
