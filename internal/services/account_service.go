package services

import (
	"fmt"
	"time"

	"curio/internal/auth"
	"curio/internal/config"
	"curio/internal/models"
	"curio/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// AuthResult is returned by register and login.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AccountService owns registration, login and the scheduled account
// deletion lifecycle (pending -> completed | cancelled).
type AccountService interface {
	Register(email, password string) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
	RequestDeletion(userID uint) (*models.AccountDeletion, error)
	CancelDeletion(userID uint) (*models.AccountDeletion, error)
	PendingDeletion(userID uint) (*models.AccountDeletion, error)
	ExecuteDue(now time.Time) (int, error)
}

type accountServiceImpl struct {
	userRepo      repository.UserRepository
	deletionRepo  repository.DeletionRepository
	configuration config.Configuration
}

func NewAccountService(
	userRepository repository.UserRepository,
	deletionRepository repository.DeletionRepository,
	configuration *config.Configuration,
) AccountService {
	return &accountServiceImpl{
		userRepo:      userRepository,
		deletionRepo:  deletionRepository,
		configuration: *configuration,
	}
}

func (s *accountServiceImpl) Register(email, password string) (*AuthResult, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, validationf("password must be at least %d characters", minPasswordLength)
	}
	existing, err := s.userRepo.FindByEmail(normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, conflictf("account %s", normalized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{Email: normalized, PasswordHash: string(hash)}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return s.issueToken(user)
}

func (s *accountServiceImpl) Login(email, password string) (*AuthResult, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByEmail(normalized)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: bad credentials", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: bad credentials", ErrUnauthorized)
	}
	return s.issueToken(user)
}

func (s *accountServiceImpl) issueToken(user *models.User) (*AuthResult, error) {
	ttl := time.Duration(s.configuration.Auth.TokenTTLHours) * time.Hour
	token, err := auth.GenerateToken(s.configuration.Auth.Secret, user.ID, user.Email, ttl)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// RequestDeletion schedules the account wipe after the configured grace
// period. A second request while one is pending is a conflict.
func (s *accountServiceImpl) RequestDeletion(userID uint) (*models.AccountDeletion, error) {
	pending, err := s.deletionRepo.FindPendingByUser(userID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, conflictf("deletion already scheduled for %s", pending.ScheduledAt.Format(time.RFC3339))
	}
	grace := time.Duration(s.configuration.Deletion.GraceHours) * time.Hour
	deletion := &models.AccountDeletion{
		UserID:      userID,
		ScheduledAt: time.Now().Add(grace),
		Status:      models.DeletionPending,
	}
	if err := s.deletionRepo.Create(deletion); err != nil {
		return nil, err
	}
	return deletion, nil
}

func (s *accountServiceImpl) CancelDeletion(userID uint) (*models.AccountDeletion, error) {
	pending, err := s.deletionRepo.FindPendingByUser(userID)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, notFoundf("no pending deletion")
	}
	pending.Status = models.DeletionCancelled
	if err := s.deletionRepo.Update(pending); err != nil {
		return nil, err
	}
	return pending, nil
}

func (s *accountServiceImpl) PendingDeletion(userID uint) (*models.AccountDeletion, error) {
	pending, err := s.deletionRepo.FindPendingByUser(userID)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, notFoundf("no pending deletion")
	}
	return pending, nil
}

// ExecuteDue wipes every account whose grace period has elapsed and
// reports how many it processed. Each row is claimed with a conditional
// status update before the purge, so a cancellation racing the sweep wins.
func (s *accountServiceImpl) ExecuteDue(now time.Time) (int, error) {
	due, err := s.deletionRepo.FindDue(now)
	if err != nil {
		return 0, err
	}
	executed := 0
	for i := range due {
		deletion := &due[i]
		claimed, err := s.deletionRepo.ClaimForExecution(deletion.ID)
		if err != nil {
			return executed, err
		}
		if !claimed {
			continue
		}
		if err := s.deletionRepo.PurgeUser(deletion.UserID); err != nil {
			return executed, err
		}
		executed++
	}
	return executed, nil
}
