package services

import (
	"context"
	"errors"
	"time"

	"ApparelStoreAPI/internal/model"
	"ApparelStoreAPI/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxFailedLogins = 5
	lockoutDuration = 15 * time.Minute
)

var (
	ErrAccountLocked = errors.New("account temporarily locked")
	ErrWrongPassword = errors.New("current password is incorrect")
)

type AdminService struct {
	Admins *repository.AdminRepository
	Log    *zap.Logger
}

func NewAdminService(ar *repository.AdminRepository, log *zap.Logger) *AdminService {
	return &AdminService{Admins: ar, Log: log}
}

// Login authenticates a back-office operator. Failed attempts are
// counted; the account locks for 15 minutes after the 5th failure.
// A successful login clears the counter and the lock.
func (s *AdminService) Login(ctx context.Context, email, password string) (*model.AdminUser, error) {
	a, err := s.Admins.GetByEmail(ctx, email)
	if err != nil {
		// do not reveal whether the account exists
		return nil, ErrInvalidCredentials
	}
	now := time.Now()
	if a.LockedUntil != nil && now.Before(*a.LockedUntil) {
		return nil, ErrAccountLocked
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		lockedUntil := nextLockout(a.FailedAttempts+1, now)
		if recErr := s.Admins.RecordFailedLogin(ctx, a.AdminID, lockedUntil); recErr != nil {
			s.Log.Error("recording failed login", zap.Int64("adminid", a.AdminID), zap.Error(recErr))
		}
		return nil, ErrInvalidCredentials
	}
	if a.FailedAttempts > 0 || a.LockedUntil != nil {
		if err := s.Admins.ClearLockout(ctx, a.AdminID); err != nil {
			s.Log.Error("clearing lockout", zap.Int64("adminid", a.AdminID), zap.Error(err))
		}
	}
	a.PasswordHash = ""
	return a, nil
}

// ChangePassword requires re-entry of the current password. Success also
// resets failed_attempts and clears locked_until.
func (s *AdminService) ChangePassword(ctx context.Context, adminID int64, currentPassword, newPassword string) error {
	a, err := s.Admins.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}
	if len(newPassword) < MinPasswordLen {
		return errors.New("password too short")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Admins.UpdatePassword(ctx, adminID, string(hash))
}

// nextLockout returns the lockout timestamp a failed attempt produces,
// or nil while the attempt count is still under the threshold.
func nextLockout(failedAttempts int, now time.Time) *time.Time {
	if failedAttempts < maxFailedLogins {
		return nil
	}
	t := now.Add(lockoutDuration)
	return &t
}
