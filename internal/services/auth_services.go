package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"ApparelStoreAPI/internal/model"
	"ApparelStoreAPI/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLen = 8

	resetCodeTTL = time.Hour
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrResetInvalid       = errors.New("invalid or expired code")
)

type AuthService struct {
	Customers *repository.CustomerRepository
	Validator EmailValidator
	Mailer    Mailer
	Log       *zap.Logger
}

func NewAuthService(cr *repository.CustomerRepository, ev EmailValidator, m Mailer, log *zap.Logger) *AuthService {
	return &AuthService{Customers: cr, Validator: ev, Mailer: m, Log: log}
}

func (s *AuthService) validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

func (s *AuthService) validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("password too short: must be at least %d characters", MinPasswordLen)
	}
	return nil
}

// Register creates a customer account and sends the welcome email.
func (s *AuthService) Register(ctx context.Context, name, email, phone, password string) (int64, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" {
		return 0, errors.New("name is required")
	}
	if err := s.validateEmail(email); err != nil {
		return 0, err
	}
	if !phoneRegex.MatchString(phone) {
		return 0, errors.New("invalid phone number")
	}
	if err := s.validatePassword(password); err != nil {
		return 0, err
	}
	if err := s.Validator.Validate(ctx, email); err != nil {
		return 0, err
	}
	exists, err := s.Customers.EmailOrPhoneExists(ctx, email, phone)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errors.New("email or phone already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	id, err := s.Customers.Create(ctx, name, email, phone, string(hash))
	if err != nil {
		return 0, err
	}
	// welcome mail failure should not fail the registration
	if err := s.Mailer.SendWelcomeEmail(ctx, email, name); err != nil {
		s.Log.Warn("welcome email failed", zap.String("email", email), zap.Error(err))
	}
	return id, nil
}

// Login authenticates using email + password and returns the customer
// (without passwordhash).
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Customer, error) {
	cu, err := s.Customers.GetByEmail(ctx, email)
	if err != nil {
		// do not reveal whether email exists
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cu.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	// zero out password before returning
	cu.PasswordHash = ""
	return cu, nil
}

// RequestPasswordReset issues a one-time 6-digit code valid for one hour
// and emails it. Unknown accounts still get a success-shaped outcome
// after a short randomized delay, so the endpoint does not reveal which
// emails exist.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	cu, err := s.Customers.GetByEmail(ctx, email)
	if err != nil {
		sleepJitter(ctx, 100*time.Millisecond, 300*time.Millisecond)
		return nil
	}

	code, err := generateResetCode()
	if err != nil {
		return err
	}
	expiry := time.Now().Add(resetCodeTTL)
	if err := s.Customers.SetResetToken(ctx, cu.CustomerID, code, expiry); err != nil {
		return err
	}
	if err := s.Mailer.SendPasswordResetEmail(ctx, cu.Email, code); err != nil {
		s.Log.Error("reset email failed", zap.Int64("customerid", cu.CustomerID), zap.Error(err))
		return err
	}
	return nil
}

// ResetPassword redeems a reset code. Every failure mode (no code issued,
// wrong code, expired code, unknown email) collapses into ErrResetInvalid
// so the caller cannot learn which check failed.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := s.validatePassword(newPassword); err != nil {
		return err
	}
	cu, err := s.Customers.GetByEmail(ctx, email)
	if err != nil {
		return ErrResetInvalid
	}
	if !resetCodeValid(cu, code, time.Now()) {
		return ErrResetInvalid
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	// writes the hash and clears code+expiry in one statement
	return s.Customers.CompletePasswordReset(ctx, cu.CustomerID, string(hash))
}

// resetCodeValid checks the one-time code against the customer record:
// a code must be set, match exactly, and not be past its expiry.
func resetCodeValid(cu *model.Customer, code string, now time.Time) bool {
	if cu.ResetToken == nil || cu.ResetTokenExpiry == nil {
		return false
	}
	if code == "" || *cu.ResetToken != code {
		return false
	}
	return now.Before(*cu.ResetTokenExpiry)
}

// generateResetCode returns a uniformly random 6-digit numeric code.
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// sleepJitter blocks for a random duration in [min, max) or until ctx is done.
func sleepJitter(ctx context.Context, min, max time.Duration) {
	span := big.NewInt(int64(max - min))
	n, err := rand.Int(rand.Reader, span)
	d := min
	if err == nil {
		d += time.Duration(n.Int64())
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
