package services

import "context"

type EmailValidator interface {
	Validate(ctx context.Context, email string) error
}

// LocalValidator accepts every address. It is the fallback when no
// reputation service is configured; format checks still run in the
// auth service before Validate is called.
type LocalValidator struct{}

func NewLocalValidator() *LocalValidator {
	return &LocalValidator{}
}

func (v *LocalValidator) Validate(ctx context.Context, email string) error {
	return nil
}
