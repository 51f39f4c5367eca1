package services

import (
	"testing"
	"time"

	"ApparelStoreAPI/internal/model"
)

func customerWithCode(code string, expiry time.Time) *model.Customer {
	return &model.Customer{
		CustomerID:       1,
		Email:            "x@example.com",
		ResetToken:       &code,
		ResetTokenExpiry: &expiry,
	}
}

func TestResetCodeValid(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cu   *model.Customer
		code string
		want bool
	}{
		{
			name: "correct code before expiry",
			cu:   customerWithCode("123456", now.Add(30*time.Minute)),
			code: "123456",
			want: true,
		},
		{
			name: "wrong code with valid expiry",
			cu:   customerWithCode("123456", now.Add(30*time.Minute)),
			code: "654321",
			want: false,
		},
		{
			name: "correct code past expiry",
			cu:   customerWithCode("123456", now.Add(-time.Minute)),
			code: "123456",
			want: false,
		},
		{
			name: "no code ever issued",
			cu:   &model.Customer{CustomerID: 1},
			code: "123456",
			want: false,
		},
		{
			name: "empty submitted code",
			cu:   customerWithCode("123456", now.Add(30*time.Minute)),
			code: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resetCodeValid(tt.cu, tt.code, now); got != tt.want {
				t.Errorf("resetCodeValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateResetCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := generateResetCode()
		if err != nil {
			t.Fatalf("generateResetCode: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q is not 6 digits", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit", code)
			}
		}
		seen[code] = true
	}
	// 50 draws of a 6-digit code colliding down to a handful would mean
	// the generator is badly broken
	if len(seen) < 40 {
		t.Errorf("expected mostly distinct codes, got %d distinct of 50", len(seen))
	}
}

func TestNextLockout(t *testing.T) {
	now := time.Now()
	for attempts := 1; attempts < maxFailedLogins; attempts++ {
		if nextLockout(attempts, now) != nil {
			t.Errorf("attempt %d should not lock the account", attempts)
		}
	}
	lock := nextLockout(maxFailedLogins, now)
	if lock == nil {
		t.Fatalf("attempt %d should lock the account", maxFailedLogins)
	}
	if want := now.Add(lockoutDuration); !lock.Equal(want) {
		t.Errorf("lockout until %v, want %v", lock, want)
	}
}
