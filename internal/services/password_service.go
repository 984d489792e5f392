package services

import (
	"errors"
	"fmt"
	"regexp"

	"budget-tracker/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is the bcrypt input limit.
const MaxPasswordLength = 72

var (
	ErrPasswordEmpty       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrPasswordTooLong     = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	ErrPasswordNoUppercase = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLowercase = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoNumber    = errors.New("password must contain at least one number")
	ErrPasswordNoSpecial   = errors.New("password must contain at least one special character")

	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	numberRegex    = regexp.MustCompile(`[0-9]`)
	specialRegex   = regexp.MustCompile(`[^A-Za-z0-9\s]`)
)

// PasswordService hashes and checks passwords against the configured policy.
type PasswordService struct {
	policy config.SecurityConfig
}

func NewPasswordService(policy config.SecurityConfig) PasswordServiceInterface {
	if policy.BCryptCost == 0 {
		policy.BCryptCost = bcrypt.DefaultCost
	}
	return &PasswordService{policy: policy}
}

func (ps *PasswordService) ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}
	if len(password) < ps.policy.PasswordMinLength {
		return fmt.Errorf("%w: minimum is %d characters", ErrPasswordTooShort, ps.policy.PasswordMinLength)
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	checks := []struct {
		required bool
		pattern  *regexp.Regexp
		err      error
	}{
		{ps.policy.RequireUppercase, uppercaseRegex, ErrPasswordNoUppercase},
		{ps.policy.RequireLowercase, lowercaseRegex, ErrPasswordNoLowercase},
		{ps.policy.RequireNumbers, numberRegex, ErrPasswordNoNumber},
		{ps.policy.RequireSpecialChars, specialRegex, ErrPasswordNoSpecial},
	}
	for _, check := range checks {
		if check.required && !check.pattern.MatchString(password) {
			return check.err
		}
	}
	return nil
}

// HashPassword validates the password and returns its bcrypt hash.
func (ps *PasswordService) HashPassword(password string) (string, error) {
	if err := ps.ValidatePassword(password); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), ps.policy.BCryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (ps *PasswordService) ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
