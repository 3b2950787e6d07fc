package helpers

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var (
	reLetter = regexp.MustCompile(`[A-Za-z]`)
	reNumber = regexp.MustCompile(`[0-9]`)
	reEmail  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func isAlphaNumeric(s string) bool {
	return reLetter.MatchString(s) && reNumber.MatchString(s)
}

// Validasi Email (regex simple)
func IsValidEmail(email string) bool {
	return reEmail.MatchString(email)
}

// ValidatePassword: minimal 8 karakter, kombinasi huruf + angka.
func ValidatePassword(pw string) error {
	if len(pw) < 8 {
		return errors.New("password minimal 8 karakter")
	}
	if !isAlphaNumeric(pw) {
		return errors.New("password harus kombinasi huruf dan angka")
	}
	return nil
}

// ValidateResetPassword gabungan cek email + password baru.
func ValidateResetPassword(email, newPassword string) error {
	if !IsValidEmail(email) {
		return errors.New("format email tidak valid")
	}
	return ValidatePassword(newPassword)
}

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPasswordHash(hash, pw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
}
