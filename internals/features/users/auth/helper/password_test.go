// file: internals/features/users/auth/helper/password_test.go
package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		pw      string
		wantErr bool
	}{
		{"valid huruf+angka", "rahasia123", false},
		{"valid campuran simbol", "abc123!@#", false},
		{"terlalu pendek", "abc12", true},
		{"hanya huruf", "rahasiabanget", true},
		{"hanya angka", "12345678", true},
		{"kosong", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.pw)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("siswa@sekolah.sch.id"))
	assert.True(t, IsValidEmail("guru.matematika+kelas@gmail.com"))
	assert.False(t, IsValidEmail("tanpa-at.com"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail(""))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	assert.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)

	assert.NoError(t, CheckPasswordHash(hash, "rahasia123"))
	assert.Error(t, CheckPasswordHash(hash, "salah123"))
}

func TestValidateResetPassword(t *testing.T) {
	assert.NoError(t, ValidateResetPassword("admin@sekolah.sch.id", "baru1234"))
	assert.Error(t, ValidateResetPassword("bukan-email", "baru1234"))
	assert.Error(t, ValidateResetPassword("admin@sekolah.sch.id", "pendek"))
}
