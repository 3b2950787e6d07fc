// file: internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := db.First(&u, "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindUserByIdentifier menerima username ATAU email.
func FindUserByIdentifier(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	id := strings.TrimSpace(identifier)
	var u userModel.UserModel
	if err := db.First(&u, "user_name = ? OR LOWER(email) = ?", id, strings.ToLower(id)).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := db.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := db.First(&u, "google_id = ?", googleID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func CreateUser(db *gorm.DB, u *userModel.UserModel) error {
	u.SetDefaultValues()
	return db.Create(u).Error
}

func UpdateUserPassword(db *gorm.DB, id uuid.UUID, hash string) error {
	return db.Model(&userModel.UserModel{}).Where("id = ?", id).Update("password", hash).Error
}
