// file: internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // detik, untuk access token
}

func hashRefreshToken(raw, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	return mac.Sum(nil)
}

// IssueTokenPair membuat access+refresh token dan menyimpan hash refresh di DB.
func IssueTokenPair(db *gorm.DB, c *fiber.Ctx, u *userModel.UserModel) (*TokenPair, error) {
	jwtSecret := strings.TrimSpace(configs.JWTSecret)
	refreshSecret := strings.TrimSpace(configs.JWTRefreshSecret)
	if jwtSecret == "" || refreshSecret == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "JWT secret belum diset")
	}

	now := time.Now().UTC()
	accessClaims := jwt.MapClaims{
		"user_id":   u.ID.String(),
		"user_name": u.UserName,
		"role":      u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	refreshClaims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"typ":     "refresh",
		"iat":     now.Unix(),
		"exp":     now.Add(refreshTTLDefault).Unix(),
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(jwtSecret))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(refreshSecret))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	ua := c.Get(fiber.HeaderUserAgent)
	ip := c.IP()
	row := authModel.RefreshToken{
		UserID:    u.ID,
		TokenHash: hashRefreshToken(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: &ua,
		IP:        &ip,
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTLDefault.Seconds()),
	}, nil
}

func FindRefreshTokenByHashActive(db *gorm.DB, hash []byte) (*authModel.RefreshToken, error) {
	var row authModel.RefreshToken
	err := db.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > now()", hash).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func RevokeRefreshTokenByID(db *gorm.DB, id uuid.UUID) error {
	now := time.Now().UTC()
	return db.Model(&authModel.RefreshToken{}).Where("id = ?", id).Update("revoked_at", now).Error
}

// RefreshTokens memvalidasi refresh token, rotasi (revoke lama, terbit baru).
func RefreshTokens(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	raw := strings.TrimSpace(input.RefreshToken)
	if raw == "" {
		raw = strings.TrimSpace(c.Cookies("refresh_token"))
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "refresh_token wajib diisi")
	}

	refreshSecret := strings.TrimSpace(configs.JWTRefreshSecret)
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(refreshSecret), nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid atau expired")
	}

	row, err := FindRefreshTokenByHashActive(db, hashRefreshToken(raw, refreshSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal atau sudah dicabut")
	}

	var u userModel.UserModel
	if err := db.First(&u, "id = ? AND is_active = true", row.UserID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak aktif")
	}

	// rotasi: revoke yang lama dulu, baru terbitkan pasangan baru
	var pair *TokenPair
	if err := db.Transaction(func(tx *gorm.DB) error {
		if er := RevokeRefreshTokenByID(tx, row.ID); er != nil {
			return er
		}
		p, er := IssueTokenPair(tx, c, &u)
		if er != nil {
			return er
		}
		pair = p
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Token diperbarui", pair)
}
