// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authHelper "sekolahku_backend/internals/features/users/auth/helper"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	authRepo "sekolahku_backend/internals/features/users/auth/repository"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

/* ==========================
   Register
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name"`
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	if strings.TrimSpace(input.UserName) == "" || strings.TrimSpace(input.FullName) == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "user_name dan full_name wajib diisi")
	}
	if !authHelper.IsValidEmail(input.Email) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format email tidak valid")
	}
	if err := authHelper.ValidatePassword(input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	u := userModel.UserModel{
		UserName: strings.TrimSpace(input.UserName),
		FullName: strings.TrimSpace(input.FullName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: hash,
		IsActive: true,
	}
	if err := authRepo.CreateUser(db, &u); err != nil {
		return helper.WritePGError(c, err)
	}

	log.Printf("[AUTH] register user_id=%s", u.ID)
	return helper.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"id":        u.ID.String(),
		"user_name": u.UserName,
		"email":     u.Email,
		"role":      u.Role,
	})
}

/* ==========================
   Login (username/email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"` // username atau email
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if strings.TrimSpace(input.Identifier) == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "identifier dan password wajib diisi")
	}

	u, err := authRepo.FindUserByIdentifier(db, input.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sengaja generik
			return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau password salah")
		}
		return helper.WritePGError(c, err)
	}
	if !u.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := authHelper.CheckPasswordHash(u.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau password salah")
	}

	pair, err := IssueTokenPair(db, c, u)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	log.Printf("[AUTH] login user_id=%s role=%s", u.ID, u.Role)
	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"user": fiber.Map{
			"id":        u.ID.String(),
			"user_name": u.UserName,
			"full_name": u.FullName,
			"email":     u.Email,
			"role":      u.Role,
		},
		"tokens": pair,
	})
}

/* ==========================
   Login Google (ID token)
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if strings.TrimSpace(input.IDToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token wajib diisi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google ID token invalid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Gagal decode ID token")
	}

	u, err := authRepo.FindUserByGoogleID(db, claimSet.Sub)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.WritePGError(c, err)
		}
		// coba match by email, link akun
		u, err = authRepo.FindUserByEmail(db, claimSet.Email)
		if err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Akun belum terdaftar, hubungi admin sekolah")
		}
		gid := claimSet.Sub
		if er := db.Model(u).Update("google_id", gid).Error; er != nil {
			return helper.WritePGError(c, er)
		}
	}
	if !u.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	pair, err := IssueTokenPair(db, c, u)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Login Google berhasil", fiber.Map{
		"user": fiber.Map{
			"id":        u.ID.String(),
			"user_name": u.UserName,
			"email":     u.Email,
			"role":      u.Role,
		},
		"tokens": pair,
	})
}

/* ==========================
   Logout
========================== */

// Logout blacklist access token aktif + revoke refresh token (kalau dikirim).
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Authorization header tidak ada")
	}
	raw := strings.TrimSpace(parts[1])

	// exp token dipakai sebagai masa kedaluwarsa baris blacklist
	expiredAt := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expFloat), 0)
		}
	}

	if err := db.Create(&authModel.TokenBlacklist{
		Token:     raw,
		ExpiredAt: expiredAt,
	}).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	// revoke refresh token bila dikirim
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err == nil && strings.TrimSpace(input.RefreshToken) != "" {
		hash := hashRefreshToken(strings.TrimSpace(input.RefreshToken), configs.JWTRefreshSecret)
		if row, er := FindRefreshTokenByHashActive(db, hash); er == nil {
			_ = RevokeRefreshTokenByID(db, row.ID)
		}
	}

	return helper.JsonOK(c, "Logout berhasil", nil)
}
