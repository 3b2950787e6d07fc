// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/users/user/dto"
	m "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

/* =========================
   Query: List
   ========================= */

type listQueryUser struct {
	Search   string `query:"search"` // nama / email / username
	Role     string `query:"role"`
	Active   *bool  `query:"active"`
	SortBy   string `query:"sort_by"` // created_at|user_name (default: created_at)
	Order    string `query:"order"`   // asc|desc (default: desc)
}

func (ctl *UserController) List(c *fiber.Ctx) error {
	var q listQueryUser
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.Context()).Model(&m.UserModel{})

	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		db = db.Where("LOWER(user_name) LIKE ? OR LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}
	if q.Role != "" {
		db = db.Where("role = ?", q.Role)
	}
	if q.Active != nil {
		db = db.Where("is_active = ?", *q.Active)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	sortBy := "created_at"
	if q.SortBy == "user_name" {
		sortBy = "user_name"
	}
	order := "DESC"
	if strings.EqualFold(q.Order, "asc") {
		order = "ASC"
	}

	p := helper.ResolvePaging(c, 20, 100)
	var rows []m.UserModel
	if err := db.Order(sortBy + " " + order).Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "Daftar user", d.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* =========================
   Detail
   ========================= */

func (ctl *UserController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "User tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail user", d.FromModel(row))
}

/* =========================
   Create (admin)
   ========================= */

func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req d.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[User.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal hash password")
	}

	row := req.ToModel(string(hash))
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "User dibuat", d.FromModel(row))
}

/* =========================
   Patch (partial)
   ========================= */

func (ctl *UserController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var existing m.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "User tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	req.ApplyPatch(&existing)
	if err := ctl.DB.WithContext(c.Context()).Save(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "User diperbarui", d.FromModel(existing))
}

/* =========================
   Delete (soft)
   ========================= */

func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&m.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonDeleted(c, "User dihapus", fiber.Map{"id": id.String()})
}
