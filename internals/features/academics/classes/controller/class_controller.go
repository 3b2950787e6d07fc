// file: internals/features/academics/classes/controller/class_controller.go
package controller

import (
	"strconv"
	"strings"

	"sekolahku_backend/internals/features/academics/classes/dto"
	"sekolahku_backend/internals/features/academics/classes/model"
	"sekolahku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validate: validator.New()}
}

// GET /classes
func (ctl *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.ClassModel{})

	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("class_name ILIKE ?", like)
	}
	if g := strings.TrimSpace(c.Query("grade")); g != "" {
		if n, err := strconv.Atoi(g); err == nil {
			tx = tx.Where("class_grade = ?", n)
		}
	}
	if act := strings.TrimSpace(c.Query("active")); act != "" {
		if b, ok := helper.ParseBoolLoose(act); ok {
			tx = tx.Where("class_is_active = ?", b)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.ClassModel
	if err := tx.
		Order("class_grade ASC, class_name ASC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar kelas berhasil diambil", dto.FromModels(rows), pagination)
}

// GET /classes/:id
func (ctl *ClassController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var m model.ClassModel
	if err := ctl.DB.First(&m, "class_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail kelas berhasil diambil", dto.FromModel(&m))
}

// POST /classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID wali kelas tidak valid")
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.FromModel(m))
}

// PATCH /classes/:id
func (ctl *ClassController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m model.ClassModel
	if err := ctl.DB.First(&m, "class_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if err := req.ApplyPatch(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID wali kelas tidak valid")
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", dto.FromModel(&m))
}

// DELETE /classes/:id (soft delete)
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	res := ctl.DB.Delete(&model.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_id": id.String()})
}
