// file: internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"strings"

	"sekolahku_backend/internals/features/academics/subjects/dto"
	"sekolahku_backend/internals/features/academics/subjects/model"
	"sekolahku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: validator.New()}
}

// GET /subjects
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.SubjectModel{})

	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("subject_code ILIKE ? OR subject_name ILIKE ?", like, like)
	}
	if act := strings.TrimSpace(c.Query("active")); act != "" {
		if b, ok := helper.ParseBoolLoose(act); ok {
			tx = tx.Where("subject_is_active = ?", b)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.SubjectModel
	if err := tx.
		Order("subject_name ASC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar mapel berhasil diambil", dto.FromModels(rows), pagination)
}

// GET /subjects/:id
func (ctl *SubjectController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mapel tidak valid")
	}

	var m model.SubjectModel
	if err := ctl.DB.First(&m, "subject_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail mapel berhasil diambil", dto.FromModel(&m))
}

// POST /subjects
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Mapel berhasil dibuat", dto.FromModel(m))
}

// PATCH /subjects/:id
func (ctl *SubjectController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mapel tidak valid")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m model.SubjectModel
	if err := ctl.DB.First(&m, "subject_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	req.ApplyPatch(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Mapel berhasil diperbarui", dto.FromModel(&m))
}

// DELETE /subjects/:id (soft delete)
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mapel tidak valid")
	}

	res := ctl.DB.Delete(&model.SubjectModel{}, "subject_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Mapel berhasil dihapus", fiber.Map{"subject_id": id.String()})
}
