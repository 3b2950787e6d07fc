// file: internals/features/academics/teaching_journals/controller/teaching_journal_controller.go
package controller

import (
	"strings"

	"sekolahku_backend/internals/features/academics/teaching_journals/dto"
	"sekolahku_backend/internals/features/academics/teaching_journals/model"
	"sekolahku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeachingJournalController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeachingJournalController(db *gorm.DB) *TeachingJournalController {
	return &TeachingJournalController{DB: db, Validate: validator.New()}
}

// GET /teaching-journals?teacher_id=&class_id=&date_from=&date_to=
func (ctl *TeachingJournalController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.TeachingJournalModel{})

	if v := strings.TrimSpace(c.Query("teacher_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		tx = tx.Where("journal_teacher_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("journal_class_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from harus format YYYY-MM-DD")
		}
		tx = tx.Where("journal_date >= ?", d)
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to harus format YYYY-MM-DD")
		}
		tx = tx.Where("journal_date <= ?", d)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.TeachingJournalModel
	if err := tx.
		Order("journal_date DESC, journal_created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar jurnal KBM berhasil diambil", dto.FromModels(rows), pagination)
}

// GET /teaching-journals/:id
func (ctl *TeachingJournalController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jurnal tidak valid")
	}

	var m model.TeachingJournalModel
	if err := ctl.DB.First(&m, "journal_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Jurnal tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail jurnal berhasil diambil", dto.FromModel(&m))
}

// POST /teaching-journals
func (ctl *TeachingJournalController) Create(c *fiber.Ctx) error {
	var req dto.CreateJournalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal atau ID tidak valid")
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Jurnal KBM berhasil dibuat", dto.FromModel(m))
}

// PATCH /teaching-journals/:id
func (ctl *TeachingJournalController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jurnal tidak valid")
	}

	var req dto.UpdateJournalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m model.TeachingJournalModel
	if err := ctl.DB.First(&m, "journal_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Jurnal tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if err := req.ApplyPatch(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid")
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Jurnal KBM berhasil diperbarui", dto.FromModel(&m))
}

// DELETE /teaching-journals/:id (soft delete)
func (ctl *TeachingJournalController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jurnal tidak valid")
	}

	res := ctl.DB.Delete(&model.TeachingJournalModel{}, "journal_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jurnal tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Jurnal KBM berhasil dihapus", fiber.Map{"journal_id": id.String()})
}
