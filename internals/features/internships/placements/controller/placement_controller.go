// file: internals/features/internships/placements/controller/placement_controller.go
package controller

import (
	"errors"
	"strings"

	companyModel "sekolahku_backend/internals/features/internships/companies/model"
	"sekolahku_backend/internals/features/internships/placements/dto"
	"sekolahku_backend/internals/features/internships/placements/model"
	queueService "sekolahku_backend/internals/features/internships/queue/service"
	"sekolahku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errQuotaFull = errors.New("kuota magang perusahaan ini sudah penuh")

type PlacementController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPlacementController(db *gorm.DB) *PlacementController {
	return &PlacementController{DB: db, Validate: validator.New()}
}

// GET /placements?student_id=&company_id=&status=
func (ctl *PlacementController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.PlacementModel{})

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		tx = tx.Where("placement_student_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("company_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "company_id tidak valid")
		}
		tx = tx.Where("placement_company_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		if !model.ValidPlacementStatus(v) {
			return helper.JsonError(c, fiber.StatusBadRequest, "status tidak dikenal")
		}
		tx = tx.Where("placement_status = ?", v)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.PlacementModel
	if err := tx.
		Order("placement_created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar penempatan PKL berhasil diambil", dto.FromModels(rows), pagination)
}

// GET /placements/:id
func (ctl *PlacementController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID penempatan tidak valid")
	}

	var m model.PlacementModel
	if err := ctl.DB.First(&m, "placement_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Penempatan tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail penempatan berhasil diambil", dto.FromModel(&m))
}

// POST /placements
// Nomor pendaftaran diambil dari counter tahunan di dalam transaksi
// yang sama dengan insert: gagal insert = counter ikut rollback,
// jadi tidak ada nomor bolong.
func (ctl *PlacementController) Create(c *fiber.Ctx) error {
	var req dto.CreatePlacementRequest
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

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Cek kuota perusahaan; row perusahaan dikunci supaya dua
		// pendaftaran paralel tidak sama-sama lolos di slot terakhir.
		var company companyModel.CompanyModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&company, "company_id = ?", m.PlacementCompanyID).Error; err != nil {
			return err
		}
		if company.CompanyQuota > 0 {
			var occupied int64
			if err := tx.Model(&model.PlacementModel{}).
				Where("placement_company_id = ?", m.PlacementCompanyID).
				Where("placement_status IN ?", []string{model.PlacementStatusPending, model.PlacementStatusActive}).
				Count(&occupied).Error; err != nil {
				return err
			}
			if occupied >= int64(company.CompanyQuota) {
				return errQuotaFull
			}
		}

		year := m.PlacementStartDate.Year()
		number, err := queueService.NextNumber(tx, year)
		if err != nil {
			return err
		}
		m.PlacementRegistrationNumber = queueService.FormatRegistrationNumber(year, number)

		return tx.Create(m).Error
	})
	if err != nil {
		if errors.Is(err, errQuotaFull) {
			return helper.JsonError(c, fiber.StatusConflict, errQuotaFull.Error())
		}
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Perusahaan tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Penempatan PKL berhasil dibuat", dto.FromModel(m))
}

// PATCH /placements/:id
func (ctl *PlacementController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID penempatan tidak valid")
	}

	var req dto.UpdatePlacementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if req.PlacementStatus != nil && !model.ValidPlacementStatus(*req.PlacementStatus) {
		return helper.JsonError(c, fiber.StatusBadRequest, "status tidak dikenal")
	}

	var m model.PlacementModel
	if err := ctl.DB.First(&m, "placement_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Penempatan tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if err := req.ApplyPatch(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal atau ID tidak valid")
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Penempatan berhasil diperbarui", dto.FromModel(&m))
}

// GET /placements/queue?year=
// Posisi counter pendaftaran tahun berjalan (tanpa menaikkan).
func (ctl *PlacementController) QueuePosition(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	if year == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter year wajib diisi")
	}

	current, err := queueService.CurrentNumber(ctl.DB, year)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Posisi antrean pendaftaran", fiber.Map{
		"year":    year,
		"current": current,
	})
}

// DELETE /placements/:id (soft delete)
func (ctl *PlacementController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID penempatan tidak valid")
	}

	res := ctl.DB.Delete(&model.PlacementModel{}, "placement_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Penempatan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Penempatan berhasil dihapus", fiber.Map{"placement_id": id.String()})
}
