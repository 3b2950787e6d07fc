// file: internals/features/internships/companies/controller/company_controller.go
package controller

import (
	"strings"

	"sekolahku_backend/internals/features/internships/companies/dto"
	"sekolahku_backend/internals/features/internships/companies/model"
	"sekolahku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CompanyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{DB: db, Validate: validator.New()}
}

// GET /companies
func (ctl *CompanyController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.CompanyModel{})

	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("company_name ILIKE ? OR company_city ILIKE ?", like, like)
	}
	if act := strings.TrimSpace(c.Query("active")); act != "" {
		if b, ok := helper.ParseBoolLoose(act); ok {
			tx = tx.Where("company_is_active = ?", b)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.CompanyModel
	if err := tx.
		Order("company_name ASC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar perusahaan berhasil diambil", dto.FromModels(rows), pagination)
}

// GET /companies/:id
func (ctl *CompanyController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID perusahaan tidak valid")
	}

	var m model.CompanyModel
	if err := ctl.DB.First(&m, "company_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Perusahaan tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail perusahaan berhasil diambil", dto.FromModel(&m))
}

// POST /companies
func (ctl *CompanyController) Create(c *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
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
	return helper.JsonCreated(c, "Perusahaan berhasil dibuat", dto.FromModel(m))
}

// PATCH /companies/:id
func (ctl *CompanyController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID perusahaan tidak valid")
	}

	var req dto.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m model.CompanyModel
	if err := ctl.DB.First(&m, "company_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Perusahaan tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	req.ApplyPatch(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Perusahaan berhasil diperbarui", dto.FromModel(&m))
}

// DELETE /companies/:id (soft delete)
func (ctl *CompanyController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID perusahaan tidak valid")
	}

	res := ctl.DB.Delete(&model.CompanyModel{}, "company_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Perusahaan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Perusahaan berhasil dihapus", fiber.Map{"company_id": id.String()})
}
