// file: internals/features/academics/schedules/controller/schedule_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"sekolahku_backend/internals/features/academics/schedules/dto"
	"sekolahku_backend/internals/features/academics/schedules/model"
	"sekolahku_backend/internals/features/academics/schedules/service"
	"sekolahku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db, Validate: validator.New()}
}

// GET /schedules?class_id=&teacher_id=&room_id=&day=
func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	tx := ctl.DB.Model(&model.ScheduleModel{})

	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("schedule_class_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("teacher_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		tx = tx.Where("schedule_teacher_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("room_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "room_id tidak valid")
		}
		tx = tx.Where("schedule_room_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("day")); v != "" {
		day, err := strconv.Atoi(v)
		if err != nil || day < 1 || day > 7 {
			return helper.JsonError(c, fiber.StatusBadRequest, "day harus 1-7")
		}
		tx = tx.Where("schedule_day_of_week = ?", day)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.ScheduleModel
	if err := tx.
		Order("schedule_day_of_week ASC, schedule_start_minute ASC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar jadwal berhasil diambil", dto.FromModels(rows), pagination)
}

// GET /schedules/:id
func (ctl *ScheduleController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jadwal tidak valid")
	}

	var m model.ScheduleModel
	if err := ctl.DB.First(&m, "schedule_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail jadwal berhasil diambil", dto.FromModel(&m))
}

// POST /schedules
// Cek bentrok + insert dijalankan dalam SATU transaksi supaya dua
// request paralel tidak sama-sama lolos.
func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	m, err := req.ToModel()
	if err != nil {
		if errors.Is(err, dto.ErrInvalidTimeRange) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Format jam atau ID tidak valid")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := service.CheckConflicts(tx, m, uuid.Nil); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if err != nil {
		var conflict *service.ConflictError
		if errors.As(err, &conflict) {
			return helper.JsonError(c, fiber.StatusConflict, conflict.Error())
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Jadwal berhasil dibuat", dto.FromModel(m))
}

// PATCH /schedules/:id
// Jadwal yang sedang diubah dikecualikan dari cek bentrok.
func (ctl *ScheduleController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jadwal tidak valid")
	}

	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m model.ScheduleModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "schedule_id = ?", id).Error; err != nil {
			return err
		}
		if err := req.ApplyPatch(&m); err != nil {
			return err
		}
		if err := service.CheckConflicts(tx, &m, m.ScheduleID); err != nil {
			return err
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		if errors.Is(err, dto.ErrInvalidTimeRange) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		var conflict *service.ConflictError
		if errors.As(err, &conflict) {
			return helper.JsonError(c, fiber.StatusConflict, conflict.Error())
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Jadwal berhasil diperbarui", dto.FromModel(&m))
}

// DELETE /schedules/:id (soft delete)
func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jadwal tidak valid")
	}

	res := ctl.DB.Delete(&model.ScheduleModel{}, "schedule_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Jadwal berhasil dihapus", fiber.Map{"schedule_id": id.String()})
}
