// file: internals/features/academics/rooms/controller/room_controller.go
package controller

import (
	"strings"

	"sekolahku_backend/internals/features/academics/rooms/dto"
	"sekolahku_backend/internals/features/academics/rooms/model"
	"sekolahku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db, Validate: validator.New()}
}

// GET /rooms
func (ctl *RoomController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.RoomModel{})

	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("room_name ILIKE ? OR room_location ILIKE ?", like, like)
	}
	if act := strings.TrimSpace(c.Query("active")); act != "" {
		if b, ok := helper.ParseBoolLoose(act); ok {
			tx = tx.Where("room_is_active = ?", b)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.RoomModel
	if err := tx.
		Order("room_name ASC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar ruangan berhasil diambil", dto.FromModels(rows), pagination)
}

// GET /rooms/:id
func (ctl *RoomController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ruangan tidak valid")
	}

	var m model.RoomModel
	if err := ctl.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Ruangan tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail ruangan berhasil diambil", dto.FromModel(&m))
}

// POST /rooms
func (ctl *RoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Fasilitas tidak valid")
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Ruangan berhasil dibuat", dto.FromModel(m))
}

// PATCH /rooms/:id
func (ctl *RoomController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ruangan tidak valid")
	}

	var req dto.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m model.RoomModel
	if err := ctl.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Ruangan tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if err := req.ApplyPatch(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Fasilitas tidak valid")
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Ruangan berhasil diperbarui", dto.FromModel(&m))
}

// DELETE /rooms/:id (soft delete)
func (ctl *RoomController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ruangan tidak valid")
	}

	res := ctl.DB.Delete(&model.RoomModel{}, "room_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Ruangan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Ruangan berhasil dihapus", fiber.Map{"room_id": id.String()})
}
