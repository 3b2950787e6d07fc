// file: internals/features/attendance/teacher_attendance/controller/teacher_attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"sekolahku_backend/internals/features/attendance/guard"
	"sekolahku_backend/internals/features/attendance/teacher_attendance/dto"
	"sekolahku_backend/internals/features/attendance/teacher_attendance/model"
	"sekolahku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errAlreadyRecorded = errors.New("absensi untuk status ini hari ini sudah tercatat")

// dedupLockQuery memilih baris absensi guru+status+tanggal yang sudah ada
// dengan row lock, dipanggil dari dalam transaksi Create.
func dedupLockQuery(tx *gorm.DB, teacherID uuid.UUID, status string, date time.Time) *gorm.DB {
	return tx.Model(&model.TeacherAttendanceModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("teacher_attendance_teacher_id = ?", teacherID).
		Where("teacher_attendance_status = ?", status).
		Where("teacher_attendance_date = ?", date)
}

type TeacherAttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherAttendanceController(db *gorm.DB) *TeacherAttendanceController {
	return &TeacherAttendanceController{DB: db, Validate: validator.New()}
}

// POST /teacher-attendances
// Dedup per guru+status+hari WIB: cek dalam transaksi (FOR UPDATE),
// lalu insert. Unique index di DB jadi jaring pengaman terakhir
// kalau dua request menembus bersamaan (23505 → 409).
func (ctl *TeacherAttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if err := guard.ValidateStatus(req.TeacherAttendanceStatus); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	teacherID, err := uuid.Parse(req.TeacherAttendanceTeacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID guru tidak valid")
	}

	now := time.Now()
	m := &model.TeacherAttendanceModel{
		TeacherAttendanceTeacherID: teacherID,
		TeacherAttendanceStatus:    req.TeacherAttendanceStatus,
		TeacherAttendanceDate:      guard.LocalDate(now),
		TeacherAttendanceTime:      now,
		TeacherAttendanceNote:      helper.StrPtrOrNil(req.TeacherAttendanceNote),
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		// FOR UPDATE tidak boleh dipasang di query agregat (Postgres 0A000),
		// jadi yang dikunci baris absensinya, bukan COUNT-nya.
		var existing []model.TeacherAttendanceModel
		if err := dedupLockQuery(tx, teacherID, m.TeacherAttendanceStatus, m.TeacherAttendanceDate).
			Limit(1).Find(&existing).Error; err != nil {
			return err
		}
		if len(existing) > 0 {
			return errAlreadyRecorded
		}
		return tx.Create(m).Error
	})
	if err != nil {
		if errors.Is(err, errAlreadyRecorded) {
			return helper.JsonError(c, fiber.StatusConflict, errAlreadyRecorded.Error())
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Absensi guru berhasil dicatat", dto.FromModel(m))
}

// GET /teacher-attendances?teacher_id=&status=&date_from=&date_to=
func (ctl *TeacherAttendanceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.TeacherAttendanceModel{})

	if v := strings.TrimSpace(c.Query("teacher_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		tx = tx.Where("teacher_attendance_teacher_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		if err := guard.ValidateStatus(v); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		tx = tx.Where("teacher_attendance_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from harus format YYYY-MM-DD")
		}
		tx = tx.Where("teacher_attendance_date >= ?", d)
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to harus format YYYY-MM-DD")
		}
		tx = tx.Where("teacher_attendance_date <= ?", d)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.TeacherAttendanceModel
	if err := tx.
		Order("teacher_attendance_time DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar absensi guru berhasil diambil", dto.FromModels(rows), pagination)
}

// GET /teacher-attendances/recap?date_from=&date_to=
// Rekap jumlah absen per guru per status.
func (ctl *TeacherAttendanceController) Recap(c *fiber.Ctx) error {
	tx := ctl.DB.Model(&model.TeacherAttendanceModel{}).
		Select("teacher_attendance_teacher_id AS teacher_id, teacher_attendance_status AS status, COUNT(*) AS total").
		Group("teacher_attendance_teacher_id, teacher_attendance_status")

	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from harus format YYYY-MM-DD")
		}
		tx = tx.Where("teacher_attendance_date >= ?", d)
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to harus format YYYY-MM-DD")
		}
		tx = tx.Where("teacher_attendance_date <= ?", d)
	}

	var rows []dto.RecapRow
	if err := tx.Order("teacher_id, status").Scan(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Rekap absensi guru berhasil diambil", rows)
}

// hardDelete menghapus baris absensi secara permanen. Index dedup adalah
// full index, baris soft-delete masih memblokir absen ulang di hari yang sama.
func hardDelete(db *gorm.DB, id uuid.UUID) *gorm.DB {
	return db.Unscoped().Delete(&model.TeacherAttendanceModel{}, "teacher_attendance_id = ?", id)
}

// DELETE /teacher-attendances/:id (koreksi admin, hapus permanen)
func (ctl *TeacherAttendanceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID absensi tidak valid")
	}

	res := hardDelete(ctl.DB, id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Absensi berhasil dihapus", fiber.Map{"teacher_attendance_id": id.String()})
}
