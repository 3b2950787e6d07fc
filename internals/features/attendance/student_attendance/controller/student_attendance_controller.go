// file: internals/features/attendance/student_attendance/controller/student_attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"sekolahku_backend/internals/features/academics/students/model"
	"sekolahku_backend/internals/features/attendance/guard"
	"sekolahku_backend/internals/features/attendance/student_attendance/dto"
	attModel "sekolahku_backend/internals/features/attendance/student_attendance/model"
	"sekolahku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errAlreadyRecorded = errors.New("absensi untuk status ini hari ini sudah tercatat")

// dedupLockQuery memilih baris absensi siswa+status+tanggal yang sudah ada
// dengan row lock, dipanggil dari dalam transaksi Create.
func dedupLockQuery(tx *gorm.DB, studentID uuid.UUID, status string, date time.Time) *gorm.DB {
	return tx.Model(&attModel.StudentAttendanceModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("student_attendance_student_id = ?", studentID).
		Where("student_attendance_status = ?", status).
		Where("student_attendance_date = ?", date)
}

type StudentAttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentAttendanceController(db *gorm.DB) *StudentAttendanceController {
	return &StudentAttendanceController{DB: db, Validate: validator.New()}
}

// POST /student-attendances
// Pola dedup sama dengan absensi guru: guard transaksi + unique index.
func (ctl *StudentAttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if err := guard.ValidateStatus(req.StudentAttendanceStatus); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	studentID, err := uuid.Parse(req.StudentAttendanceStudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	now := time.Now()
	m := &attModel.StudentAttendanceModel{
		StudentAttendanceStudentID: studentID,
		StudentAttendanceStatus:    req.StudentAttendanceStatus,
		StudentAttendanceDate:      guard.LocalDate(now),
		StudentAttendanceTime:      now,
		StudentAttendanceNote:      helper.StrPtrOrNil(req.StudentAttendanceNote),
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Ambil kelas siswa saat ini untuk rekap per kelas
		var student model.StudentModel
		if err := tx.Select("student_id", "student_class_id").
			First(&student, "student_id = ?", studentID).Error; err != nil {
			return err
		}
		m.StudentAttendanceClassID = student.StudentClassID

		// FOR UPDATE tidak boleh dipasang di query agregat (Postgres 0A000),
		// jadi yang dikunci baris absensinya, bukan COUNT-nya.
		var existing []attModel.StudentAttendanceModel
		if err := dedupLockQuery(tx, studentID, m.StudentAttendanceStatus, m.StudentAttendanceDate).
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
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Absensi siswa berhasil dicatat", dto.FromModel(m))
}

// GET /student-attendances?student_id=&class_id=&status=&date_from=&date_to=
func (ctl *StudentAttendanceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&attModel.StudentAttendanceModel{})

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		tx = tx.Where("student_attendance_student_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("student_attendance_class_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		if err := guard.ValidateStatus(v); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		tx = tx.Where("student_attendance_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from harus format YYYY-MM-DD")
		}
		tx = tx.Where("student_attendance_date >= ?", d)
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to harus format YYYY-MM-DD")
		}
		tx = tx.Where("student_attendance_date <= ?", d)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []attModel.StudentAttendanceModel
	if err := tx.
		Order("student_attendance_time DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar absensi siswa berhasil diambil", dto.FromModels(rows), pagination)
}

// GET /student-attendances/recap?date_from=&date_to=
// Rekap jumlah absen per kelas per status.
func (ctl *StudentAttendanceController) Recap(c *fiber.Ctx) error {
	tx := ctl.DB.Model(&attModel.StudentAttendanceModel{}).
		Select("student_attendance_class_id AS class_id, student_attendance_status AS status, COUNT(*) AS total").
		Group("student_attendance_class_id, student_attendance_status")

	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from harus format YYYY-MM-DD")
		}
		tx = tx.Where("student_attendance_date >= ?", d)
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to harus format YYYY-MM-DD")
		}
		tx = tx.Where("student_attendance_date <= ?", d)
	}

	var rows []dto.RecapRow
	if err := tx.Order("class_id, status").Scan(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Rekap absensi siswa berhasil diambil", rows)
}

// hardDelete menghapus baris absensi secara permanen. Index dedup adalah
// full index, baris soft-delete masih memblokir absen ulang di hari yang sama.
func hardDelete(db *gorm.DB, id uuid.UUID) *gorm.DB {
	return db.Unscoped().Delete(&attModel.StudentAttendanceModel{}, "student_attendance_id = ?", id)
}

// DELETE /student-attendances/:id (koreksi admin, hapus permanen)
func (ctl *StudentAttendanceController) Delete(c *fiber.Ctx) error {
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
	return helper.JsonDeleted(c, "Absensi berhasil dihapus", fiber.Map{"student_attendance_id": id.String()})
}
