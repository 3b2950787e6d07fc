// file: internals/features/exams/controller/exam_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	scheduleService "sekolahku_backend/internals/features/academics/schedules/service"
	"sekolahku_backend/internals/features/exams/dto"
	"sekolahku_backend/internals/features/exams/model"
	"sekolahku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExamController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db, Validate: validator.New()}
}

type examConflictError struct {
	entity   string
	existing *model.ExamModel
}

func (e *examConflictError) Error() string {
	return fmt.Sprintf("jadwal ujian bentrok dengan %s pada ujian %q (%s-%s)",
		e.entity,
		e.existing.ExamName,
		helper.FormatClock(e.existing.ExamStartMinute),
		helper.FormatClock(e.existing.ExamEndMinute),
	)
}

// checkExamConflicts: ujian di tanggal yang sama untuk kelas atau
// ruangan yang sama tidak boleh menindih. Predikat overlap-nya sama
// dengan jadwal pelajaran mingguan. Panggil di dalam transaksi.
func checkExamConflicts(tx *gorm.DB, cand *model.ExamModel, excludeID uuid.UUID) error {
	q := tx.Model(&model.ExamModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("exam_date = ?", cand.ExamDate)

	if cand.ExamRoomID != nil {
		q = q.Where("(exam_class_id = ? OR exam_room_id = ?)", cand.ExamClassID, *cand.ExamRoomID)
	} else {
		q = q.Where("exam_class_id = ?", cand.ExamClassID)
	}
	if excludeID != uuid.Nil {
		q = q.Where("exam_id <> ?", excludeID)
	}

	var rows []model.ExamModel
	if err := q.Find(&rows).Error; err != nil {
		return err
	}
	for i := range rows {
		other := &rows[i]
		if !scheduleService.Overlaps(cand.ExamStartMinute, cand.ExamEndMinute,
			other.ExamStartMinute, other.ExamEndMinute) {
			continue
		}
		if other.ExamClassID == cand.ExamClassID {
			return &examConflictError{entity: "kelas", existing: other}
		}
		return &examConflictError{entity: "ruangan", existing: other}
	}
	return nil
}

// GET /exams?class_id=&subject_id=&type=&date_from=&date_to=
func (ctl *ExamController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.ExamModel{})

	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("exam_class_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("subject_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
		}
		tx = tx.Where("exam_subject_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("type")); v != "" {
		if !model.ValidExamType(v) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jenis ujian tidak dikenal")
		}
		tx = tx.Where("exam_type = ?", v)
	}
	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from harus format YYYY-MM-DD")
		}
		tx = tx.Where("exam_date >= ?", d)
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		d, err := helper.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to harus format YYYY-MM-DD")
		}
		tx = tx.Where("exam_date <= ?", d)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.ExamModel
	if err := tx.
		Order("exam_date ASC, exam_start_minute ASC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar ujian berhasil diambil", dto.FromModels(rows), pagination)
}

// GET /exams/:id
func (ctl *ExamController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}

	var m model.ExamModel
	if err := ctl.DB.First(&m, "exam_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Ujian tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail ujian berhasil diambil", dto.FromModel(&m))
}

// POST /exams
func (ctl *ExamController) Create(c *fiber.Ctx) error {
	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if !model.ValidExamType(req.ExamType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jenis ujian tidak dikenal")
	}

	m, err := req.ToModel()
	if err != nil {
		if errors.Is(err, dto.ErrInvalidTimeRange) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal, jam, atau ID tidak valid")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := checkExamConflicts(tx, m, uuid.Nil); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if err != nil {
		var conflict *examConflictError
		if errors.As(err, &conflict) {
			return helper.JsonError(c, fiber.StatusConflict, conflict.Error())
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Ujian berhasil dibuat", dto.FromModel(m))
}

// PATCH /exams/:id
func (ctl *ExamController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}

	var req dto.UpdateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if req.ExamType != nil && !model.ValidExamType(*req.ExamType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jenis ujian tidak dikenal")
	}

	var m model.ExamModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "exam_id = ?", id).Error; err != nil {
			return err
		}
		if err := req.ApplyPatch(&m); err != nil {
			return err
		}
		if err := checkExamConflicts(tx, &m, m.ExamID); err != nil {
			return err
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Ujian tidak ditemukan")
		}
		if errors.Is(err, dto.ErrInvalidTimeRange) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		var conflict *examConflictError
		if errors.As(err, &conflict) {
			return helper.JsonError(c, fiber.StatusConflict, conflict.Error())
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Ujian berhasil diperbarui", dto.FromModel(&m))
}

// DELETE /exams/:id (soft delete)
func (ctl *ExamController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}

	res := ctl.DB.Delete(&model.ExamModel{}, "exam_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Ujian tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Ujian berhasil dihapus", fiber.Map{"exam_id": id.String()})
}

// GET /exams/:id/scores
func (ctl *ExamController) ListScores(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}

	var rows []model.ExamScoreModel
	if err := ctl.DB.
		Where("exam_score_exam_id = ?", examID).
		Order("exam_score_updated_at DESC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Daftar nilai ujian berhasil diambil", dto.ScoresFromModels(rows))
}

// PUT /exams/:id/scores
// Upsert nilai: unique (exam, siswa) menjamin satu baris per siswa,
// input ulang menimpa nilai lama.
func (ctl *ExamController) UpsertScore(c *fiber.Ctx) error {
	examID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}

	var req dto.UpsertExamScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	studentID, err := uuid.Parse(req.ExamScoreStudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	var exam model.ExamModel
	if err := ctl.DB.First(&exam, "exam_id = ?", examID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Ujian tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	score := &model.ExamScoreModel{
		ExamScoreExamID:    examID,
		ExamScoreStudentID: studentID,
		ExamScoreValue:     req.ExamScoreValue,
		ExamScoreNote:      helper.StrPtrOrNil(req.ExamScoreNote),
	}
	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "exam_score_exam_id"},
			{Name: "exam_score_student_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"exam_score_value", "exam_score_note", "exam_score_updated_at"}),
	}).Create(score).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Nilai ujian berhasil disimpan", dto.ScoreFromModel(score))
}
