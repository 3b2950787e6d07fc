// file: internals/features/attendance/student_attendance/dto/student_attendance_dto.go
package dto

import (
	"sekolahku_backend/internals/features/attendance/student_attendance/model"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

type CreateStudentAttendanceRequest struct {
	StudentAttendanceStudentID string  `json:"student_attendance_student_id" validate:"required,uuid"`
	StudentAttendanceStatus    string  `json:"student_attendance_status" validate:"required"`
	StudentAttendanceNote      *string `json:"student_attendance_note" validate:"omitempty,max=255"`
}

/* ===================== RESPONSES ===================== */

type StudentAttendanceResponse struct {
	StudentAttendanceID        string  `json:"student_attendance_id"`
	StudentAttendanceStudentID string  `json:"student_attendance_student_id"`
	StudentAttendanceClassID   *string `json:"student_attendance_class_id,omitempty"`
	StudentAttendanceStatus    string  `json:"student_attendance_status"`
	StudentAttendanceDate      string  `json:"student_attendance_date"`
	StudentAttendanceTime      string  `json:"student_attendance_time"`
	StudentAttendanceNote      *string `json:"student_attendance_note,omitempty"`
}

func FromModel(m *model.StudentAttendanceModel) StudentAttendanceResponse {
	var classID *string
	if m.StudentAttendanceClassID != nil && *m.StudentAttendanceClassID != uuid.Nil {
		s := m.StudentAttendanceClassID.String()
		classID = &s
	}
	return StudentAttendanceResponse{
		StudentAttendanceID:        m.StudentAttendanceID.String(),
		StudentAttendanceStudentID: m.StudentAttendanceStudentID.String(),
		StudentAttendanceClassID:   classID,
		StudentAttendanceStatus:    m.StudentAttendanceStatus,
		StudentAttendanceDate:      m.StudentAttendanceDate.Format("2006-01-02"),
		StudentAttendanceTime:      m.StudentAttendanceTime.Format("2006-01-02 15:04:05"),
		StudentAttendanceNote:      m.StudentAttendanceNote,
	}
}

func FromModels(ms []model.StudentAttendanceModel) []StudentAttendanceResponse {
	out := make([]StudentAttendanceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

// RecapRow: agregat per kelas per status.
type RecapRow struct {
	ClassID *string `json:"class_id,omitempty" gorm:"column:class_id"`
	Status  string  `json:"status" gorm:"column:status"`
	Total   int64   `json:"total" gorm:"column:total"`
}
