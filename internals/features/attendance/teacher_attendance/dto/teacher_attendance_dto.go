// file: internals/features/attendance/teacher_attendance/dto/teacher_attendance_dto.go
package dto

import (
	"sekolahku_backend/internals/features/attendance/teacher_attendance/model"
)

/* ===================== REQUESTS ===================== */

type CreateTeacherAttendanceRequest struct {
	TeacherAttendanceTeacherID string  `json:"teacher_attendance_teacher_id" validate:"required,uuid"`
	TeacherAttendanceStatus    string  `json:"teacher_attendance_status" validate:"required"`
	TeacherAttendanceNote      *string `json:"teacher_attendance_note" validate:"omitempty,max=255"`
}

/* ===================== RESPONSES ===================== */

type TeacherAttendanceResponse struct {
	TeacherAttendanceID        string  `json:"teacher_attendance_id"`
	TeacherAttendanceTeacherID string  `json:"teacher_attendance_teacher_id"`
	TeacherAttendanceStatus    string  `json:"teacher_attendance_status"`
	TeacherAttendanceDate      string  `json:"teacher_attendance_date"`
	TeacherAttendanceTime      string  `json:"teacher_attendance_time"`
	TeacherAttendanceNote      *string `json:"teacher_attendance_note,omitempty"`
}

func FromModel(m *model.TeacherAttendanceModel) TeacherAttendanceResponse {
	return TeacherAttendanceResponse{
		TeacherAttendanceID:        m.TeacherAttendanceID.String(),
		TeacherAttendanceTeacherID: m.TeacherAttendanceTeacherID.String(),
		TeacherAttendanceStatus:    m.TeacherAttendanceStatus,
		TeacherAttendanceDate:      m.TeacherAttendanceDate.Format("2006-01-02"),
		TeacherAttendanceTime:      m.TeacherAttendanceTime.Format("2006-01-02 15:04:05"),
		TeacherAttendanceNote:      m.TeacherAttendanceNote,
	}
}

func FromModels(ms []model.TeacherAttendanceModel) []TeacherAttendanceResponse {
	out := make([]TeacherAttendanceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

// RecapRow: agregat jumlah absen per status per guru.
type RecapRow struct {
	TeacherID string `json:"teacher_id" gorm:"column:teacher_id"`
	Status    string `json:"status" gorm:"column:status"`
	Total     int64  `json:"total" gorm:"column:total"`
}
