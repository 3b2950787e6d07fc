// file: internals/features/attendance/teacher_attendance/model/teacher_attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   TeacherAttendanceModel — satu baris per guru per status
   per hari kalender WIB. Dedup dijaga dua lapis: cek di
   dalam transaksi + unique index komposit di DB.
   ======================================================= */

type TeacherAttendanceModel struct {
	TeacherAttendanceID uuid.UUID `json:"teacher_attendance_id" gorm:"type:uuid;primaryKey;column:teacher_attendance_id;default:gen_random_uuid()"`

	TeacherAttendanceTeacherID uuid.UUID `json:"teacher_attendance_teacher_id" gorm:"type:uuid;not null;column:teacher_attendance_teacher_id;uniqueIndex:uq_teacher_attendance_day"`

	// "Masuk" atau "Pulang"
	TeacherAttendanceStatus string `json:"teacher_attendance_status" gorm:"type:varchar(10);not null;column:teacher_attendance_status;uniqueIndex:uq_teacher_attendance_day"`

	// Tanggal kalender WIB (tengah malam WIB), kunci dedup harian
	TeacherAttendanceDate time.Time `json:"teacher_attendance_date" gorm:"type:date;not null;column:teacher_attendance_date;uniqueIndex:uq_teacher_attendance_day"`

	// Waktu absen sebenarnya
	TeacherAttendanceTime time.Time `json:"teacher_attendance_time" gorm:"not null;column:teacher_attendance_time"`

	TeacherAttendanceNote *string `json:"teacher_attendance_note,omitempty" gorm:"type:varchar(255);column:teacher_attendance_note"`

	TeacherAttendanceCreatedAt time.Time      `json:"teacher_attendance_created_at" gorm:"column:teacher_attendance_created_at;not null;autoCreateTime"`
	TeacherAttendanceDeletedAt gorm.DeletedAt `json:"teacher_attendance_deleted_at,omitempty" gorm:"column:teacher_attendance_deleted_at;index"`
}

func (TeacherAttendanceModel) TableName() string {
	return "teacher_attendances"
}
