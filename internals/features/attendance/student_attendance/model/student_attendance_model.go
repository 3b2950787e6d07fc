// file: internals/features/attendance/student_attendance/model/student_attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Satu baris per siswa per status per hari kalender WIB.
type StudentAttendanceModel struct {
	StudentAttendanceID uuid.UUID `json:"student_attendance_id" gorm:"type:uuid;primaryKey;column:student_attendance_id;default:gen_random_uuid()"`

	StudentAttendanceStudentID uuid.UUID `json:"student_attendance_student_id" gorm:"type:uuid;not null;column:student_attendance_student_id;uniqueIndex:uq_student_attendance_day"`

	// Denormalisasi kelas saat absen, untuk rekap per kelas
	StudentAttendanceClassID *uuid.UUID `json:"student_attendance_class_id,omitempty" gorm:"type:uuid;index;column:student_attendance_class_id"`

	// "Masuk" atau "Pulang"
	StudentAttendanceStatus string `json:"student_attendance_status" gorm:"type:varchar(10);not null;column:student_attendance_status;uniqueIndex:uq_student_attendance_day"`

	StudentAttendanceDate time.Time `json:"student_attendance_date" gorm:"type:date;not null;column:student_attendance_date;uniqueIndex:uq_student_attendance_day"`
	StudentAttendanceTime time.Time `json:"student_attendance_time" gorm:"not null;column:student_attendance_time"`

	StudentAttendanceNote *string `json:"student_attendance_note,omitempty" gorm:"type:varchar(255);column:student_attendance_note"`

	StudentAttendanceCreatedAt time.Time      `json:"student_attendance_created_at" gorm:"column:student_attendance_created_at;not null;autoCreateTime"`
	StudentAttendanceDeletedAt gorm.DeletedAt `json:"student_attendance_deleted_at,omitempty" gorm:"column:student_attendance_deleted_at;index"`
}

func (StudentAttendanceModel) TableName() string {
	return "student_attendances"
}
