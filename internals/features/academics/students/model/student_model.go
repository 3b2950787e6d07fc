// file: internals/features/academics/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   StudentModel — map ke tabel students
   ======================================================= */

type StudentModel struct {
	// PK
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;primaryKey;column:student_id;default:gen_random_uuid()"`

	// Akun login (opsional)
	StudentUserID *uuid.UUID `json:"student_user_id,omitempty" gorm:"type:uuid;column:student_user_id"`

	// Kelas aktif
	StudentClassID *uuid.UUID `json:"student_class_id,omitempty" gorm:"type:uuid;column:student_class_id;index"`

	StudentNIS  string `json:"student_nis"  gorm:"type:varchar(20);not null;uniqueIndex;column:student_nis"`
	StudentNISN string `json:"student_nisn" gorm:"type:varchar(20);not null;uniqueIndex;column:student_nisn"`
	StudentName string `json:"student_name" gorm:"type:text;not null;column:student_name"`

	StudentGender    *string    `json:"student_gender,omitempty"    gorm:"type:varchar(1);column:student_gender"` // L/P
	StudentBirthDate *time.Time `json:"student_birth_date,omitempty" gorm:"type:date;column:student_birth_date"`
	StudentPhone     *string    `json:"student_phone,omitempty"     gorm:"type:varchar(20);column:student_phone"`
	StudentAddress   *string    `json:"student_address,omitempty"   gorm:"type:text;column:student_address"`
	StudentPhotoURL  *string    `json:"student_photo_url,omitempty" gorm:"type:text;column:student_photo_url"`

	StudentIsActive bool `json:"student_is_active" gorm:"not null;default:true;column:student_is_active"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at,omitempty" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string {
	return "students"
}
