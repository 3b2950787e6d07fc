// file: internals/features/academics/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   TeacherModel — map ke tabel teachers
   ======================================================= */

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `json:"teacher_id" gorm:"type:uuid;primaryKey;column:teacher_id;default:gen_random_uuid()"`

	// Akun login (opsional, guru bisa belum punya akun)
	TeacherUserID *uuid.UUID `json:"teacher_user_id,omitempty" gorm:"type:uuid;column:teacher_user_id"`

	TeacherNIP  string  `json:"teacher_nip"  gorm:"type:varchar(30);not null;uniqueIndex;column:teacher_nip"`
	TeacherName string  `json:"teacher_name" gorm:"type:text;not null;column:teacher_name"`

	TeacherPhone    *string `json:"teacher_phone,omitempty"     gorm:"type:varchar(20);column:teacher_phone"`
	TeacherAddress  *string `json:"teacher_address,omitempty"   gorm:"type:text;column:teacher_address"`
	TeacherPhotoURL *string `json:"teacher_photo_url,omitempty" gorm:"type:text;column:teacher_photo_url"`

	TeacherIsActive bool `json:"teacher_is_active" gorm:"not null;default:true;column:teacher_is_active"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;not null;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"teacher_deleted_at,omitempty" gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
