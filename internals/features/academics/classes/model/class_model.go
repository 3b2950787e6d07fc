// file: internals/features/academics/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   ClassModel — map ke tabel classes
   ======================================================= */

type ClassModel struct {
	// PK
	ClassID uuid.UUID `json:"class_id" gorm:"type:uuid;primaryKey;column:class_id;default:gen_random_uuid()"`

	ClassName  string `json:"class_name"  gorm:"type:varchar(50);not null;uniqueIndex;column:class_name"` // mis. "XII RPL 1"
	ClassGrade int    `json:"class_grade" gorm:"type:int;not null;column:class_grade"`                    // 10..12
	ClassMajor *string `json:"class_major,omitempty" gorm:"type:varchar(50);column:class_major"`          // mis. "RPL"

	// Wali kelas
	ClassHomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id,omitempty" gorm:"type:uuid;column:class_homeroom_teacher_id"`

	ClassIsActive bool `json:"class_is_active" gorm:"not null;default:true;column:class_is_active"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;not null;autoCreateTime"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;not null;autoUpdateTime"`
	ClassDeletedAt gorm.DeletedAt `json:"class_deleted_at,omitempty" gorm:"column:class_deleted_at;index"`
}

func (ClassModel) TableName() string {
	return "classes"
}
