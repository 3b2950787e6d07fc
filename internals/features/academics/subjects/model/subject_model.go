// file: internals/features/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID uuid.UUID `json:"subject_id" gorm:"type:uuid;primaryKey;column:subject_id;default:gen_random_uuid()"`

	SubjectCode string `json:"subject_code" gorm:"type:varchar(20);not null;uniqueIndex;column:subject_code"` // mis. "MTK"
	SubjectName string `json:"subject_name" gorm:"type:varchar(100);not null;column:subject_name"`

	SubjectIsActive bool `json:"subject_is_active" gorm:"not null;default:true;column:subject_is_active"`

	SubjectCreatedAt time.Time      `json:"subject_created_at" gorm:"column:subject_created_at;not null;autoCreateTime"`
	SubjectUpdatedAt time.Time      `json:"subject_updated_at" gorm:"column:subject_updated_at;not null;autoUpdateTime"`
	SubjectDeletedAt gorm.DeletedAt `json:"subject_deleted_at,omitempty" gorm:"column:subject_deleted_at;index"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
