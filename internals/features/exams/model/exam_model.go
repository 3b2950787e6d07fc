// file: internals/features/exams/model/exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Jenis ujian
const (
	ExamTypeUTS     = "uts"
	ExamTypeUAS     = "uas"
	ExamTypeUlangan = "ulangan"
	ExamTypePraktik = "praktik"
)

type ExamModel struct {
	ExamID uuid.UUID `json:"exam_id" gorm:"type:uuid;primaryKey;column:exam_id;default:gen_random_uuid()"`

	ExamClassID   uuid.UUID  `json:"exam_class_id" gorm:"type:uuid;not null;index;column:exam_class_id"`
	ExamSubjectID uuid.UUID  `json:"exam_subject_id" gorm:"type:uuid;not null;index;column:exam_subject_id"`
	ExamRoomID    *uuid.UUID `json:"exam_room_id,omitempty" gorm:"type:uuid;index;column:exam_room_id"`

	ExamType string `json:"exam_type" gorm:"type:varchar(10);not null;column:exam_type"`
	ExamName string `json:"exam_name" gorm:"type:varchar(150);not null;column:exam_name"`

	ExamDate time.Time `json:"exam_date" gorm:"type:date;not null;index;column:exam_date"`

	// Menit sejak tengah malam, [start, end)
	ExamStartMinute int `json:"exam_start_minute" gorm:"type:smallint;not null;column:exam_start_minute"`
	ExamEndMinute   int `json:"exam_end_minute" gorm:"type:smallint;not null;column:exam_end_minute"`

	ExamCreatedAt time.Time      `json:"exam_created_at" gorm:"column:exam_created_at;not null;autoCreateTime"`
	ExamUpdatedAt time.Time      `json:"exam_updated_at" gorm:"column:exam_updated_at;not null;autoUpdateTime"`
	ExamDeletedAt gorm.DeletedAt `json:"exam_deleted_at,omitempty" gorm:"column:exam_deleted_at;index"`
}

func (ExamModel) TableName() string {
	return "exams"
}

func ValidExamType(s string) bool {
	switch s {
	case ExamTypeUTS, ExamTypeUAS, ExamTypeUlangan, ExamTypePraktik:
		return true
	}
	return false
}
