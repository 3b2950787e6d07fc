// file: internals/features/exams/model/exam_score_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Satu nilai per siswa per ujian.
type ExamScoreModel struct {
	ExamScoreID uuid.UUID `json:"exam_score_id" gorm:"type:uuid;primaryKey;column:exam_score_id;default:gen_random_uuid()"`

	ExamScoreExamID    uuid.UUID `json:"exam_score_exam_id" gorm:"type:uuid;not null;column:exam_score_exam_id;uniqueIndex:uq_exam_score_student"`
	ExamScoreStudentID uuid.UUID `json:"exam_score_student_id" gorm:"type:uuid;not null;column:exam_score_student_id;uniqueIndex:uq_exam_score_student"`

	// 0..100, dua desimal
	ExamScoreValue float64 `json:"exam_score_value" gorm:"type:numeric(5,2);not null;column:exam_score_value"`
	ExamScoreNote  *string `json:"exam_score_note,omitempty" gorm:"type:varchar(255);column:exam_score_note"`

	ExamScoreCreatedAt time.Time      `json:"exam_score_created_at" gorm:"column:exam_score_created_at;not null;autoCreateTime"`
	ExamScoreUpdatedAt time.Time      `json:"exam_score_updated_at" gorm:"column:exam_score_updated_at;not null;autoUpdateTime"`
	ExamScoreDeletedAt gorm.DeletedAt `json:"exam_score_deleted_at,omitempty" gorm:"column:exam_score_deleted_at;index"`
}

func (ExamScoreModel) TableName() string {
	return "exam_scores"
}
