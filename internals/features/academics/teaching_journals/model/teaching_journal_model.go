// file: internals/features/academics/teaching_journals/model/teaching_journal_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Jurnal KBM: catatan guru per pertemuan.
type TeachingJournalModel struct {
	JournalID uuid.UUID `json:"journal_id" gorm:"type:uuid;primaryKey;column:journal_id;default:gen_random_uuid()"`

	JournalTeacherID uuid.UUID `json:"journal_teacher_id" gorm:"type:uuid;not null;index;column:journal_teacher_id"`
	JournalClassID   uuid.UUID `json:"journal_class_id" gorm:"type:uuid;not null;index;column:journal_class_id"`
	JournalSubjectID uuid.UUID `json:"journal_subject_id" gorm:"type:uuid;not null;index;column:journal_subject_id"`

	JournalDate  time.Time `json:"journal_date" gorm:"type:date;not null;index;column:journal_date"`
	JournalTopic string    `json:"journal_topic" gorm:"type:varchar(255);not null;column:journal_topic"`
	JournalNotes *string   `json:"journal_notes,omitempty" gorm:"type:text;column:journal_notes"`

	// Lampiran bebas bentuk: [{"name":"modul.pdf","url":"..."}]
	JournalAttachments datatypes.JSON `json:"journal_attachments,omitempty" gorm:"type:jsonb;column:journal_attachments"`

	JournalCreatedAt time.Time      `json:"journal_created_at" gorm:"column:journal_created_at;not null;autoCreateTime"`
	JournalUpdatedAt time.Time      `json:"journal_updated_at" gorm:"column:journal_updated_at;not null;autoUpdateTime"`
	JournalDeletedAt gorm.DeletedAt `json:"journal_deleted_at,omitempty" gorm:"column:journal_deleted_at;index"`
}

func (TeachingJournalModel) TableName() string {
	return "teaching_journals"
}
