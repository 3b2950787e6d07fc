// file: internals/features/academics/teaching_journals/dto/teaching_journal_dto.go
package dto

import (
	"strings"

	"sekolahku_backend/internals/features/academics/teaching_journals/model"
	"sekolahku_backend/internals/helpers"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type JournalAttachment struct {
	Name string `json:"name" validate:"required,max=100"`
	URL  string `json:"url" validate:"required,url"`
}

/* ===================== REQUESTS ===================== */

type CreateJournalRequest struct {
	JournalTeacherID   string              `json:"journal_teacher_id" validate:"required,uuid"`
	JournalClassID     string              `json:"journal_class_id" validate:"required,uuid"`
	JournalSubjectID   string              `json:"journal_subject_id" validate:"required,uuid"`
	JournalDate        string              `json:"journal_date" validate:"required"` // "2026-01-15"
	JournalTopic       string              `json:"journal_topic" validate:"required,min=3,max=255"`
	JournalNotes       *string             `json:"journal_notes"`
	JournalAttachments []JournalAttachment `json:"journal_attachments" validate:"omitempty,dive"`
}

func (r CreateJournalRequest) ToModel() (*model.TeachingJournalModel, error) {
	teacherID, err := uuid.Parse(r.JournalTeacherID)
	if err != nil {
		return nil, err
	}
	classID, err := uuid.Parse(r.JournalClassID)
	if err != nil {
		return nil, err
	}
	subjectID, err := uuid.Parse(r.JournalSubjectID)
	if err != nil {
		return nil, err
	}
	date, err := helper.ParseDate(r.JournalDate)
	if err != nil {
		return nil, err
	}

	m := &model.TeachingJournalModel{
		JournalTeacherID: teacherID,
		JournalClassID:   classID,
		JournalSubjectID: subjectID,
		JournalDate:      date,
		JournalTopic:     strings.TrimSpace(r.JournalTopic),
		JournalNotes:     helper.StrPtrOrNil(r.JournalNotes),
	}
	if len(r.JournalAttachments) > 0 {
		raw, err := sonic.Marshal(r.JournalAttachments)
		if err != nil {
			return nil, err
		}
		m.JournalAttachments = datatypes.JSON(raw)
	}
	return m, nil
}

type UpdateJournalRequest struct {
	JournalDate        *string              `json:"journal_date"`
	JournalTopic       *string              `json:"journal_topic" validate:"omitempty,min=3,max=255"`
	JournalNotes       *string              `json:"journal_notes"`
	JournalAttachments *[]JournalAttachment `json:"journal_attachments" validate:"omitempty,dive"`
}

func (r UpdateJournalRequest) ApplyPatch(m *model.TeachingJournalModel) error {
	if r.JournalDate != nil {
		date, err := helper.ParseDate(*r.JournalDate)
		if err != nil {
			return err
		}
		m.JournalDate = date
	}
	if r.JournalTopic != nil {
		m.JournalTopic = strings.TrimSpace(*r.JournalTopic)
	}
	if r.JournalNotes != nil {
		m.JournalNotes = helper.StrPtrOrNil(r.JournalNotes)
	}
	if r.JournalAttachments != nil {
		raw, err := sonic.Marshal(*r.JournalAttachments)
		if err != nil {
			return err
		}
		m.JournalAttachments = datatypes.JSON(raw)
	}
	return nil
}

/* ===================== RESPONSES ===================== */

type JournalResponse struct {
	JournalID          string              `json:"journal_id"`
	JournalTeacherID   string              `json:"journal_teacher_id"`
	JournalClassID     string              `json:"journal_class_id"`
	JournalSubjectID   string              `json:"journal_subject_id"`
	JournalDate        string              `json:"journal_date"`
	JournalTopic       string              `json:"journal_topic"`
	JournalNotes       *string             `json:"journal_notes,omitempty"`
	JournalAttachments []JournalAttachment `json:"journal_attachments"`
	JournalCreatedAt   string              `json:"journal_created_at"`
	JournalUpdatedAt   string              `json:"journal_updated_at"`
}

func FromModel(m *model.TeachingJournalModel) JournalResponse {
	attachments := []JournalAttachment{}
	if len(m.JournalAttachments) > 0 {
		_ = sonic.Unmarshal(m.JournalAttachments, &attachments)
	}
	return JournalResponse{
		JournalID:          m.JournalID.String(),
		JournalTeacherID:   m.JournalTeacherID.String(),
		JournalClassID:     m.JournalClassID.String(),
		JournalSubjectID:   m.JournalSubjectID.String(),
		JournalDate:        m.JournalDate.Format("2006-01-02"),
		JournalTopic:       m.JournalTopic,
		JournalNotes:       m.JournalNotes,
		JournalAttachments: attachments,
		JournalCreatedAt:   m.JournalCreatedAt.Format("2006-01-02 15:04:05"),
		JournalUpdatedAt:   m.JournalUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func FromModels(ms []model.TeachingJournalModel) []JournalResponse {
	out := make([]JournalResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
