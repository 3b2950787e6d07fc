// file: internals/features/exams/dto/exam_dto.go
package dto

import (
	"errors"
	"strings"

	"sekolahku_backend/internals/features/exams/model"
	"sekolahku_backend/internals/helpers"

	"github.com/google/uuid"
)

var ErrInvalidTimeRange = errors.New("jam mulai harus sebelum jam selesai")

/* ===================== REQUESTS ===================== */

type CreateExamRequest struct {
	ExamClassID   string  `json:"exam_class_id" validate:"required,uuid"`
	ExamSubjectID string  `json:"exam_subject_id" validate:"required,uuid"`
	ExamRoomID    *string `json:"exam_room_id" validate:"omitempty,uuid"`
	ExamType      string  `json:"exam_type" validate:"required"`
	ExamName      string  `json:"exam_name" validate:"required,min=3,max=150"`
	ExamDate      string  `json:"exam_date" validate:"required"`       // "2026-06-01"
	ExamStartTime string  `json:"exam_start_time" validate:"required"` // "08:00"
	ExamEndTime   string  `json:"exam_end_time" validate:"required"`   // "10:00"
}

func (r CreateExamRequest) ToModel() (*model.ExamModel, error) {
	classID, err := uuid.Parse(r.ExamClassID)
	if err != nil {
		return nil, err
	}
	subjectID, err := uuid.Parse(r.ExamSubjectID)
	if err != nil {
		return nil, err
	}
	roomID, err := helper.UUIDPtrFromString(r.ExamRoomID)
	if err != nil {
		return nil, err
	}
	date, err := helper.ParseDate(r.ExamDate)
	if err != nil {
		return nil, err
	}
	start, err := helper.ParseClock(r.ExamStartTime)
	if err != nil {
		return nil, err
	}
	end, err := helper.ParseClock(r.ExamEndTime)
	if err != nil {
		return nil, err
	}
	if start >= end {
		return nil, ErrInvalidTimeRange
	}
	return &model.ExamModel{
		ExamClassID:     classID,
		ExamSubjectID:   subjectID,
		ExamRoomID:      roomID,
		ExamType:        r.ExamType,
		ExamName:        strings.TrimSpace(r.ExamName),
		ExamDate:        date,
		ExamStartMinute: start,
		ExamEndMinute:   end,
	}, nil
}

type UpdateExamRequest struct {
	ExamRoomID    *string `json:"exam_room_id" validate:"omitempty,uuid"`
	ExamType      *string `json:"exam_type"`
	ExamName      *string `json:"exam_name" validate:"omitempty,min=3,max=150"`
	ExamDate      *string `json:"exam_date"`
	ExamStartTime *string `json:"exam_start_time"`
	ExamEndTime   *string `json:"exam_end_time"`
}

func (r UpdateExamRequest) ApplyPatch(m *model.ExamModel) error {
	if r.ExamRoomID != nil {
		roomID, err := helper.UUIDPtrFromString(r.ExamRoomID)
		if err != nil {
			return err
		}
		m.ExamRoomID = roomID
	}
	if r.ExamType != nil {
		m.ExamType = *r.ExamType
	}
	if r.ExamName != nil {
		m.ExamName = strings.TrimSpace(*r.ExamName)
	}
	if r.ExamDate != nil {
		d, err := helper.ParseDate(*r.ExamDate)
		if err != nil {
			return err
		}
		m.ExamDate = d
	}
	if r.ExamStartTime != nil {
		start, err := helper.ParseClock(*r.ExamStartTime)
		if err != nil {
			return err
		}
		m.ExamStartMinute = start
	}
	if r.ExamEndTime != nil {
		end, err := helper.ParseClock(*r.ExamEndTime)
		if err != nil {
			return err
		}
		m.ExamEndMinute = end
	}
	if m.ExamStartMinute >= m.ExamEndMinute {
		return ErrInvalidTimeRange
	}
	return nil
}

type UpsertExamScoreRequest struct {
	ExamScoreStudentID string  `json:"exam_score_student_id" validate:"required,uuid"`
	ExamScoreValue     float64 `json:"exam_score_value" validate:"min=0,max=100"`
	ExamScoreNote      *string `json:"exam_score_note" validate:"omitempty,max=255"`
}

/* ===================== RESPONSES ===================== */

type ExamResponse struct {
	ExamID        string  `json:"exam_id"`
	ExamClassID   string  `json:"exam_class_id"`
	ExamSubjectID string  `json:"exam_subject_id"`
	ExamRoomID    *string `json:"exam_room_id,omitempty"`
	ExamType      string  `json:"exam_type"`
	ExamName      string  `json:"exam_name"`
	ExamDate      string  `json:"exam_date"`
	ExamStartTime string  `json:"exam_start_time"`
	ExamEndTime   string  `json:"exam_end_time"`
	ExamCreatedAt string  `json:"exam_created_at"`
	ExamUpdatedAt string  `json:"exam_updated_at"`
}

func FromModel(m *model.ExamModel) ExamResponse {
	var roomID *string
	if m.ExamRoomID != nil && *m.ExamRoomID != uuid.Nil {
		s := m.ExamRoomID.String()
		roomID = &s
	}
	return ExamResponse{
		ExamID:        m.ExamID.String(),
		ExamClassID:   m.ExamClassID.String(),
		ExamSubjectID: m.ExamSubjectID.String(),
		ExamRoomID:    roomID,
		ExamType:      m.ExamType,
		ExamName:      m.ExamName,
		ExamDate:      m.ExamDate.Format("2006-01-02"),
		ExamStartTime: helper.FormatClock(m.ExamStartMinute),
		ExamEndTime:   helper.FormatClock(m.ExamEndMinute),
		ExamCreatedAt: m.ExamCreatedAt.Format("2006-01-02 15:04:05"),
		ExamUpdatedAt: m.ExamUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func FromModels(ms []model.ExamModel) []ExamResponse {
	out := make([]ExamResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

type ExamScoreResponse struct {
	ExamScoreID        string  `json:"exam_score_id"`
	ExamScoreExamID    string  `json:"exam_score_exam_id"`
	ExamScoreStudentID string  `json:"exam_score_student_id"`
	ExamScoreValue     float64 `json:"exam_score_value"`
	ExamScoreNote      *string `json:"exam_score_note,omitempty"`
	ExamScoreUpdatedAt string  `json:"exam_score_updated_at"`
}

func ScoreFromModel(m *model.ExamScoreModel) ExamScoreResponse {
	return ExamScoreResponse{
		ExamScoreID:        m.ExamScoreID.String(),
		ExamScoreExamID:    m.ExamScoreExamID.String(),
		ExamScoreStudentID: m.ExamScoreStudentID.String(),
		ExamScoreValue:     m.ExamScoreValue,
		ExamScoreNote:      m.ExamScoreNote,
		ExamScoreUpdatedAt: m.ExamScoreUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ScoresFromModels(ms []model.ExamScoreModel) []ExamScoreResponse {
	out := make([]ExamScoreResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ScoreFromModel(&ms[i]))
	}
	return out
}
