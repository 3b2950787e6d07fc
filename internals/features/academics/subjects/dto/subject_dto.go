// file: internals/features/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"

	"sekolahku_backend/internals/features/academics/subjects/model"
)

/* ===================== REQUESTS ===================== */

type CreateSubjectRequest struct {
	SubjectCode     string `json:"subject_code" validate:"required,min=2,max=20"`
	SubjectName     string `json:"subject_name" validate:"required,min=2,max=100"`
	SubjectIsActive *bool  `json:"subject_is_active"`
}

func (r CreateSubjectRequest) ToModel() *model.SubjectModel {
	m := &model.SubjectModel{
		SubjectCode:     strings.ToUpper(strings.TrimSpace(r.SubjectCode)),
		SubjectName:     strings.TrimSpace(r.SubjectName),
		SubjectIsActive: true,
	}
	if r.SubjectIsActive != nil {
		m.SubjectIsActive = *r.SubjectIsActive
	}
	return m
}

type UpdateSubjectRequest struct {
	SubjectCode     *string `json:"subject_code" validate:"omitempty,min=2,max=20"`
	SubjectName     *string `json:"subject_name" validate:"omitempty,min=2,max=100"`
	SubjectIsActive *bool   `json:"subject_is_active"`
}

func (r UpdateSubjectRequest) ApplyPatch(m *model.SubjectModel) {
	if r.SubjectCode != nil {
		m.SubjectCode = strings.ToUpper(strings.TrimSpace(*r.SubjectCode))
	}
	if r.SubjectName != nil {
		m.SubjectName = strings.TrimSpace(*r.SubjectName)
	}
	if r.SubjectIsActive != nil {
		m.SubjectIsActive = *r.SubjectIsActive
	}
}

/* ===================== RESPONSES ===================== */

type SubjectResponse struct {
	SubjectID       string `json:"subject_id"`
	SubjectCode     string `json:"subject_code"`
	SubjectName     string `json:"subject_name"`
	SubjectIsActive bool   `json:"subject_is_active"`
	SubjectCreatedAt string `json:"subject_created_at"`
	SubjectUpdatedAt string `json:"subject_updated_at"`
}

func FromModel(m *model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:        m.SubjectID.String(),
		SubjectCode:      m.SubjectCode,
		SubjectName:      m.SubjectName,
		SubjectIsActive:  m.SubjectIsActive,
		SubjectCreatedAt: m.SubjectCreatedAt.Format("2006-01-02 15:04:05"),
		SubjectUpdatedAt: m.SubjectUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func FromModels(ms []model.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
