// file: internals/features/academics/classes/dto/class_dto.go
package dto

import (
	"sekolahku_backend/internals/features/academics/classes/model"
	"sekolahku_backend/internals/helpers"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

type CreateClassRequest struct {
	ClassName              string  `json:"class_name" validate:"required,min=2,max=50"`
	ClassGrade             int     `json:"class_grade" validate:"required,min=1,max=13"`
	ClassMajor             *string `json:"class_major" validate:"omitempty,max=50"`
	ClassHomeroomTeacherID *string `json:"class_homeroom_teacher_id" validate:"omitempty,uuid"`
	ClassIsActive          *bool   `json:"class_is_active"`
}

func (r CreateClassRequest) ToModel() (*model.ClassModel, error) {
	homeroom, err := helper.UUIDPtrFromString(r.ClassHomeroomTeacherID)
	if err != nil {
		return nil, err
	}
	m := &model.ClassModel{
		ClassName:              r.ClassName,
		ClassGrade:             r.ClassGrade,
		ClassMajor:             helper.StrPtrOrNil(r.ClassMajor),
		ClassHomeroomTeacherID: homeroom,
		ClassIsActive:          true,
	}
	if r.ClassIsActive != nil {
		m.ClassIsActive = *r.ClassIsActive
	}
	return m, nil
}

type UpdateClassRequest struct {
	ClassName              *string `json:"class_name" validate:"omitempty,min=2,max=50"`
	ClassGrade             *int    `json:"class_grade" validate:"omitempty,min=1,max=13"`
	ClassMajor             *string `json:"class_major" validate:"omitempty,max=50"`
	ClassHomeroomTeacherID *string `json:"class_homeroom_teacher_id" validate:"omitempty,uuid"`
	ClassIsActive          *bool   `json:"class_is_active"`
}

// ApplyPatch: hanya field non-nil yang diubah.
func (r UpdateClassRequest) ApplyPatch(m *model.ClassModel) error {
	if r.ClassName != nil {
		m.ClassName = *r.ClassName
	}
	if r.ClassGrade != nil {
		m.ClassGrade = *r.ClassGrade
	}
	if r.ClassMajor != nil {
		m.ClassMajor = helper.StrPtrOrNil(r.ClassMajor)
	}
	if r.ClassHomeroomTeacherID != nil {
		homeroom, err := helper.UUIDPtrFromString(r.ClassHomeroomTeacherID)
		if err != nil {
			return err
		}
		m.ClassHomeroomTeacherID = homeroom
	}
	if r.ClassIsActive != nil {
		m.ClassIsActive = *r.ClassIsActive
	}
	return nil
}

/* ===================== RESPONSES ===================== */

type ClassResponse struct {
	ClassID                string  `json:"class_id"`
	ClassName              string  `json:"class_name"`
	ClassGrade             int     `json:"class_grade"`
	ClassMajor             *string `json:"class_major,omitempty"`
	ClassHomeroomTeacherID *string `json:"class_homeroom_teacher_id,omitempty"`
	ClassIsActive          bool    `json:"class_is_active"`
	ClassCreatedAt         string  `json:"class_created_at"`
	ClassUpdatedAt         string  `json:"class_updated_at"`
}

func FromModel(m *model.ClassModel) ClassResponse {
	var homeroom *string
	if m.ClassHomeroomTeacherID != nil && *m.ClassHomeroomTeacherID != uuid.Nil {
		s := m.ClassHomeroomTeacherID.String()
		homeroom = &s
	}
	return ClassResponse{
		ClassID:                m.ClassID.String(),
		ClassName:              m.ClassName,
		ClassGrade:             m.ClassGrade,
		ClassMajor:             m.ClassMajor,
		ClassHomeroomTeacherID: homeroom,
		ClassIsActive:          m.ClassIsActive,
		ClassCreatedAt:         m.ClassCreatedAt.Format("2006-01-02 15:04:05"),
		ClassUpdatedAt:         m.ClassUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func FromModels(ms []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
