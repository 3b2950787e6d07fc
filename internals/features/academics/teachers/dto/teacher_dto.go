// file: internals/features/academics/teachers/dto/teacher_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/academics/teachers/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateTeacherRequest struct {
	TeacherUserID *string `json:"teacher_user_id,omitempty" validate:"omitempty,uuid4"`
	TeacherNIP    string  `json:"teacher_nip"  validate:"required,max=30"`
	TeacherName   string  `json:"teacher_name" validate:"required"`
	TeacherPhone  *string `json:"teacher_phone,omitempty" validate:"omitempty,max=20"`
	TeacherAddress *string `json:"teacher_address,omitempty"`
}

type UpdateTeacherRequest struct {
	TeacherUserID  *string `json:"teacher_user_id,omitempty" validate:"omitempty,uuid4"`
	TeacherNIP     *string `json:"teacher_nip,omitempty"  validate:"omitempty,max=30"`
	TeacherName    *string `json:"teacher_name,omitempty"`
	TeacherPhone   *string `json:"teacher_phone,omitempty" validate:"omitempty,max=20"`
	TeacherAddress *string `json:"teacher_address,omitempty"`
	TeacherIsActive *bool  `json:"teacher_is_active,omitempty"`
}

func (r *CreateTeacherRequest) ToModel() (m.TeacherModel, error) {
	userID, err := helper.UUIDPtrFromString(r.TeacherUserID)
	if err != nil {
		return m.TeacherModel{}, err
	}
	return m.TeacherModel{
		TeacherUserID:   userID,
		TeacherNIP:      strings.TrimSpace(r.TeacherNIP),
		TeacherName:     strings.TrimSpace(r.TeacherName),
		TeacherPhone:    helper.StrPtrOrNil(r.TeacherPhone),
		TeacherAddress:  helper.StrPtrOrNil(r.TeacherAddress),
		TeacherIsActive: true,
	}, nil
}

func (r *UpdateTeacherRequest) ApplyPatch(t *m.TeacherModel) error {
	if r.TeacherUserID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*r.TeacherUserID))
		if err != nil {
			return err
		}
		t.TeacherUserID = &id
	}
	if r.TeacherNIP != nil {
		t.TeacherNIP = strings.TrimSpace(*r.TeacherNIP)
	}
	if r.TeacherName != nil {
		t.TeacherName = strings.TrimSpace(*r.TeacherName)
	}
	if r.TeacherPhone != nil {
		t.TeacherPhone = helper.StrPtrOrNil(r.TeacherPhone)
	}
	if r.TeacherAddress != nil {
		t.TeacherAddress = helper.StrPtrOrNil(r.TeacherAddress)
	}
	if r.TeacherIsActive != nil {
		t.TeacherIsActive = *r.TeacherIsActive
	}
	return nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type TeacherResponse struct {
	TeacherID       string  `json:"teacher_id"`
	TeacherUserID   *string `json:"teacher_user_id,omitempty"`
	TeacherNIP      string  `json:"teacher_nip"`
	TeacherName     string  `json:"teacher_name"`
	TeacherPhone    *string `json:"teacher_phone,omitempty"`
	TeacherAddress  *string `json:"teacher_address,omitempty"`
	TeacherPhotoURL *string `json:"teacher_photo_url,omitempty"`
	TeacherIsActive bool    `json:"teacher_is_active"`
}

func FromModel(t m.TeacherModel) TeacherResponse {
	var userID *string
	if t.TeacherUserID != nil {
		s := t.TeacherUserID.String()
		userID = &s
	}
	return TeacherResponse{
		TeacherID:       t.TeacherID.String(),
		TeacherUserID:   userID,
		TeacherNIP:      t.TeacherNIP,
		TeacherName:     t.TeacherName,
		TeacherPhone:    t.TeacherPhone,
		TeacherAddress:  t.TeacherAddress,
		TeacherPhotoURL: t.TeacherPhotoURL,
		TeacherIsActive: t.TeacherIsActive,
	}
}

func FromModels(ts []m.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromModel(t))
	}
	return out
}
