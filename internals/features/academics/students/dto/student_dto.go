// file: internals/features/academics/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	m "sekolahku_backend/internals/features/academics/students/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =======================================================
   Request DTOs — tanggal berupa string "YYYY-MM-DD"
   ======================================================= */

type CreateStudentRequest struct {
	StudentUserID    *string `json:"student_user_id,omitempty"  validate:"omitempty,uuid4"`
	StudentClassID   *string `json:"student_class_id,omitempty" validate:"omitempty,uuid4"`
	StudentNIS       string  `json:"student_nis"  validate:"required,max=20"`
	StudentNISN      string  `json:"student_nisn" validate:"required,max=20"`
	StudentName      string  `json:"student_name" validate:"required"`
	StudentGender    *string `json:"student_gender,omitempty" validate:"omitempty,oneof=L P"`
	StudentBirthDate *string `json:"student_birth_date,omitempty"`
	StudentPhone     *string `json:"student_phone,omitempty" validate:"omitempty,max=20"`
	StudentAddress   *string `json:"student_address,omitempty"`
}

type UpdateStudentRequest struct {
	StudentUserID    *string `json:"student_user_id,omitempty"  validate:"omitempty,uuid4"`
	StudentClassID   *string `json:"student_class_id,omitempty" validate:"omitempty,uuid4"`
	StudentNIS       *string `json:"student_nis,omitempty"  validate:"omitempty,max=20"`
	StudentNISN      *string `json:"student_nisn,omitempty" validate:"omitempty,max=20"`
	StudentName      *string `json:"student_name,omitempty"`
	StudentGender    *string `json:"student_gender,omitempty" validate:"omitempty,oneof=L P"`
	StudentBirthDate *string `json:"student_birth_date,omitempty"`
	StudentPhone     *string `json:"student_phone,omitempty" validate:"omitempty,max=20"`
	StudentAddress   *string `json:"student_address,omitempty"`
	StudentIsActive  *bool   `json:"student_is_active,omitempty"`
}

func parseBirthDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := helper.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *CreateStudentRequest) ToModel() (m.StudentModel, error) {
	userID, err := helper.UUIDPtrFromString(r.StudentUserID)
	if err != nil {
		return m.StudentModel{}, err
	}
	classID, err := helper.UUIDPtrFromString(r.StudentClassID)
	if err != nil {
		return m.StudentModel{}, err
	}
	birth, err := parseBirthDate(r.StudentBirthDate)
	if err != nil {
		return m.StudentModel{}, err
	}
	return m.StudentModel{
		StudentUserID:    userID,
		StudentClassID:   classID,
		StudentNIS:       strings.TrimSpace(r.StudentNIS),
		StudentNISN:      strings.TrimSpace(r.StudentNISN),
		StudentName:      strings.TrimSpace(r.StudentName),
		StudentGender:    helper.StrPtrOrNil(r.StudentGender),
		StudentBirthDate: birth,
		StudentPhone:     helper.StrPtrOrNil(r.StudentPhone),
		StudentAddress:   helper.StrPtrOrNil(r.StudentAddress),
		StudentIsActive:  true,
	}, nil
}

func (r *UpdateStudentRequest) ApplyPatch(s *m.StudentModel) error {
	if r.StudentUserID != nil {
		id, err := helper.UUIDPtrFromString(r.StudentUserID)
		if err != nil {
			return err
		}
		s.StudentUserID = id
	}
	if r.StudentClassID != nil {
		id, err := helper.UUIDPtrFromString(r.StudentClassID)
		if err != nil {
			return err
		}
		s.StudentClassID = id
	}
	if r.StudentNIS != nil {
		s.StudentNIS = strings.TrimSpace(*r.StudentNIS)
	}
	if r.StudentNISN != nil {
		s.StudentNISN = strings.TrimSpace(*r.StudentNISN)
	}
	if r.StudentName != nil {
		s.StudentName = strings.TrimSpace(*r.StudentName)
	}
	if r.StudentGender != nil {
		s.StudentGender = helper.StrPtrOrNil(r.StudentGender)
	}
	if r.StudentBirthDate != nil {
		t, err := parseBirthDate(r.StudentBirthDate)
		if err != nil {
			return err
		}
		s.StudentBirthDate = t
	}
	if r.StudentPhone != nil {
		s.StudentPhone = helper.StrPtrOrNil(r.StudentPhone)
	}
	if r.StudentAddress != nil {
		s.StudentAddress = helper.StrPtrOrNil(r.StudentAddress)
	}
	if r.StudentIsActive != nil {
		s.StudentIsActive = *r.StudentIsActive
	}
	return nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type StudentResponse struct {
	StudentID        string  `json:"student_id"`
	StudentUserID    *string `json:"student_user_id,omitempty"`
	StudentClassID   *string `json:"student_class_id,omitempty"`
	StudentNIS       string  `json:"student_nis"`
	StudentNISN      string  `json:"student_nisn"`
	StudentName      string  `json:"student_name"`
	StudentGender    *string `json:"student_gender,omitempty"`
	StudentBirthDate *string `json:"student_birth_date,omitempty"`
	StudentPhone     *string `json:"student_phone,omitempty"`
	StudentAddress   *string `json:"student_address,omitempty"`
	StudentPhotoURL  *string `json:"student_photo_url,omitempty"`
	StudentIsActive  bool    `json:"student_is_active"`
}

func FromModel(s m.StudentModel) StudentResponse {
	var userID, classID, birth *string
	if s.StudentUserID != nil {
		v := s.StudentUserID.String()
		userID = &v
	}
	if s.StudentClassID != nil {
		v := s.StudentClassID.String()
		classID = &v
	}
	if s.StudentBirthDate != nil {
		v := s.StudentBirthDate.Format("2006-01-02")
		birth = &v
	}
	return StudentResponse{
		StudentID:        s.StudentID.String(),
		StudentUserID:    userID,
		StudentClassID:   classID,
		StudentNIS:       s.StudentNIS,
		StudentNISN:      s.StudentNISN,
		StudentName:      s.StudentName,
		StudentGender:    s.StudentGender,
		StudentBirthDate: birth,
		StudentPhone:     s.StudentPhone,
		StudentAddress:   s.StudentAddress,
		StudentPhotoURL:  s.StudentPhotoURL,
		StudentIsActive:  s.StudentIsActive,
	}
}

func FromModels(ss []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromModel(s))
	}
	return out
}
