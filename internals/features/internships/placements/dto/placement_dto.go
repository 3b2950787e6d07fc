// file: internals/features/internships/placements/dto/placement_dto.go
package dto

import (
	"time"

	"sekolahku_backend/internals/features/internships/placements/model"
	"sekolahku_backend/internals/helpers"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

type CreatePlacementRequest struct {
	PlacementStudentID    string  `json:"placement_student_id" validate:"required,uuid"`
	PlacementCompanyID    string  `json:"placement_company_id" validate:"required,uuid"`
	PlacementSupervisorID *string `json:"placement_supervisor_id" validate:"omitempty,uuid"`
	PlacementStartDate    string  `json:"placement_start_date" validate:"required"` // "2026-07-01"
	PlacementEndDate      *string `json:"placement_end_date"`
	PlacementNotes        *string `json:"placement_notes"`
}

// ToModel: nomor pendaftaran diisi belakangan oleh controller
// dari counter tahunan.
func (r CreatePlacementRequest) ToModel() (*model.PlacementModel, error) {
	studentID, err := uuid.Parse(r.PlacementStudentID)
	if err != nil {
		return nil, err
	}
	companyID, err := uuid.Parse(r.PlacementCompanyID)
	if err != nil {
		return nil, err
	}
	supervisorID, err := helper.UUIDPtrFromString(r.PlacementSupervisorID)
	if err != nil {
		return nil, err
	}
	start, err := helper.ParseDate(r.PlacementStartDate)
	if err != nil {
		return nil, err
	}
	var end *time.Time
	if r.PlacementEndDate != nil && *r.PlacementEndDate != "" {
		d, err := helper.ParseDate(*r.PlacementEndDate)
		if err != nil {
			return nil, err
		}
		end = &d
	}
	return &model.PlacementModel{
		PlacementStudentID:    studentID,
		PlacementCompanyID:    companyID,
		PlacementSupervisorID: supervisorID,
		PlacementStartDate:    start,
		PlacementEndDate:      end,
		PlacementStatus:       model.PlacementStatusPending,
		PlacementNotes:        helper.StrPtrOrNil(r.PlacementNotes),
	}, nil
}

type UpdatePlacementRequest struct {
	PlacementSupervisorID *string `json:"placement_supervisor_id" validate:"omitempty,uuid"`
	PlacementStartDate    *string `json:"placement_start_date"`
	PlacementEndDate      *string `json:"placement_end_date"`
	PlacementStatus       *string `json:"placement_status"`
	PlacementNotes        *string `json:"placement_notes"`
}

func (r UpdatePlacementRequest) ApplyPatch(m *model.PlacementModel) error {
	if r.PlacementSupervisorID != nil {
		supervisorID, err := helper.UUIDPtrFromString(r.PlacementSupervisorID)
		if err != nil {
			return err
		}
		m.PlacementSupervisorID = supervisorID
	}
	if r.PlacementStartDate != nil {
		d, err := helper.ParseDate(*r.PlacementStartDate)
		if err != nil {
			return err
		}
		m.PlacementStartDate = d
	}
	if r.PlacementEndDate != nil {
		if *r.PlacementEndDate == "" {
			m.PlacementEndDate = nil
		} else {
			d, err := helper.ParseDate(*r.PlacementEndDate)
			if err != nil {
				return err
			}
			m.PlacementEndDate = &d
		}
	}
	if r.PlacementStatus != nil {
		m.PlacementStatus = *r.PlacementStatus
	}
	if r.PlacementNotes != nil {
		m.PlacementNotes = helper.StrPtrOrNil(r.PlacementNotes)
	}
	return nil
}

/* ===================== RESPONSES ===================== */

type PlacementResponse struct {
	PlacementID                 string  `json:"placement_id"`
	PlacementStudentID          string  `json:"placement_student_id"`
	PlacementCompanyID          string  `json:"placement_company_id"`
	PlacementSupervisorID       *string `json:"placement_supervisor_id,omitempty"`
	PlacementRegistrationNumber string  `json:"placement_registration_number"`
	PlacementStartDate          string  `json:"placement_start_date"`
	PlacementEndDate            *string `json:"placement_end_date,omitempty"`
	PlacementStatus             string  `json:"placement_status"`
	PlacementNotes              *string `json:"placement_notes,omitempty"`
	PlacementCreatedAt          string  `json:"placement_created_at"`
	PlacementUpdatedAt          string  `json:"placement_updated_at"`
}

func FromModel(m *model.PlacementModel) PlacementResponse {
	var supervisorID *string
	if m.PlacementSupervisorID != nil && *m.PlacementSupervisorID != uuid.Nil {
		s := m.PlacementSupervisorID.String()
		supervisorID = &s
	}
	var endDate *string
	if m.PlacementEndDate != nil {
		s := m.PlacementEndDate.Format("2006-01-02")
		endDate = &s
	}
	return PlacementResponse{
		PlacementID:                 m.PlacementID.String(),
		PlacementStudentID:          m.PlacementStudentID.String(),
		PlacementCompanyID:          m.PlacementCompanyID.String(),
		PlacementSupervisorID:       supervisorID,
		PlacementRegistrationNumber: m.PlacementRegistrationNumber,
		PlacementStartDate:          m.PlacementStartDate.Format("2006-01-02"),
		PlacementEndDate:            endDate,
		PlacementStatus:             m.PlacementStatus,
		PlacementNotes:              m.PlacementNotes,
		PlacementCreatedAt:          m.PlacementCreatedAt.Format("2006-01-02 15:04:05"),
		PlacementUpdatedAt:          m.PlacementUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func FromModels(ms []model.PlacementModel) []PlacementResponse {
	out := make([]PlacementResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
