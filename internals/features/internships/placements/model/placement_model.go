// file: internals/features/internships/placements/model/placement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status penempatan PKL
const (
	PlacementStatusPending  = "pending"
	PlacementStatusActive   = "active"
	PlacementStatusFinished = "finished"
	PlacementStatusCanceled = "canceled"
)

type PlacementModel struct {
	PlacementID uuid.UUID `json:"placement_id" gorm:"type:uuid;primaryKey;column:placement_id;default:gen_random_uuid()"`

	PlacementStudentID    uuid.UUID  `json:"placement_student_id" gorm:"type:uuid;not null;index;column:placement_student_id"`
	PlacementCompanyID    uuid.UUID  `json:"placement_company_id" gorm:"type:uuid;not null;index;column:placement_company_id"`
	PlacementSupervisorID *uuid.UUID `json:"placement_supervisor_id,omitempty" gorm:"type:uuid;index;column:placement_supervisor_id"` // guru pembimbing

	// Nomor pendaftaran dari counter tahunan, mis. PKL-2026-0042
	PlacementRegistrationNumber string `json:"placement_registration_number" gorm:"type:varchar(20);not null;uniqueIndex;column:placement_registration_number"`

	PlacementStartDate time.Time  `json:"placement_start_date" gorm:"type:date;not null;column:placement_start_date"`
	PlacementEndDate   *time.Time `json:"placement_end_date,omitempty" gorm:"type:date;column:placement_end_date"`

	PlacementStatus string  `json:"placement_status" gorm:"type:varchar(10);not null;default:'pending';column:placement_status"`
	PlacementNotes  *string `json:"placement_notes,omitempty" gorm:"type:text;column:placement_notes"`

	PlacementCreatedAt time.Time      `json:"placement_created_at" gorm:"column:placement_created_at;not null;autoCreateTime"`
	PlacementUpdatedAt time.Time      `json:"placement_updated_at" gorm:"column:placement_updated_at;not null;autoUpdateTime"`
	PlacementDeletedAt gorm.DeletedAt `json:"placement_deleted_at,omitempty" gorm:"column:placement_deleted_at;index"`
}

func (PlacementModel) TableName() string {
	return "internship_placements"
}

func ValidPlacementStatus(s string) bool {
	switch s {
	case PlacementStatusPending, PlacementStatusActive, PlacementStatusFinished, PlacementStatusCanceled:
		return true
	}
	return false
}
