// file: internals/features/internships/companies/model/company_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Perusahaan mitra tempat PKL/magang siswa.
type CompanyModel struct {
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;primaryKey;column:company_id;default:gen_random_uuid()"`

	CompanyName    string  `json:"company_name" gorm:"type:varchar(150);not null;uniqueIndex;column:company_name"`
	CompanyAddress *string `json:"company_address,omitempty" gorm:"type:text;column:company_address"`
	CompanyCity    *string `json:"company_city,omitempty" gorm:"type:varchar(100);column:company_city"`

	CompanyContactName  *string `json:"company_contact_name,omitempty" gorm:"type:varchar(100);column:company_contact_name"`
	CompanyContactPhone *string `json:"company_contact_phone,omitempty" gorm:"type:varchar(20);column:company_contact_phone"`
	CompanyContactEmail *string `json:"company_contact_email,omitempty" gorm:"type:varchar(100);column:company_contact_email"`

	// Kuota siswa magang per periode, 0 = tidak dibatasi
	CompanyQuota int `json:"company_quota" gorm:"type:int;not null;default:0;column:company_quota"`

	CompanyIsActive bool `json:"company_is_active" gorm:"not null;default:true;column:company_is_active"`

	CompanyCreatedAt time.Time      `json:"company_created_at" gorm:"column:company_created_at;not null;autoCreateTime"`
	CompanyUpdatedAt time.Time      `json:"company_updated_at" gorm:"column:company_updated_at;not null;autoUpdateTime"`
	CompanyDeletedAt gorm.DeletedAt `json:"company_deleted_at,omitempty" gorm:"column:company_deleted_at;index"`
}

func (CompanyModel) TableName() string {
	return "internship_companies"
}
