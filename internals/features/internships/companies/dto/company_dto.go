// file: internals/features/internships/companies/dto/company_dto.go
package dto

import (
	"strings"

	"sekolahku_backend/internals/features/internships/companies/model"
	"sekolahku_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateCompanyRequest struct {
	CompanyName         string  `json:"company_name" validate:"required,min=2,max=150"`
	CompanyAddress      *string `json:"company_address"`
	CompanyCity         *string `json:"company_city" validate:"omitempty,max=100"`
	CompanyContactName  *string `json:"company_contact_name" validate:"omitempty,max=100"`
	CompanyContactPhone *string `json:"company_contact_phone" validate:"omitempty,max=20"`
	CompanyContactEmail *string `json:"company_contact_email" validate:"omitempty,email"`
	CompanyQuota        int     `json:"company_quota" validate:"omitempty,min=0,max=500"`
	CompanyIsActive     *bool   `json:"company_is_active"`
}

func (r CreateCompanyRequest) ToModel() *model.CompanyModel {
	m := &model.CompanyModel{
		CompanyName:         strings.TrimSpace(r.CompanyName),
		CompanyAddress:      helper.StrPtrOrNil(r.CompanyAddress),
		CompanyCity:         helper.StrPtrOrNil(r.CompanyCity),
		CompanyContactName:  helper.StrPtrOrNil(r.CompanyContactName),
		CompanyContactPhone: helper.StrPtrOrNil(r.CompanyContactPhone),
		CompanyContactEmail: helper.StrPtrOrNil(r.CompanyContactEmail),
		CompanyQuota:        r.CompanyQuota,
		CompanyIsActive:     true,
	}
	if r.CompanyIsActive != nil {
		m.CompanyIsActive = *r.CompanyIsActive
	}
	return m
}

type UpdateCompanyRequest struct {
	CompanyName         *string `json:"company_name" validate:"omitempty,min=2,max=150"`
	CompanyAddress      *string `json:"company_address"`
	CompanyCity         *string `json:"company_city" validate:"omitempty,max=100"`
	CompanyContactName  *string `json:"company_contact_name" validate:"omitempty,max=100"`
	CompanyContactPhone *string `json:"company_contact_phone" validate:"omitempty,max=20"`
	CompanyContactEmail *string `json:"company_contact_email" validate:"omitempty,email"`
	CompanyQuota        *int    `json:"company_quota" validate:"omitempty,min=0,max=500"`
	CompanyIsActive     *bool   `json:"company_is_active"`
}

func (r UpdateCompanyRequest) ApplyPatch(m *model.CompanyModel) {
	if r.CompanyName != nil {
		m.CompanyName = strings.TrimSpace(*r.CompanyName)
	}
	if r.CompanyAddress != nil {
		m.CompanyAddress = helper.StrPtrOrNil(r.CompanyAddress)
	}
	if r.CompanyCity != nil {
		m.CompanyCity = helper.StrPtrOrNil(r.CompanyCity)
	}
	if r.CompanyContactName != nil {
		m.CompanyContactName = helper.StrPtrOrNil(r.CompanyContactName)
	}
	if r.CompanyContactPhone != nil {
		m.CompanyContactPhone = helper.StrPtrOrNil(r.CompanyContactPhone)
	}
	if r.CompanyContactEmail != nil {
		m.CompanyContactEmail = helper.StrPtrOrNil(r.CompanyContactEmail)
	}
	if r.CompanyQuota != nil {
		m.CompanyQuota = *r.CompanyQuota
	}
	if r.CompanyIsActive != nil {
		m.CompanyIsActive = *r.CompanyIsActive
	}
}

/* ===================== RESPONSES ===================== */

type CompanyResponse struct {
	CompanyID           string  `json:"company_id"`
	CompanyName         string  `json:"company_name"`
	CompanyAddress      *string `json:"company_address,omitempty"`
	CompanyCity         *string `json:"company_city,omitempty"`
	CompanyContactName  *string `json:"company_contact_name,omitempty"`
	CompanyContactPhone *string `json:"company_contact_phone,omitempty"`
	CompanyContactEmail *string `json:"company_contact_email,omitempty"`
	CompanyQuota        int     `json:"company_quota"`
	CompanyIsActive     bool    `json:"company_is_active"`
	CompanyCreatedAt    string  `json:"company_created_at"`
	CompanyUpdatedAt    string  `json:"company_updated_at"`
}

func FromModel(m *model.CompanyModel) CompanyResponse {
	return CompanyResponse{
		CompanyID:           m.CompanyID.String(),
		CompanyName:         m.CompanyName,
		CompanyAddress:      m.CompanyAddress,
		CompanyCity:         m.CompanyCity,
		CompanyContactName:  m.CompanyContactName,
		CompanyContactPhone: m.CompanyContactPhone,
		CompanyContactEmail: m.CompanyContactEmail,
		CompanyQuota:        m.CompanyQuota,
		CompanyIsActive:     m.CompanyIsActive,
		CompanyCreatedAt:    m.CompanyCreatedAt.Format("2006-01-02 15:04:05"),
		CompanyUpdatedAt:    m.CompanyUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func FromModels(ms []model.CompanyModel) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
