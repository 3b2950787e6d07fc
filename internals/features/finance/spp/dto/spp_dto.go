// file: internals/features/finance/spp/dto/spp_dto.go
package dto

import (
	"sekolahku_backend/internals/features/finance/spp/model"
)

/* ===================== REQUESTS ===================== */

type CreateSppBillRequest struct {
	SppBillStudentID string `json:"spp_bill_student_id" validate:"required,uuid"`
	SppBillYear      int    `json:"spp_bill_year" validate:"required,min=2000,max=2100"`
	SppBillMonth     int    `json:"spp_bill_month" validate:"required,min=1,max=12"`
	SppBillAmount    int64  `json:"spp_bill_amount" validate:"required,min=1000"`
}

// Payload notifikasi HTTP dari Midtrans. Field lain diabaikan.
type MidtransNotificationRequest struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	SignatureKey      string `json:"signature_key"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
}

/* ===================== RESPONSES ===================== */

type SppBillResponse struct {
	SppBillID        string  `json:"spp_bill_id"`
	SppBillStudentID string  `json:"spp_bill_student_id"`
	SppBillYear      int     `json:"spp_bill_year"`
	SppBillMonth     int     `json:"spp_bill_month"`
	SppBillAmount    int64   `json:"spp_bill_amount"`
	SppBillStatus    string  `json:"spp_bill_status"`
	SppBillOrderID   *string `json:"spp_bill_order_id,omitempty"`
	SppBillSnapURL   *string `json:"spp_bill_snap_url,omitempty"`
	SppBillPaidAt    *string `json:"spp_bill_paid_at,omitempty"`
	SppBillCreatedAt string  `json:"spp_bill_created_at"`
}

func FromModel(m *model.SppBillModel) SppBillResponse {
	var paidAt *string
	if m.SppBillPaidAt != nil {
		s := m.SppBillPaidAt.Format("2006-01-02 15:04:05")
		paidAt = &s
	}
	return SppBillResponse{
		SppBillID:        m.SppBillID.String(),
		SppBillStudentID: m.SppBillStudentID.String(),
		SppBillYear:      m.SppBillYear,
		SppBillMonth:     m.SppBillMonth,
		SppBillAmount:    m.SppBillAmount,
		SppBillStatus:    m.SppBillStatus,
		SppBillOrderID:   m.SppBillOrderID,
		SppBillSnapURL:   m.SppBillSnapURL,
		SppBillPaidAt:    paidAt,
		SppBillCreatedAt: m.SppBillCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func FromModels(ms []model.SppBillModel) []SppBillResponse {
	out := make([]SppBillResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}

// PaySppResponse dikirim setelah transaksi Snap dibuat.
type PaySppResponse struct {
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}
