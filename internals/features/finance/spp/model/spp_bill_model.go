// file: internals/features/finance/spp/model/spp_bill_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status tagihan SPP
const (
	SppStatusUnpaid   = "unpaid"
	SppStatusPending  = "pending" // menunggu pembayaran di Midtrans
	SppStatusPaid     = "paid"
	SppStatusExpired  = "expired"
	SppStatusCanceled = "canceled"
)

type SppBillModel struct {
	SppBillID uuid.UUID `json:"spp_bill_id" gorm:"type:uuid;primaryKey;column:spp_bill_id;default:gen_random_uuid()"`

	SppBillStudentID uuid.UUID `json:"spp_bill_student_id" gorm:"type:uuid;not null;column:spp_bill_student_id;uniqueIndex:uq_spp_bill_period"`

	// Periode tagihan
	SppBillYear  int `json:"spp_bill_year" gorm:"type:int;not null;column:spp_bill_year;uniqueIndex:uq_spp_bill_period"`
	SppBillMonth int `json:"spp_bill_month" gorm:"type:smallint;not null;column:spp_bill_month;uniqueIndex:uq_spp_bill_period"`

	// Rupiah, tanpa desimal
	SppBillAmount int64 `json:"spp_bill_amount" gorm:"type:bigint;not null;column:spp_bill_amount"`

	SppBillStatus string `json:"spp_bill_status" gorm:"type:varchar(10);not null;default:'unpaid';column:spp_bill_status"`

	// order_id yang dikirim ke Midtrans, mis. SPP-<uuid>
	SppBillOrderID *string `json:"spp_bill_order_id,omitempty" gorm:"type:varchar(50);uniqueIndex;column:spp_bill_order_id"`

	// URL halaman pembayaran Snap
	SppBillSnapURL *string `json:"spp_bill_snap_url,omitempty" gorm:"type:text;column:spp_bill_snap_url"`

	SppBillPaidAt *time.Time `json:"spp_bill_paid_at,omitempty" gorm:"column:spp_bill_paid_at"`

	SppBillCreatedAt time.Time      `json:"spp_bill_created_at" gorm:"column:spp_bill_created_at;not null;autoCreateTime"`
	SppBillUpdatedAt time.Time      `json:"spp_bill_updated_at" gorm:"column:spp_bill_updated_at;not null;autoUpdateTime"`
	SppBillDeletedAt gorm.DeletedAt `json:"spp_bill_deleted_at,omitempty" gorm:"column:spp_bill_deleted_at;index"`
}

func (SppBillModel) TableName() string {
	return "spp_bills"
}
