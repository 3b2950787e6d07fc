// file: internals/features/finance/spp/service/midtrans_service_test.go
package service

import (
	"testing"

	"sekolahku_backend/internals/features/finance/spp/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildOrderID(t *testing.T) {
	id := uuid.New()
	bill := &model.SppBillModel{SppBillID: id}

	got := BuildOrderID(bill)
	assert.Equal(t, "SPP-"+id.String(), got)
}

func TestMapTransactionStatus(t *testing.T) {
	tests := []struct {
		name        string
		txStatus    string
		fraudStatus string
		want        string
	}{
		{"settlement", "settlement", "", model.SppStatusPaid},
		{"capture accept", "capture", "accept", model.SppStatusPaid},
		{"capture challenge", "capture", "challenge", model.SppStatusPending},
		{"pending", "pending", "", model.SppStatusPending},
		{"deny", "deny", "", model.SppStatusCanceled},
		{"cancel", "cancel", "", model.SppStatusCanceled},
		{"expire", "expire", "", model.SppStatusExpired},
		{"status asing", "refund", "", model.SppStatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapTransactionStatus(tt.txStatus, tt.fraudStatus))
		})
	}
}
