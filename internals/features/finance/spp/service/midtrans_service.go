// file: internals/features/finance/spp/service/midtrans_service.go
package service

import (
	"fmt"

	"sekolahku_backend/internals/features/finance/spp/model"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var SnapClient snap.Client

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// BuildOrderID menyusun order_id unik per tagihan untuk dikirim ke Midtrans.
func BuildOrderID(bill *model.SppBillModel) string {
	return fmt.Sprintf("SPP-%s", bill.SppBillID.String())
}

// GenerateSnapTransaction membuat transaksi Snap untuk sebuah tagihan SPP.
// Mengembalikan token dan redirect URL halaman pembayaran.
func GenerateSnapTransaction(bill *model.SppBillModel, payerName, payerEmail string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  BuildOrderID(bill),
			GrossAmt: bill.SppBillAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    bill.SppBillID.String(),
				Name:  fmt.Sprintf("SPP %02d/%d", bill.SppBillMonth, bill.SppBillYear),
				Price: bill.SppBillAmount,
				Qty:   1,
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

// MapTransactionStatus memetakan status notifikasi Midtrans ke status tagihan.
// fraud_status hanya relevan saat capture kartu kredit.
func MapTransactionStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return model.SppStatusPaid
		}
		return model.SppStatusPending
	case "settlement":
		return model.SppStatusPaid
	case "pending":
		return model.SppStatusPending
	case "deny", "cancel":
		return model.SppStatusCanceled
	case "expire":
		return model.SppStatusExpired
	default:
		return model.SppStatusPending
	}
}
