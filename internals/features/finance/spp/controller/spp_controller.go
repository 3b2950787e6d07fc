// file: internals/features/finance/spp/controller/spp_controller.go
package controller

import (
	"strconv"
	"strings"
	"time"

	userModel "sekolahku_backend/internals/features/users/user/model"
	"sekolahku_backend/internals/features/finance/spp/dto"
	"sekolahku_backend/internals/features/finance/spp/model"
	"sekolahku_backend/internals/features/finance/spp/service"
	"sekolahku_backend/internals/helpers"
	authHelper "sekolahku_backend/internals/helpers/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SppController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSppController(db *gorm.DB) *SppController {
	return &SppController{DB: db, Validate: validator.New()}
}

// lockBillQuery mengambil tagihan dengan row lock, dipanggil dari dalam
// transaksi Pay supaya pembuatan transaksi Snap terserialisasi per tagihan.
func lockBillQuery(tx *gorm.DB, id uuid.UUID) *gorm.DB {
	return tx.Model(&model.SppBillModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("spp_bill_id = ?", id)
}

// GET /spp/bills?student_id=&status=&year=
func (ctl *SppController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.SppBillModel{})

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		tx = tx.Where("spp_bill_student_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		tx = tx.Where("spp_bill_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			tx = tx.Where("spp_bill_year = ?", y)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.SppBillModel
	if err := tx.
		Order("spp_bill_year DESC, spp_bill_month DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar tagihan SPP berhasil diambil", dto.FromModels(rows), pagination)
}

// POST /spp/bills (admin)
// Unique (siswa, tahun, bulan): tagihan ganda satu periode → 409.
func (ctl *SppController) Create(c *fiber.Ctx) error {
	var req dto.CreateSppBillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	studentID, err := uuid.Parse(req.SppBillStudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID siswa tidak valid")
	}

	m := &model.SppBillModel{
		SppBillStudentID: studentID,
		SppBillYear:      req.SppBillYear,
		SppBillMonth:     req.SppBillMonth,
		SppBillAmount:    req.SppBillAmount,
		SppBillStatus:    model.SppStatusUnpaid,
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Tagihan SPP berhasil dibuat", dto.FromModel(m))
}

// POST /spp/bills/:id/pay
// Membuat transaksi Snap dan menyimpan order_id + redirect URL di tagihan.
func (ctl *SppController) Pay(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	// Data pembayar dari user yang login
	payerName := "Wali Siswa"
	payerEmail := ""
	if userID, err := authHelper.GetUserID(c); err == nil {
		var u userModel.UserModel
		if err := ctl.DB.Select("full_name", "email").
			First(&u, "id = ?", userID).Error; err == nil {
			payerName = u.FullName
			payerEmail = u.Email
		}
	}

	// Kunci baris tagihan supaya dua request Pay bersamaan tidak sama-sama
	// membuat transaksi Snap untuk tagihan yang sama.
	var resp dto.PaySppResponse
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var bill model.SppBillModel
		if err := lockBillQuery(tx, id).First(&bill).Error; err != nil {
			return err
		}
		if bill.SppBillStatus == model.SppStatusPaid {
			return fiber.NewError(fiber.StatusConflict, "Tagihan ini sudah lunas")
		}
		if bill.SppBillStatus == model.SppStatusPending && bill.SppBillSnapURL != nil {
			// Transaksi Snap yang masih menunggu dipakai ulang.
			resp = dto.PaySppResponse{RedirectURL: *bill.SppBillSnapURL}
			return nil
		}

		token, redirectURL, err := service.GenerateSnapTransaction(&bill, payerName, payerEmail)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
		}

		orderID := service.BuildOrderID(&bill)
		bill.SppBillOrderID = &orderID
		bill.SppBillSnapURL = &redirectURL
		bill.SppBillStatus = model.SppStatusPending
		if err := tx.Save(&bill).Error; err != nil {
			return err
		}
		resp = dto.PaySppResponse{SnapToken: token, RedirectURL: redirectURL}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Transaksi pembayaran berhasil dibuat", resp)
}

// POST /spp/notification
// Webhook dari Midtrans, tanpa auth. Idempoten: notifikasi ulang
// dengan status sama tidak mengubah apa pun.
func (ctl *SppController) Notification(c *fiber.Ctx) error {
	var req dto.MidtransNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload notifikasi tidak valid")
	}
	if req.OrderID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id kosong")
	}

	var bill model.SppBillModel
	if err := ctl.DB.First(&bill, "spp_bill_order_id = ?", req.OrderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// Balas 200 supaya Midtrans berhenti retry untuk order tak dikenal
			return helper.JsonOK(c, "Order tidak dikenal, diabaikan", nil)
		}
		return helper.WritePGError(c, err)
	}

	newStatus := service.MapTransactionStatus(req.TransactionStatus, req.FraudStatus)
	if bill.SppBillStatus == newStatus {
		return helper.JsonOK(c, "Status tidak berubah", nil)
	}

	bill.SppBillStatus = newStatus
	if newStatus == model.SppStatusPaid && bill.SppBillPaidAt == nil {
		now := time.Now()
		bill.SppBillPaidAt = &now
	}
	if err := ctl.DB.Save(&bill).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Status tagihan diperbarui", dto.FromModel(&bill))
}
