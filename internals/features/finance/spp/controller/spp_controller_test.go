// file: internals/features/finance/spp/controller/spp_controller_test.go
package controller

import (
	"testing"

	"sekolahku_backend/internals/features/finance/spp/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=sekolahku dbname=sekolahku"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestLockBillQuery_MengunciBarisTagihan(t *testing.T) {
	db := newDryRunDB(t)
	id := uuid.New()

	var rows []model.SppBillModel
	stmt := lockBillQuery(db, id).Limit(1).Find(&rows).Statement
	sql := stmt.SQL.String()

	// Dua request Pay bersamaan harus antre di baris tagihan yang sama,
	// kalau tidak keduanya membuat transaksi Snap sendiri-sendiri.
	assert.Contains(t, sql, "FOR UPDATE")
	assert.Contains(t, sql, "spp_bill_id")
	assert.Contains(t, stmt.Vars, id)
}
