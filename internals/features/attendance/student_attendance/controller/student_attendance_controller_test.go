// file: internals/features/attendance/student_attendance/controller/student_attendance_controller_test.go
package controller

import (
	"strings"
	"testing"
	"time"

	"sekolahku_backend/internals/features/attendance/guard"
	attModel "sekolahku_backend/internals/features/attendance/student_attendance/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB membuka sesi GORM tanpa koneksi nyata; statement
// hanya dirakit jadi SQL, tidak dieksekusi.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=sekolahku dbname=sekolahku"), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestDedupLockQuery_MengunciBarisBukanAgregat(t *testing.T) {
	db := newDryRunDB(t)
	studentID := uuid.New()
	date, err := time.Parse("2006-01-02", "2026-08-31")
	require.NoError(t, err)

	var rows []attModel.StudentAttendanceModel
	stmt := dedupLockQuery(db, studentID, guard.StatusPulang, date).
		Limit(1).Find(&rows).Statement
	sql := stmt.SQL.String()

	// Postgres menolak FOR UPDATE pada query agregat (0A000),
	// jadi guard wajib memilih baris, bukan COUNT.
	assert.Contains(t, sql, "FOR UPDATE")
	assert.NotContains(t, strings.ToLower(sql), "count(")

	assert.Contains(t, sql, "student_attendance_student_id")
	assert.Contains(t, sql, "student_attendance_status")
	assert.Contains(t, sql, "student_attendance_date")
	assert.Contains(t, stmt.Vars, guard.StatusPulang)
	assert.Contains(t, stmt.Vars, studentID)
}

func TestHardDelete_MenghapusPermanen(t *testing.T) {
	db := newDryRunDB(t)
	id := uuid.New()

	stmt := hardDelete(db, id).Statement
	sql := stmt.SQL.String()

	// Index dedup adalah full index; koreksi admin harus DELETE sungguhan,
	// bukan UPDATE deleted_at, supaya absen ulang di hari itu tidak kena 23505.
	assert.True(t, strings.HasPrefix(sql, "DELETE"), "SQL: %s", sql)
	assert.NotContains(t, sql, "deleted_at")
	assert.Contains(t, sql, "student_attendance_id")
}
