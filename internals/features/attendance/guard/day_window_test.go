// file: internals/features/attendance/guard/day_window_test.go
package guard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocalDateNormalizesToMidnightWIB(t *testing.T) {
	// 2026-01-15 20:00 UTC = 2026-01-16 03:00 WIB
	utc := time.Date(2026, 1, 15, 20, 0, 0, 0, time.UTC)
	d := LocalDate(utc)

	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 16, d.Day())
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, 0, d.Minute())
}

func TestDayWindow(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		wantDay int
	}{
		{
			name:    "siang WIB",
			instant: time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC), // 12:00 WIB
			wantDay: 10,
		},
		{
			name:    "larut malam UTC sudah masuk hari berikutnya WIB",
			instant: time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC), // 01:30 WIB tgl 11
			wantDay: 11,
		},
		{
			name:    "dini hari UTC masih hari yang sama WIB",
			instant: time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC), // 08:00 WIB
			wantDay: 10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := DayWindow(tt.instant)

			assert.Equal(t, tt.wantDay, start.Day())
			assert.Equal(t, 24*time.Hour, end.Sub(start))
			// instant harus berada di dalam jendela [start, end)
			assert.False(t, tt.instant.Before(start))
			assert.True(t, tt.instant.Before(end))
		})
	}
}

func TestSameLocalDay(t *testing.T) {
	// 16:59 UTC dan 17:01 UTC mengapit tengah malam WIB (17:00 UTC)
	before := time.Date(2026, 5, 1, 16, 59, 0, 0, time.UTC)
	after := time.Date(2026, 5, 1, 17, 1, 0, 0, time.UTC)

	assert.False(t, SameLocalDay(before, after))
	assert.True(t, SameLocalDay(before, before.Add(-6*time.Hour)))
}

func TestValidateStatus(t *testing.T) {
	assert.NoError(t, ValidateStatus(StatusMasuk))
	assert.NoError(t, ValidateStatus(StatusPulang))
	assert.ErrorIs(t, ValidateStatus("Hadir"), ErrUnknownStatus)
	assert.ErrorIs(t, ValidateStatus(""), ErrUnknownStatus)
	assert.ErrorIs(t, ValidateStatus("masuk"), ErrUnknownStatus)
}
