// file: internals/features/attendance/guard/day_window.go
package guard

import (
	"errors"
	"time"
)

// Semua perhitungan "hari" absensi memakai WIB, bukan UTC.
// Absen jam 23:30 dan 00:30 WIB adalah dua hari berbeda walau
// selisih UTC-nya cuma satu jam.
var jakarta *time.Location

func init() {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		// WIB = UTC+7, tanpa DST
		loc = time.FixedZone("WIB", 7*3600)
	}
	jakarta = loc
}

// Status absensi yang dikenal.
const (
	StatusMasuk  = "Masuk"
	StatusPulang = "Pulang"
)

var ErrUnknownStatus = errors.New("status absensi harus Masuk atau Pulang")

func ValidateStatus(status string) error {
	if status != StatusMasuk && status != StatusPulang {
		return ErrUnknownStatus
	}
	return nil
}

// LocalDate mengembalikan tanggal kalender WIB dari sebuah instant,
// dinormalkan ke tengah malam WIB. Dipakai sebagai kolom tanggal
// absensi sekaligus kunci dedup per hari.
func LocalDate(t time.Time) time.Time {
	l := t.In(jakarta)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, jakarta)
}

// DayWindow mengembalikan [awal, akhir) hari kalender WIB yang memuat t.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := LocalDate(t)
	return start, start.AddDate(0, 0, 1)
}

// SameLocalDay melaporkan apakah dua instant jatuh di hari WIB yang sama.
func SameLocalDay(a, b time.Time) bool {
	return LocalDate(a).Equal(LocalDate(b))
}
