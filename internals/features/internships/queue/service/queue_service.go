// file: internals/features/internships/queue/service/queue_service.go
package service

import (
	"fmt"

	"gorm.io/gorm"
)

// NextNumber mengambil nomor urut berikutnya untuk tahun tertentu.
// Upsert + increment + RETURNING dalam satu statement: dua request
// paralel tidak mungkin mendapat nomor yang sama karena row counter
// terkunci selama update.
func NextNumber(db *gorm.DB, year int) (int, error) {
	var next int
	err := db.Raw(`
		INSERT INTO internship_queue_counters (queue_counter_year, queue_counter_value)
		VALUES (?, 1)
		ON CONFLICT (queue_counter_year)
		DO UPDATE SET queue_counter_value = internship_queue_counters.queue_counter_value + 1
		RETURNING queue_counter_value
	`, year).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// CurrentNumber membaca posisi counter tanpa menaikkannya.
// 0 berarti belum ada pendaftaran di tahun itu.
func CurrentNumber(db *gorm.DB, year int) (int, error) {
	var current int
	err := db.Raw(`
		SELECT COALESCE(
			(SELECT queue_counter_value FROM internship_queue_counters WHERE queue_counter_year = ?),
			0
		)
	`, year).Scan(&current).Error
	if err != nil {
		return 0, err
	}
	return current, nil
}

// FormatRegistrationNumber menyusun nomor pendaftaran PKL,
// mis. PKL-2026-0042.
func FormatRegistrationNumber(year, number int) string {
	return fmt.Sprintf("PKL-%d-%04d", year, number)
}
