// file: internals/features/academics/schedules/service/conflict_service.go
package service

import (
	"fmt"

	"sekolahku_backend/internals/features/academics/schedules/model"
	"sekolahku_backend/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/* =======================================================
   Deteksi bentrok jadwal.

   Dua slot pada hari yang sama bentrok kalau interval
   [s1,e1) dan [s2,e2) saling menindih:

       s1 < e2 && s2 < e1

   Slot yang hanya bersentuhan di tepi (e1 == s2) TIDAK
   dianggap bentrok.
   ======================================================= */

// Overlaps melaporkan apakah [s1,e1) menindih [s2,e2).
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// ConflictError membawa entitas yang bentrok supaya pesan 409
// bisa menyebut sumbernya (guru / kelas / ruangan).
type ConflictError struct {
	Entity   string // "guru", "kelas", "ruangan"
	Existing *model.ScheduleModel
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("jadwal bentrok dengan %s pada jadwal %s (%s-%s)",
		e.Entity,
		e.Existing.ScheduleID.String(),
		helper.FormatClock(e.Existing.ScheduleStartMinute),
		helper.FormatClock(e.Existing.ScheduleEndMinute),
	)
}

// CheckConflicts memeriksa kandidat terhadap semua jadwal lain di hari
// yang sama yang berbagi guru, kelas, atau ruangan. Baris kandidat
// dikunci (FOR UPDATE) supaya dua request paralel tidak sama-sama
// lolos lalu commit jadwal bentrok. Panggil HANYA di dalam transaksi.
//
// excludeID != uuid.Nil berarti update: jadwal itu sendiri diabaikan.
func CheckConflicts(tx *gorm.DB, cand *model.ScheduleModel, excludeID uuid.UUID) error {
	q := tx.Model(&model.ScheduleModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("schedule_day_of_week = ?", cand.ScheduleDayOfWeek)

	if cand.ScheduleRoomID != nil {
		q = q.Where(
			"(schedule_teacher_id = ? OR schedule_class_id = ? OR schedule_room_id = ?)",
			cand.ScheduleTeacherID, cand.ScheduleClassID, *cand.ScheduleRoomID,
		)
	} else {
		q = q.Where(
			"(schedule_teacher_id = ? OR schedule_class_id = ?)",
			cand.ScheduleTeacherID, cand.ScheduleClassID,
		)
	}
	if excludeID != uuid.Nil {
		q = q.Where("schedule_id <> ?", excludeID)
	}

	var rows []model.ScheduleModel
	if err := q.Find(&rows).Error; err != nil {
		return err
	}

	for i := range rows {
		other := &rows[i]
		if !Overlaps(cand.ScheduleStartMinute, cand.ScheduleEndMinute,
			other.ScheduleStartMinute, other.ScheduleEndMinute) {
			continue
		}
		// Urutan prioritas pesan: guru dulu, lalu kelas, lalu ruangan.
		switch {
		case other.ScheduleTeacherID == cand.ScheduleTeacherID:
			return &ConflictError{Entity: "guru", Existing: other}
		case other.ScheduleClassID == cand.ScheduleClassID:
			return &ConflictError{Entity: "kelas", Existing: other}
		default:
			return &ConflictError{Entity: "ruangan", Existing: other}
		}
	}
	return nil
}
