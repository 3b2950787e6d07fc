// file: internals/features/academics/schedules/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   ScheduleModel — jadwal pelajaran mingguan.
   Jam disimpan sebagai menit sejak 00:00 supaya
   perbandingan overlap cukup pakai integer.
   ======================================================= */

type ScheduleModel struct {
	ScheduleID uuid.UUID `json:"schedule_id" gorm:"type:uuid;primaryKey;column:schedule_id;default:gen_random_uuid()"`

	ScheduleClassID   uuid.UUID  `json:"schedule_class_id" gorm:"type:uuid;not null;index;column:schedule_class_id"`
	ScheduleSubjectID uuid.UUID  `json:"schedule_subject_id" gorm:"type:uuid;not null;index;column:schedule_subject_id"`
	ScheduleTeacherID uuid.UUID  `json:"schedule_teacher_id" gorm:"type:uuid;not null;index;column:schedule_teacher_id"`
	ScheduleRoomID    *uuid.UUID `json:"schedule_room_id,omitempty" gorm:"type:uuid;index;column:schedule_room_id"`

	// 1 = Senin .. 7 = Minggu (ISO 8601)
	ScheduleDayOfWeek int `json:"schedule_day_of_week" gorm:"type:smallint;not null;index;column:schedule_day_of_week"`

	// Menit sejak tengah malam, [start, end)
	ScheduleStartMinute int `json:"schedule_start_minute" gorm:"type:smallint;not null;column:schedule_start_minute"`
	ScheduleEndMinute   int `json:"schedule_end_minute" gorm:"type:smallint;not null;column:schedule_end_minute"`

	ScheduleCreatedAt time.Time      `json:"schedule_created_at" gorm:"column:schedule_created_at;not null;autoCreateTime"`
	ScheduleUpdatedAt time.Time      `json:"schedule_updated_at" gorm:"column:schedule_updated_at;not null;autoUpdateTime"`
	ScheduleDeletedAt gorm.DeletedAt `json:"schedule_deleted_at,omitempty" gorm:"column:schedule_deleted_at;index"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}
