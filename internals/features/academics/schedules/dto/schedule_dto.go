// file: internals/features/academics/schedules/dto/schedule_dto.go
package dto

import (
	"errors"

	"sekolahku_backend/internals/features/academics/schedules/model"
	"sekolahku_backend/internals/helpers"

	"github.com/google/uuid"
)

var ErrInvalidTimeRange = errors.New("jam mulai harus sebelum jam selesai")

/* ===================== REQUESTS ===================== */

type CreateScheduleRequest struct {
	ScheduleClassID   string  `json:"schedule_class_id" validate:"required,uuid"`
	ScheduleSubjectID string  `json:"schedule_subject_id" validate:"required,uuid"`
	ScheduleTeacherID string  `json:"schedule_teacher_id" validate:"required,uuid"`
	ScheduleRoomID    *string `json:"schedule_room_id" validate:"omitempty,uuid"`
	ScheduleDayOfWeek int     `json:"schedule_day_of_week" validate:"required,min=1,max=7"`
	ScheduleStartTime string  `json:"schedule_start_time" validate:"required"` // "07:30"
	ScheduleEndTime   string  `json:"schedule_end_time" validate:"required"`   // "09:00"
}

func (r CreateScheduleRequest) ToModel() (*model.ScheduleModel, error) {
	classID, err := uuid.Parse(r.ScheduleClassID)
	if err != nil {
		return nil, err
	}
	subjectID, err := uuid.Parse(r.ScheduleSubjectID)
	if err != nil {
		return nil, err
	}
	teacherID, err := uuid.Parse(r.ScheduleTeacherID)
	if err != nil {
		return nil, err
	}
	roomID, err := helper.UUIDPtrFromString(r.ScheduleRoomID)
	if err != nil {
		return nil, err
	}
	start, err := helper.ParseClock(r.ScheduleStartTime)
	if err != nil {
		return nil, err
	}
	end, err := helper.ParseClock(r.ScheduleEndTime)
	if err != nil {
		return nil, err
	}
	if start >= end {
		return nil, ErrInvalidTimeRange
	}
	return &model.ScheduleModel{
		ScheduleClassID:     classID,
		ScheduleSubjectID:   subjectID,
		ScheduleTeacherID:   teacherID,
		ScheduleRoomID:      roomID,
		ScheduleDayOfWeek:   r.ScheduleDayOfWeek,
		ScheduleStartMinute: start,
		ScheduleEndMinute:   end,
	}, nil
}

type UpdateScheduleRequest struct {
	ScheduleClassID   *string `json:"schedule_class_id" validate:"omitempty,uuid"`
	ScheduleSubjectID *string `json:"schedule_subject_id" validate:"omitempty,uuid"`
	ScheduleTeacherID *string `json:"schedule_teacher_id" validate:"omitempty,uuid"`
	ScheduleRoomID    *string `json:"schedule_room_id" validate:"omitempty,uuid"`
	ScheduleDayOfWeek *int    `json:"schedule_day_of_week" validate:"omitempty,min=1,max=7"`
	ScheduleStartTime *string `json:"schedule_start_time"`
	ScheduleEndTime   *string `json:"schedule_end_time"`
}

func (r UpdateScheduleRequest) ApplyPatch(m *model.ScheduleModel) error {
	if r.ScheduleClassID != nil {
		id, err := uuid.Parse(*r.ScheduleClassID)
		if err != nil {
			return err
		}
		m.ScheduleClassID = id
	}
	if r.ScheduleSubjectID != nil {
		id, err := uuid.Parse(*r.ScheduleSubjectID)
		if err != nil {
			return err
		}
		m.ScheduleSubjectID = id
	}
	if r.ScheduleTeacherID != nil {
		id, err := uuid.Parse(*r.ScheduleTeacherID)
		if err != nil {
			return err
		}
		m.ScheduleTeacherID = id
	}
	if r.ScheduleRoomID != nil {
		roomID, err := helper.UUIDPtrFromString(r.ScheduleRoomID)
		if err != nil {
			return err
		}
		m.ScheduleRoomID = roomID
	}
	if r.ScheduleDayOfWeek != nil {
		m.ScheduleDayOfWeek = *r.ScheduleDayOfWeek
	}
	if r.ScheduleStartTime != nil {
		start, err := helper.ParseClock(*r.ScheduleStartTime)
		if err != nil {
			return err
		}
		m.ScheduleStartMinute = start
	}
	if r.ScheduleEndTime != nil {
		end, err := helper.ParseClock(*r.ScheduleEndTime)
		if err != nil {
			return err
		}
		m.ScheduleEndMinute = end
	}
	if m.ScheduleStartMinute >= m.ScheduleEndMinute {
		return ErrInvalidTimeRange
	}
	return nil
}

/* ===================== RESPONSES ===================== */

type ScheduleResponse struct {
	ScheduleID        string  `json:"schedule_id"`
	ScheduleClassID   string  `json:"schedule_class_id"`
	ScheduleSubjectID string  `json:"schedule_subject_id"`
	ScheduleTeacherID string  `json:"schedule_teacher_id"`
	ScheduleRoomID    *string `json:"schedule_room_id,omitempty"`
	ScheduleDayOfWeek int     `json:"schedule_day_of_week"`
	ScheduleStartTime string  `json:"schedule_start_time"`
	ScheduleEndTime   string  `json:"schedule_end_time"`
	ScheduleCreatedAt string  `json:"schedule_created_at"`
	ScheduleUpdatedAt string  `json:"schedule_updated_at"`
}

func FromModel(m *model.ScheduleModel) ScheduleResponse {
	var roomID *string
	if m.ScheduleRoomID != nil && *m.ScheduleRoomID != uuid.Nil {
		s := m.ScheduleRoomID.String()
		roomID = &s
	}
	return ScheduleResponse{
		ScheduleID:        m.ScheduleID.String(),
		ScheduleClassID:   m.ScheduleClassID.String(),
		ScheduleSubjectID: m.ScheduleSubjectID.String(),
		ScheduleTeacherID: m.ScheduleTeacherID.String(),
		ScheduleRoomID:    roomID,
		ScheduleDayOfWeek: m.ScheduleDayOfWeek,
		ScheduleStartTime: helper.FormatClock(m.ScheduleStartMinute),
		ScheduleEndTime:   helper.FormatClock(m.ScheduleEndMinute),
		ScheduleCreatedAt: m.ScheduleCreatedAt.Format("2006-01-02 15:04:05"),
		ScheduleUpdatedAt: m.ScheduleUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func FromModels(ms []model.ScheduleModel) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
