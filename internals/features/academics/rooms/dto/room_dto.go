// file: internals/features/academics/rooms/dto/room_dto.go
package dto

import (
	"strings"

	"sekolahku_backend/internals/features/academics/rooms/model"
	"sekolahku_backend/internals/helpers"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

/* ===================== REQUESTS ===================== */

type CreateRoomRequest struct {
	RoomName       string   `json:"room_name" validate:"required,min=2,max=50"`
	RoomLocation   *string  `json:"room_location" validate:"omitempty,max=100"`
	RoomCapacity   int      `json:"room_capacity" validate:"omitempty,min=0,max=1000"`
	RoomFacilities []string `json:"room_facilities" validate:"omitempty,dive,min=1,max=50"`
	RoomIsActive   *bool    `json:"room_is_active"`
}

func (r CreateRoomRequest) ToModel() (*model.RoomModel, error) {
	m := &model.RoomModel{
		RoomName:     strings.TrimSpace(r.RoomName),
		RoomLocation: helper.StrPtrOrNil(r.RoomLocation),
		RoomCapacity: r.RoomCapacity,
		RoomIsActive: true,
	}
	if len(r.RoomFacilities) > 0 {
		raw, err := sonic.Marshal(r.RoomFacilities)
		if err != nil {
			return nil, err
		}
		m.RoomFacilities = datatypes.JSON(raw)
	}
	if r.RoomIsActive != nil {
		m.RoomIsActive = *r.RoomIsActive
	}
	return m, nil
}

type UpdateRoomRequest struct {
	RoomName       *string   `json:"room_name" validate:"omitempty,min=2,max=50"`
	RoomLocation   *string   `json:"room_location" validate:"omitempty,max=100"`
	RoomCapacity   *int      `json:"room_capacity" validate:"omitempty,min=0,max=1000"`
	RoomFacilities *[]string `json:"room_facilities" validate:"omitempty,dive,min=1,max=50"`
	RoomIsActive   *bool     `json:"room_is_active"`
}

func (r UpdateRoomRequest) ApplyPatch(m *model.RoomModel) error {
	if r.RoomName != nil {
		m.RoomName = strings.TrimSpace(*r.RoomName)
	}
	if r.RoomLocation != nil {
		m.RoomLocation = helper.StrPtrOrNil(r.RoomLocation)
	}
	if r.RoomCapacity != nil {
		m.RoomCapacity = *r.RoomCapacity
	}
	if r.RoomFacilities != nil {
		raw, err := sonic.Marshal(*r.RoomFacilities)
		if err != nil {
			return err
		}
		m.RoomFacilities = datatypes.JSON(raw)
	}
	if r.RoomIsActive != nil {
		m.RoomIsActive = *r.RoomIsActive
	}
	return nil
}

/* ===================== RESPONSES ===================== */

type RoomResponse struct {
	RoomID         string   `json:"room_id"`
	RoomName       string   `json:"room_name"`
	RoomLocation   *string  `json:"room_location,omitempty"`
	RoomCapacity   int      `json:"room_capacity"`
	RoomFacilities []string `json:"room_facilities"`
	RoomIsActive   bool     `json:"room_is_active"`
	RoomCreatedAt  string   `json:"room_created_at"`
	RoomUpdatedAt  string   `json:"room_updated_at"`
}

func FromModel(m *model.RoomModel) RoomResponse {
	facilities := []string{}
	if len(m.RoomFacilities) > 0 {
		_ = sonic.Unmarshal(m.RoomFacilities, &facilities)
	}
	return RoomResponse{
		RoomID:         m.RoomID.String(),
		RoomName:       m.RoomName,
		RoomLocation:   m.RoomLocation,
		RoomCapacity:   m.RoomCapacity,
		RoomFacilities: facilities,
		RoomIsActive:   m.RoomIsActive,
		RoomCreatedAt:  m.RoomCreatedAt.Format("2006-01-02 15:04:05"),
		RoomUpdatedAt:  m.RoomUpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func FromModels(ms []model.RoomModel) []RoomResponse {
	out := make([]RoomResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
