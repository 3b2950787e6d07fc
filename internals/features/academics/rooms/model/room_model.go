// file: internals/features/academics/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomModel struct {
	RoomID uuid.UUID `json:"room_id" gorm:"type:uuid;primaryKey;column:room_id;default:gen_random_uuid()"`

	RoomName     string `json:"room_name" gorm:"type:varchar(50);not null;uniqueIndex;column:room_name"` // mis. "Lab Komputer 2"
	RoomLocation *string `json:"room_location,omitempty" gorm:"type:varchar(100);column:room_location"`
	RoomCapacity int    `json:"room_capacity" gorm:"type:int;not null;default:0;column:room_capacity"`

	// Fasilitas bebas bentuk, mis. ["proyektor","ac","wifi"]
	RoomFacilities datatypes.JSON `json:"room_facilities,omitempty" gorm:"type:jsonb;column:room_facilities"`

	RoomIsActive bool `json:"room_is_active" gorm:"not null;default:true;column:room_is_active"`

	RoomCreatedAt time.Time      `json:"room_created_at" gorm:"column:room_created_at;not null;autoCreateTime"`
	RoomUpdatedAt time.Time      `json:"room_updated_at" gorm:"column:room_updated_at;not null;autoUpdateTime"`
	RoomDeletedAt gorm.DeletedAt `json:"room_deleted_at,omitempty" gorm:"column:room_deleted_at;index"`
}

func (RoomModel) TableName() string {
	return "rooms"
}
