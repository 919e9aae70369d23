package model

// RoomType is the closed set of room categories.
type RoomType string

const (
	RoomTypeStandard RoomType = "STANDARD"
	RoomTypeJunior   RoomType = "JUNIOR"
	RoomTypeMaster   RoomType = "MASTER"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeStandard, RoomTypeJunior, RoomTypeMaster:
		return true
	}
	return false
}

// Room is catalog data. Number is the permanent key; Type and
// PricePerNight may be updated in place and existing booking snapshots
// are unaffected by such updates.
type Room struct {
	Number        int      `json:"room_number" validate:"min=1"`
	Type          RoomType `json:"room_type" validate:"required,oneof=STANDARD JUNIOR MASTER"`
	PricePerNight int      `json:"price_per_night" validate:"min=0"`
}
