package domain

type RoomType string

const (
	RoomSingle RoomType = "Single"
	RoomDouble RoomType = "Double"
	RoomSuite  RoomType = "Suite"
)

func (t RoomType) String() string { return string(t) }

// Room is a fixed inventory item. PricePerNight is in whole currency units.
type Room struct {
	Number        string
	Type          RoomType
	PricePerNight int64
	available     bool
}

// NewRoom returns an available room.
func NewRoom(number string, t RoomType, pricePerNight int64) *Room {
	return &Room{Number: number, Type: t, PricePerNight: pricePerNight, available: true}
}

func (r *Room) IsAvailable() bool           { return r.available }
func (r *Room) SetAvailability(status bool) { r.available = status }
