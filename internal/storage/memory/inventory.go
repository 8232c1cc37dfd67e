package memory

import (
	"context"

	"github.com/cockroachdb/errors"

	"hotel_booking/internal/domain"
)

// DefaultRooms is the hotel's fixed room list.
func DefaultRooms() []*domain.Room {
	return []*domain.Room{
		domain.NewRoom("101", domain.RoomSingle, 150),
		domain.NewRoom("102", domain.RoomDouble, 250),
		domain.NewRoom("103", domain.RoomSuite, 400),
	}
}

// Inventory keeps rooms in list order for the lifetime of the process.
type Inventory struct{ rooms []*domain.Room }

func New(rooms []*domain.Room) *Inventory { return &Inventory{rooms: rooms} }

func (i *Inventory) List(ctx context.Context) ([]*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*domain.Room, len(i.rooms))
	copy(out, i.rooms)
	return out, nil
}

func (i *Inventory) Available(ctx context.Context) ([]*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []*domain.Room
	for _, r := range i.rooms {
		if r.IsAvailable() {
			out = append(out, r)
		}
	}
	return out, nil
}

// FindAvailable returns the first room in list order that matches number and
// is still available.
func (i *Inventory) FindAvailable(ctx context.Context, number string) (*domain.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, r := range i.rooms {
		if r.Number == number && r.IsAvailable() {
			return r, nil
		}
	}
	return nil, domain.InputError(domain.ErrRoomUnavailable)
}

// Hold marks room itself unavailable. Room numbers are not unique, so the
// room is matched by identity rather than by number.
func (i *Inventory) Hold(ctx context.Context, room *domain.Room) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, r := range i.rooms {
		if r == room {
			r.SetAvailability(false)
			return nil
		}
	}
	return errors.Wrapf(domain.ErrRoomNotFound, "room %s", room.Number)
}

// SetAvailability updates the first room in list order with this number.
func (i *Inventory) SetAvailability(ctx context.Context, number string, available bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, r := range i.rooms {
		if r.Number == number {
			r.SetAvailability(available)
			return nil
		}
	}
	return errors.Wrapf(domain.ErrRoomNotFound, "room %s", number)
}
