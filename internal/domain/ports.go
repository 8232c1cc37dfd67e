package domain

import "context"

type RoomRepository interface {
	// Read paths
	List(ctx context.Context) ([]*Room, error)
	Available(ctx context.Context) ([]*Room, error)
	FindAvailable(ctx context.Context, number string) (*Room, error)

	// Write paths
	SetAvailability(ctx context.Context, number string, available bool) error
	// Hold takes exactly this room, as returned by FindAvailable, off the market.
	Hold(ctx context.Context, room *Room) error
}
