package app

import (
	"context"

	"hotel_booking/internal/domain"
)

// Summary is the read model printed at the end of a session.
type Summary struct {
	GuestName     string
	RoomNumber    string
	CheckIn       string
	CheckOut      string
	Nights        int
	InvoiceID     int64
	Total         int64
	PaymentMethod string
	PaymentStatus string
	ServiceCharge int64
	ServiceType   string
	ServiceStatus string
	Rating        int
	Comments      string
}

func (s *BookingService) AvailableRooms(ctx context.Context) ([]*domain.Room, error) {
	return s.rooms.Available(ctx)
}

// Summarize flattens a billed booking and the guest's feedback into a Summary.
func Summarize(g *domain.Guest, b *domain.Booking, req *domain.ServiceRequest, f domain.Feedback) Summary {
	out := Summary{
		GuestName:     g.Name(),
		RoomNumber:    b.RoomNumber,
		CheckIn:       b.Stay.CheckIn.Format(domain.DateLayout),
		CheckOut:      b.Stay.CheckOut.Format(domain.DateLayout),
		Nights:        b.Stay.Nights(),
		ServiceType:   req.Type,
		ServiceStatus: string(req.Status()),
		Rating:        f.Rating,
		Comments:      f.Comments,
	}
	if inv := b.Invoice(); inv != nil {
		out.InvoiceID = inv.ID
		out.Total = inv.TotalAmount()
		out.ServiceCharge = inv.Charge(domain.ChargeService)
		out.PaymentMethod = inv.Payment().Method
		out.PaymentStatus = inv.Payment().Status()
	}
	return out
}
