package app

import (
	"context"

	"github.com/cockroachdb/errors"

	"hotel_booking/internal/domain"
)

// Pricing holds the desk's billing settings.
type Pricing struct {
	ServiceFee    int64
	PaymentMethod string
}

// Sequence hands out ids starting at 1.
type Sequence struct{ last int64 }

func (s *Sequence) Next() int64 {
	s.last++
	return s.last
}

type BookingService struct {
	rooms   domain.RoomRepository
	pricing Pricing

	guests, bookings, invoices, payments, requests, feedback Sequence
}

func NewBookingService(r domain.RoomRepository, p Pricing) *BookingService {
	return &BookingService{rooms: r, pricing: p}
}

func (s *BookingService) RegisterGuest(name, contactInfo string, status domain.LoyaltyStatus) *domain.Guest {
	return domain.NewGuest(s.guests.Next(), name, contactInfo, status)
}

func (s *BookingService) SelectRoom(ctx context.Context, number string) (*domain.Room, error) {
	return s.rooms.FindAvailable(ctx, number)
}

// Book records the booking on the guest and takes the room off the market.
// Nothing puts the room back if a later step fails.
func (s *BookingService) Book(ctx context.Context, g *domain.Guest, room *domain.Room, stay domain.StayDates) (*domain.Booking, error) {
	b := domain.NewBooking(s.bookings.Next(), g.ID(), room.Number, stay)
	g.AddBooking(b)
	if err := s.rooms.Hold(ctx, room); err != nil {
		return nil, errors.Wrapf(err, "hold room %s", room.Number)
	}
	return b, nil
}

func (s *BookingService) RequestService(g *domain.Guest, serviceType string) *domain.ServiceRequest {
	req := domain.NewServiceRequest(s.requests.Next(), g.ID(), serviceType)
	g.AddServiceRequest(req)
	return req
}

// Charges is the two-line breakdown: nightly rate times nights, plus the
// service fee unless the guest opted out.
func (s *BookingService) Charges(room *domain.Room, stay domain.StayDates, req *domain.ServiceRequest) domain.Charges {
	var fee int64
	if req != nil && req.Chargeable() {
		fee = s.pricing.ServiceFee
	}
	return domain.Charges{
		domain.ChargeRoom:    room.PricePerNight * int64(stay.Nights()),
		domain.ChargeService: fee,
	}
}

// Bill invoices the booking and settles the payment in full.
func (s *BookingService) Bill(b *domain.Booking, charges domain.Charges) *domain.Invoice {
	inv := b.CreateInvoice(s.invoices.Next(), charges, s.payments.Next(), s.pricing.PaymentMethod)
	inv.Payment().Process()
	return inv
}

// RecordFeedback range-checks the rating before anything is stored.
func (s *BookingService) RecordFeedback(g *domain.Guest, rating int, comments string) (domain.Feedback, error) {
	if err := ValidateRating(rating); err != nil {
		return domain.Feedback{}, err
	}
	f := domain.NewFeedback(s.feedback.Next(), g.ID(), rating, comments)
	g.AddFeedback(f)
	return f, nil
}
