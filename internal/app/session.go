package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hotel_booking/internal/domain"
)

// Console is the interactive surface a Session talks to.
type Console interface {
	Ask(ctx context.Context, question string) (string, error)
	ShowRooms(rooms []*domain.Room)
	ShowSummary(s Summary)
	ShowError(err error)
}

// Recorder receives session measurements.
type Recorder interface {
	Booked(roomType string)
	Billed(amount int64)
	Step(name string, d time.Duration)
	Outcome(outcome string)
}

const (
	OutcomeCompleted  = "completed"
	OutcomeInputError = "input_error"
	OutcomeUnexpected = "unexpected_error"
)

// Session drives one guest through a single booking, prompt by prompt.
type Session struct {
	id      uuid.UUID
	svc     *BookingService
	console Console
	rec     Recorder
	log     zerolog.Logger
}

func NewSession(svc *BookingService, c Console, rec Recorder, l zerolog.Logger) *Session {
	if rec == nil {
		rec = nopRecorder{}
	}
	id := uuid.New()
	return &Session{
		id:      id,
		svc:     svc,
		console: c,
		rec:     rec,
		log:     l.With().Str("session", id.String()).Logger(),
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

// Run executes the whole flow. Any failure stops the flow, is shown on the
// console once and returned; the caller has nothing left to clean up.
func (s *Session) Run(ctx context.Context) (Summary, error) {
	s.log.Info().Msg("session started")
	var held string
	out, err := s.run(ctx, &held)
	if err == nil {
		s.rec.Outcome(OutcomeCompleted)
		s.log.Info().Str("room", out.RoomNumber).Int64("total", out.Total).Msg("session completed")
		return out, nil
	}

	if domain.IsInputError(err) {
		s.rec.Outcome(OutcomeInputError)
		s.log.Info().Err(err).Msg("session rejected input")
	} else {
		s.rec.Outcome(OutcomeUnexpected)
		s.log.Error().Err(err).Msg("session failed")
	}
	// No rollback: a room held before the failure stays unavailable.
	if held != "" {
		s.log.Info().Str("room", held).Msg("room hold not released")
	}
	s.console.ShowError(err)
	return Summary{}, err
}

func (s *Session) run(ctx context.Context, held *string) (Summary, error) {
	clk := stepClock{rec: s.rec, last: time.Now()}

	name, err := s.console.Ask(ctx, "Enter guest name: ")
	if err != nil {
		return Summary{}, err
	}
	phone, err := s.console.Ask(ctx, "Enter guest phone number: ")
	if err != nil {
		return Summary{}, err
	}
	rawStatus, err := s.console.Ask(ctx, "Enter loyalty status (Gold/Silver/None): ")
	if err != nil {
		return Summary{}, err
	}
	status, err := ParseLoyaltyStatus(rawStatus)
	if err != nil {
		return Summary{}, err
	}
	guest := s.svc.RegisterGuest(name, phone, status)
	s.log.Debug().Int64("guest", guest.ID()).Str("loyalty", status.String()).Msg("guest registered")
	clk.done("guest")

	rooms, err := s.svc.AvailableRooms(ctx)
	if err != nil {
		return Summary{}, err
	}
	s.console.ShowRooms(rooms)
	number, err := s.console.Ask(ctx, "Enter desired room number: ")
	if err != nil {
		return Summary{}, err
	}
	room, err := s.svc.SelectRoom(ctx, number)
	if err != nil {
		return Summary{}, err
	}
	clk.done("room")

	checkIn, err := s.console.Ask(ctx, "Enter check-in date (YYYY-MM-DD): ")
	if err != nil {
		return Summary{}, err
	}
	checkOut, err := s.console.Ask(ctx, "Enter check-out date (YYYY-MM-DD): ")
	if err != nil {
		return Summary{}, err
	}
	stay, err := ValidateDateRange(checkIn, checkOut)
	if err != nil {
		return Summary{}, err
	}
	clk.done("dates")

	booking, err := s.svc.Book(ctx, guest, room, stay)
	if err != nil {
		return Summary{}, err
	}
	*held = room.Number
	s.rec.Booked(room.Type.String())
	s.log.Info().Int64("booking", booking.ID).Str("room", room.Number).Int("nights", stay.Nights()).Msg("room held")
	clk.done("booking")

	serviceType, err := s.console.Ask(ctx, "Request a service (Housekeeping/Transportation/None): ")
	if err != nil {
		return Summary{}, err
	}
	req := s.svc.RequestService(guest, serviceType)
	inv := s.svc.Bill(booking, s.svc.Charges(room, stay, req))
	s.rec.Billed(inv.TotalAmount())
	s.log.Info().Int64("invoice", inv.ID).Int64("total", inv.TotalAmount()).Bool("paid", inv.Payment().IsPaid()).Msg("booking billed")
	clk.done("billing")

	rawRating, err := s.console.Ask(ctx, "Rate your stay (1-5): ")
	if err != nil {
		return Summary{}, err
	}
	rating, err := ParseRating(rawRating)
	if err != nil {
		return Summary{}, err
	}
	comments, err := s.console.Ask(ctx, "Enter feedback comments: ")
	if err != nil {
		return Summary{}, err
	}
	fb, err := s.svc.RecordFeedback(guest, rating, comments)
	if err != nil {
		return Summary{}, err
	}
	clk.done("feedback")

	out := Summarize(guest, booking, req, fb)
	s.console.ShowSummary(out)
	return out, nil
}

type stepClock struct {
	rec  Recorder
	last time.Time
}

func (c *stepClock) done(step string) {
	now := time.Now()
	c.rec.Step(step, now.Sub(c.last))
	c.last = now
}

type nopRecorder struct{}

func (nopRecorder) Booked(string)              {}
func (nopRecorder) Billed(int64)               {}
func (nopRecorder) Step(string, time.Duration) {}
func (nopRecorder) Outcome(string)             {}
