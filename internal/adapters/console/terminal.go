package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
)

// Terminal asks questions on out and reads one answer per line from in.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	// Reads happen on a single goroutine so Ask can give up on a cancelled
	// context while a read is still blocked. An abandoned read is picked up
	// by the next Ask.
	start   sync.Once
	lines   chan readResult
	want    chan struct{}
	pending bool
	readErr error
}

type readResult struct {
	line string
	err  error
}

func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:    bufio.NewReader(in),
		out:   out,
		lines: make(chan readResult, 1),
		want:  make(chan struct{}, 1),
	}
}

// Ask prints question and returns the next input line with surrounding
// whitespace removed. A final line without a newline is still an answer.
// Cancelling ctx returns at once, even while waiting for input.
func (t *Terminal) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "prompt cancelled")
	}
	t.start.Do(func() { go t.readLoop() })
	fmt.Fprint(t.out, question)
	if t.readErr != nil {
		return "", errors.Wrapf(t.readErr, "read answer to %q", strings.TrimSpace(question))
	}

	if !t.pending {
		t.want <- struct{}{}
		t.pending = true
	}
	select {
	case r := <-t.lines:
		t.pending = false
		t.readErr = r.err
		if r.err != nil && !(errors.Is(r.err, io.EOF) && r.line != "") {
			return "", errors.Wrapf(r.err, "read answer to %q", strings.TrimSpace(question))
		}
		return strings.TrimSpace(r.line), nil
	case <-ctx.Done():
		return "", errors.Wrap(ctx.Err(), "prompt cancelled")
	}
}

// readLoop reads one line per request and stops after the first error.
func (t *Terminal) readLoop() {
	for range t.want {
		line, err := t.in.ReadString('\n')
		t.lines <- readResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

func (t *Terminal) ShowRooms(rooms []*domain.Room) {
	fmt.Fprintln(t.out, "\n--- Available Rooms ---")
	for _, r := range rooms {
		if !r.IsAvailable() {
			continue
		}
		fmt.Fprintf(t.out, "Room Number: %s | Type: %s | Price per night: %d\n", r.Number, r.Type, r.PricePerNight)
	}
}

func (t *Terminal) ShowSummary(s app.Summary) {
	w := t.out
	fmt.Fprintln(w, "--- Booking Summary ---")
	fmt.Fprintln(w, "Guest Name:", s.GuestName)
	fmt.Fprintln(w, "Room Number:", s.RoomNumber)
	fmt.Fprintln(w, "Check-in Date:", s.CheckIn)
	fmt.Fprintln(w, "Check-out Date:", s.CheckOut)
	fmt.Fprintln(w, "Number of nights:", s.Nights)
	fmt.Fprintln(w, "Invoice ID:", s.InvoiceID)
	fmt.Fprintln(w, "Total Invoice Amount:", s.Total)
	fmt.Fprintln(w, "Payment Method:", s.PaymentMethod)
	fmt.Fprintln(w, "Payment Status:", s.PaymentStatus)
	fmt.Fprintln(w, "Service Charges:", s.ServiceCharge)

	fmt.Fprintln(w, "--- Service Request ---")
	fmt.Fprintln(w, "Service Requested:", s.ServiceType)
	fmt.Fprintln(w, "Request Status:", s.ServiceStatus)

	fmt.Fprintln(w, "--- Guest Feedback ---")
	fmt.Fprintln(w, "Rating:", s.Rating)
	fmt.Fprintln(w, "Comments:", s.Comments)
}

// ShowError prints err once, prefixed by its kind.
func (t *Terminal) ShowError(err error) {
	if domain.IsInputError(err) {
		fmt.Fprintln(t.out, "Input error:", err)
		return
	}
	fmt.Fprintln(t.out, "An unexpected error occurred:", err)
}
