package console_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_booking/internal/adapters/console"
	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
)

func TestTerminal_AskReadsTrimmedLines(t *testing.T) {
	var out bytes.Buffer
	term := console.New(strings.NewReader("  Ana \r\n101\nlast line"), &out)
	ctx := context.Background()

	for _, want := range []string{"Ana", "101", "last line"} {
		got, err := term.Ask(ctx, "? ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, "? ? ? ", out.String())

	_, err := term.Ask(ctx, "? ")
	require.Error(t, err)
	assert.False(t, domain.IsInputError(err))
}

func TestTerminal_AskEmptyLine(t *testing.T) {
	term := console.New(strings.NewReader("\n"), &bytes.Buffer{})
	got, err := term.Ask(context.Background(), "Enter feedback comments: ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTerminal_AskCancelled(t *testing.T) {
	var out bytes.Buffer
	term := console.New(strings.NewReader("Ana\n"), &out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := term.Ask(ctx, "Enter guest name: ")
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, out.Len())
}

func TestTerminal_AskCancelledWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	term := console.New(pr, &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() {
		_, err := term.Ask(ctx, "Enter guest name: ")
		errc <- err
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Ask still blocked after cancel")
	}

	// The abandoned read delivers its line to the next prompt.
	go func() { _, _ = io.WriteString(pw, "Ana\n") }()
	got, err := term.Ask(context.Background(), "Enter guest name: ")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got)
}

func TestTerminal_ShowRoomsListsOnlyAvailable(t *testing.T) {
	var out bytes.Buffer
	taken := domain.NewRoom("103", domain.RoomSuite, 400)
	taken.SetAvailability(false)

	console.New(strings.NewReader(""), &out).ShowRooms([]*domain.Room{
		domain.NewRoom("101", domain.RoomSingle, 150),
		domain.NewRoom("102", domain.RoomDouble, 250),
		taken,
	})

	want := "\n--- Available Rooms ---\n" +
		"Room Number: 101 | Type: Single | Price per night: 150\n" +
		"Room Number: 102 | Type: Double | Price per night: 250\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("rooms listing mismatch (-want +got):\n%s", diff)
	}
}

func TestTerminal_ShowSummary(t *testing.T) {
	var out bytes.Buffer
	console.New(strings.NewReader(""), &out).ShowSummary(app.Summary{
		GuestName:     "Ana",
		RoomNumber:    "101",
		CheckIn:       "2024-01-01",
		CheckOut:      "2024-01-03",
		Nights:        2,
		InvoiceID:     1,
		Total:         300,
		PaymentMethod: "Credit Card",
		PaymentStatus: "Paid",
		ServiceCharge: 0,
		ServiceType:   "None",
		ServiceStatus: "Pending",
		Rating:        5,
		Comments:      "Great stay",
	})

	want := strings.Join([]string{
		"--- Booking Summary ---",
		"Guest Name: Ana",
		"Room Number: 101",
		"Check-in Date: 2024-01-01",
		"Check-out Date: 2024-01-03",
		"Number of nights: 2",
		"Invoice ID: 1",
		"Total Invoice Amount: 300",
		"Payment Method: Credit Card",
		"Payment Status: Paid",
		"Service Charges: 0",
		"--- Service Request ---",
		"Service Requested: None",
		"Request Status: Pending",
		"--- Guest Feedback ---",
		"Rating: 5",
		"Comments: Great stay",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestTerminal_ShowErrorByKind(t *testing.T) {
	var out bytes.Buffer
	term := console.New(strings.NewReader(""), &out)

	term.ShowError(domain.InputError(domain.ErrRoomUnavailable))
	term.ShowError(errors.Wrap(errors.New("bad date"), "parse check-in date"))

	assert.Equal(t,
		"Input error: Selected room is unavailable or invalid.\n"+
			"An unexpected error occurred: parse check-in date: bad date\n",
		out.String())
}
