package domain

import "time"

// DateLayout is the calendar format guests type dates in.
const DateLayout = "2006-01-02"

type StayDates struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Nights counts whole days between check-in and check-out. It works in Unix
// seconds because time.Duration cannot span more than about 292 years.
func (d StayDates) Nights() int {
	return int((d.CheckOut.Unix() - d.CheckIn.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// Booking ties a guest to a room for a stay. Guest and room are referenced by
// identifier; the owning collections live on the Guest and the inventory.
type Booking struct {
	ID         int64
	GuestID    int64
	RoomNumber string
	Stay       StayDates
	invoice    *Invoice
}

func NewBooking(id, guestID int64, roomNumber string, stay StayDates) *Booking {
	return &Booking{ID: id, GuestID: guestID, RoomNumber: roomNumber, Stay: stay}
}

// CreateInvoice bills the booking. A booking holds at most one invoice, so a
// second call replaces the first.
func (b *Booking) CreateInvoice(invoiceID int64, charges Charges, paymentID int64, method string) *Invoice {
	b.invoice = NewInvoice(invoiceID, b.ID, charges, paymentID, method)
	return b.invoice
}

// Invoice returns the booking's invoice, or nil before billing.
func (b *Booking) Invoice() *Invoice { return b.invoice }
