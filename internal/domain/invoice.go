package domain

import "maps"

// Charge labels printed on invoices.
const (
	ChargeRoom    = "Room Charges"
	ChargeService = "Service"
)

// Charges maps a line label to its amount.
type Charges map[string]int64

func (c Charges) Total() int64 {
	var sum int64
	for _, v := range c {
		sum += v
	}
	return sum
}

// Invoice is computed once from its charges. The charge map is copied so the
// total cannot drift from the lines it was computed from.
type Invoice struct {
	ID        int64
	BookingID int64
	charges   Charges
	total     int64
	payment   *Payment
}

func NewInvoice(id, bookingID int64, charges Charges, paymentID int64, method string) *Invoice {
	lines := maps.Clone(charges)
	if lines == nil {
		lines = Charges{}
	}
	inv := &Invoice{ID: id, BookingID: bookingID, charges: lines, total: lines.Total()}
	inv.payment = NewPayment(paymentID, id, inv.total, method)
	return inv
}

func (i *Invoice) Charges() Charges          { return maps.Clone(i.charges) }
func (i *Invoice) Charge(label string) int64 { return i.charges[label] }
func (i *Invoice) TotalAmount() int64        { return i.total }
func (i *Invoice) Payment() *Payment         { return i.payment }

type Payment struct {
	ID        int64
	InvoiceID int64
	Method    string
	amount    int64
	paid      bool
}

func NewPayment(id, invoiceID, amount int64, method string) *Payment {
	return &Payment{ID: id, InvoiceID: invoiceID, Method: method, amount: amount}
}

func (p *Payment) Amount() int64 { return p.amount }
func (p *Payment) IsPaid() bool  { return p.paid }

// Process marks the payment as settled. Calling it again is a no-op.
func (p *Payment) Process() { p.paid = true }

func (p *Payment) Status() string {
	if p.paid {
		return "Paid"
	}
	return "Not Paid"
}
