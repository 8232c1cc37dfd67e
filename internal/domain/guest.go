package domain

// User is the identity record shared by everyone the hotel deals with.
type User struct {
	id          int64
	name        string
	contactInfo string
}

func NewUser(id int64, name, contactInfo string) User {
	return User{id: id, name: name, contactInfo: contactInfo}
}

func (u *User) ID() int64                  { return u.id }
func (u *User) Name() string               { return u.name }
func (u *User) SetName(name string)        { u.name = name }
func (u *User) ContactInfo() string        { return u.contactInfo }
func (u *User) SetContactInfo(info string) { u.contactInfo = info }

type LoyaltyStatus string

const (
	LoyaltyGold   LoyaltyStatus = "Gold"
	LoyaltySilver LoyaltyStatus = "Silver"
	LoyaltyNone   LoyaltyStatus = "None"
)

func (s LoyaltyStatus) String() string { return string(s) }

// Valid reports whether s is one of the statuses the hotel issues.
func (s LoyaltyStatus) Valid() bool {
	switch s {
	case LoyaltyGold, LoyaltySilver, LoyaltyNone:
		return true
	}
	return false
}

// LoyaltyRewards tracks the points balance of a single guest.
// The balance only ever grows.
type LoyaltyRewards struct {
	guestID int64
	points  uint64
}

func NewLoyaltyRewards(guestID int64) *LoyaltyRewards {
	return &LoyaltyRewards{guestID: guestID}
}

func (r *LoyaltyRewards) GuestID() int64       { return r.guestID }
func (r *LoyaltyRewards) Points() uint64       { return r.points }
func (r *LoyaltyRewards) AddPoints(pts uint64) { r.points += pts }

// Guest is a User staying at the hotel. It owns the bookings, feedback and
// service requests made during the stay.
type Guest struct {
	User
	loyaltyStatus   LoyaltyStatus
	bookings        []*Booking
	feedbacks       []Feedback
	serviceRequests []*ServiceRequest
	rewards         *LoyaltyRewards
}

func NewGuest(id int64, name, contactInfo string, status LoyaltyStatus) *Guest {
	return &Guest{
		User:          NewUser(id, name, contactInfo),
		loyaltyStatus: status,
		rewards:       NewLoyaltyRewards(id),
	}
}

func (g *Guest) LoyaltyStatus() LoyaltyStatus          { return g.loyaltyStatus }
func (g *Guest) SetLoyaltyStatus(status LoyaltyStatus) { g.loyaltyStatus = status }
func (g *Guest) Rewards() *LoyaltyRewards              { return g.rewards }

func (g *Guest) AddBooking(b *Booking)               { g.bookings = append(g.bookings, b) }
func (g *Guest) AddFeedback(f Feedback)              { g.feedbacks = append(g.feedbacks, f) }
func (g *Guest) AddServiceRequest(r *ServiceRequest) { g.serviceRequests = append(g.serviceRequests, r) }

func (g *Guest) Bookings() []*Booking               { return g.bookings }
func (g *Guest) Feedbacks() []Feedback              { return g.feedbacks }
func (g *Guest) ServiceRequests() []*ServiceRequest { return g.serviceRequests }
