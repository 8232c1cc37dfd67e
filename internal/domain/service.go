package domain

type ServiceStatus string

const (
	ServicePending    ServiceStatus = "Pending"
	ServiceInProgress ServiceStatus = "In Progress"
	ServiceCompleted  ServiceStatus = "Completed"
)

// Service types offered at the desk. NoService opts out and is never charged.
const (
	ServiceHousekeeping   = "Housekeeping"
	ServiceTransportation = "Transportation"
	NoService             = "None"
)

type ServiceRequest struct {
	ID      int64
	GuestID int64
	Type    string
	status  ServiceStatus
}

// NewServiceRequest opens a request in the Pending state.
func NewServiceRequest(id, guestID int64, serviceType string) *ServiceRequest {
	return &ServiceRequest{ID: id, GuestID: guestID, Type: serviceType, status: ServicePending}
}

func (r *ServiceRequest) Status() ServiceStatus          { return r.status }
func (r *ServiceRequest) SetStatus(status ServiceStatus) { r.status = status }

// Chargeable is false only for the explicit opt-out.
func (r *ServiceRequest) Chargeable() bool { return r.Type != NoService }

type Feedback struct {
	ID       int64
	GuestID  int64
	Rating   int // 1..5, checked by the caller
	Comments string
}

func NewFeedback(id, guestID int64, rating int, comments string) Feedback {
	return Feedback{ID: id, GuestID: guestID, Rating: rating, Comments: comments}
}
