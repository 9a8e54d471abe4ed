package domain

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingDelivered BookingStatus = "delivered"
)

// validTransitions defines the allowed state machine transitions.
// Cancelled and delivered are terminal.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingDelivered, BookingCancelled},
}

// Valid reports whether s is a recognised booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingDelivered:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking is an order placed by a user against a marketplace product.
type Booking struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Name        string        `json:"name" bson:"name"`
	Email       string        `json:"email" bson:"email"`
	Phone       string        `json:"phone" bson:"phone"`
	Quantity    int           `json:"quantity" bson:"quantity"`
	TotalAmount float64       `json:"total_amount" bson:"total_amount"`
	ProductName string        `json:"product_name" bson:"product_name"`
	Category    string        `json:"category,omitempty" bson:"category,omitempty"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	ImgURL      string        `json:"img_url,omitempty" bson:"img_url,omitempty"`
	OwnerID     string        `json:"owner_id" bson:"owner_id"`
	OwnerName   string        `json:"owner_name,omitempty" bson:"owner_name,omitempty"`
	OrderedDate time.Time     `json:"ordered_date" bson:"ordered_date"`
	Status      BookingStatus `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

// BookingEvent records a single status change on a booking for the audit trail.
type BookingEvent struct {
	BookingID string
	Status    BookingStatus
	Timestamp time.Time
	Actor     string
}
