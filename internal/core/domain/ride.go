package domain

import "fmt"

type RideStatus string

const (
	RideOpen   RideStatus = "Open"
	RideClosed RideStatus = "Closed"
)

type Ride struct {
	Name          string
	Category      string
	MinHeight     string
	MaxHeight     string
	Duration      string
	Capacity      int
	Status        RideStatus
	ActiveTickets []*Ticket
}

func (r *Ride) CheckStatus() string {
	return fmt.Sprintf("The current status of the ride '%s' is: %s.", r.Name, r.Status)
}

// AddActiveTicket appends without checking capacity. Use Admit with a strict
// Policy when over-capacity adds must be rejected.
func (r *Ride) AddActiveTicket(t *Ticket) {
	r.ActiveTickets = append(r.ActiveTickets, t)
}

func (r *Ride) Admit(t *Ticket, p Policy) error {
	if p.StrictCapacity && len(r.ActiveTickets) >= r.Capacity {
		return ErrRideAtCapacity
	}
	r.AddActiveTicket(t)
	return nil
}

// Reset clears the active tickets and closes the ride.
func (r *Ride) Reset() string {
	r.ActiveTickets = nil
	r.Status = RideClosed
	return fmt.Sprintf("The ride '%s' has been reset. All active tickets are cleared, and the status is now 'Closed'.", r.Name)
}
