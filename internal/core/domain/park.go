package domain

type Park struct {
	Name            string
	Location        string
	OperatingHours  string
	CurrentVisitors int
	Attractions     []string
	Events          []string
	Services        []string
	Rides           []*Ride
}

func (p *Park) AddRide(r *Ride) {
	p.Rides = append(p.Rides, r)
}

// RemoveRide reports whether the ride was present. Removing a ride that is
// not in the list is a no-op.
func (p *Park) RemoveRide(r *Ride) bool {
	for i, existing := range p.Rides {
		if existing == r {
			p.Rides = append(p.Rides[:i], p.Rides[i+1:]...)
			return true
		}
	}
	return false
}

// CheckCapacity recomputes the total capacity from the current ride list on
// every call.
func (p *Park) CheckCapacity() int {
	total := 0
	for _, r := range p.Rides {
		total += r.Capacity
	}
	return total
}

func (p *Park) UpdateOperatingHours(hours string) {
	p.OperatingHours = hours
}
