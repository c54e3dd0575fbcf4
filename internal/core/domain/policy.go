package domain

// Policy names the lenient behaviors of the original rules so they can be
// tightened without changing call sites. The zero value preserves them all:
// over-capacity ticket adds, removing an absent ride, and over-redemption
// stay silent no-ops.
type Policy struct {
	StrictCapacity    bool
	StrictRideRemoval bool
	StrictRedemption  bool
}
