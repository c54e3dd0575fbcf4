package domain

type CatalogEntry struct {
	Type      string
	BasePrice float64
	Validity  string
	Features  string
}

type Catalog []CatalogEntry

func (c Catalog) Entry(ticketType string) (CatalogEntry, bool) {
	for _, e := range c {
		if e.Type == ticketType {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// DefaultCatalog is the fixed set of purchasable passes.
func DefaultCatalog() Catalog {
	return Catalog{
		{Type: "Single-Day Pass", BasePrice: 50.0, Validity: "1 Day", Features: "Access to all rides"},
		{Type: "Multi-Day Pass", BasePrice: 120.0, Validity: "3 Days", Features: "Access to all rides"},
		{Type: "Group Pass", BasePrice: 200.0, Validity: "1 Day", Features: "Access for up to 5 people"},
	}
}

// NewTicket builds a Ticket from a catalog entry with the given discount
// percentage already recorded but not yet applied.
func (e CatalogEntry) NewTicket(discount float64, visitDate string) *Ticket {
	return &Ticket{
		Type:        e.Type,
		Description: e.Features,
		Price:       e.BasePrice,
		Validity:    e.Validity,
		Discount:    discount,
		VisitDate:   visitDate,
	}
}
