package domain

import (
	"fmt"
	"math"
)

type Ticket struct {
	Type        string
	Description string
	Price       float64
	Validity    string
	Discount    float64
	Limitations string
	VisitDate   string
}

// ApplyDiscount reapplies the current discount percentage to the current
// price and stores the result rounded to cents. Calling it again discounts
// the already reduced price.
func (t *Ticket) ApplyDiscount() float64 {
	t.Price = PriceAfterDiscount(t.Price, t.Discount)
	return t.Price
}

func (t *Ticket) Describe() string {
	return fmt.Sprintf(
		"Ticket Type: %s\n"+
			"Description: %s\n"+
			"Price: $%.2f\n"+
			"Discount: %g%%\n"+
			"Validity: %s\n"+
			"Limitations: %s\n"+
			"Visit Date: %s",
		t.Type, t.Description, t.Price, t.Discount, t.Validity, t.Limitations, t.VisitDate,
	)
}

// PriceAfterDiscount returns price reduced by discount percent, rounded to
// two decimal places.
func PriceAfterDiscount(price, discount float64) float64 {
	return round2(price - price*discount/100)
}

// RoundPrice rounds a money amount to cents.
func RoundPrice(v float64) float64 {
	return round2(v)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
