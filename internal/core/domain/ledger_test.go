package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonderpark/parkpos/internal/core/domain"
)

func TestDiscountLedger_Set(t *testing.T) {
	ledger := domain.NewDiscountLedger(domain.DefaultCatalog())

	value, err := ledger.Set("Single-Day Pass", "20")
	assert.NoError(t, err)
	assert.Equal(t, 20.0, value)
	assert.Equal(t, 20.0, ledger.Percent("Single-Day Pass"))
}

func TestDiscountLedger_SetClampsToRange(t *testing.T) {
	ledger := domain.NewDiscountLedger(domain.DefaultCatalog())

	value, err := ledger.Set("Group Pass", "150")
	assert.NoError(t, err)
	assert.Equal(t, 100.0, value)

	value, err = ledger.Set("Group Pass", "-5")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, value)
}

func TestDiscountLedger_SetRejectsNonNumeric(t *testing.T) {
	ledger := domain.NewDiscountLedger(domain.DefaultCatalog())

	_, err := ledger.Set("Single-Day Pass", "abc")

	assert.ErrorIs(t, err, domain.ErrInvalidDiscountValue)
	assert.Equal(t, 0.0, ledger.Percent("Single-Day Pass"))
}

func TestSalesLedger_RecordCreatesBucket(t *testing.T) {
	ledger := domain.NewSalesLedger(nil)

	ledger.Record("2025-06-01", "Single-Day Pass", 2)

	assert.Equal(t, 2, ledger.QuantityFor("2025-06-01", "Single-Day Pass"))
	assert.Equal(t, 0, ledger.QuantityFor("2025-06-01", "Group Pass"))
	assert.Equal(t, 0, ledger.QuantityFor("2025-06-02", "Single-Day Pass"))
}

func TestSalesLedger_RecordAccumulates(t *testing.T) {
	ledger := domain.NewSalesLedger(map[string]map[string]int{
		"2025-06-01": {"Single-Day Pass": 3},
	})

	ledger.Record("2025-06-01", "Single-Day Pass", 2)

	assert.Equal(t, 5, ledger.QuantityFor("2025-06-01", "Single-Day Pass"))
}

func TestSalesLedger_RowsSorted(t *testing.T) {
	ledger := domain.NewSalesLedger(map[string]map[string]int{
		"2025-06-02": {"Group Pass": 1},
		"2025-06-01": {"Single-Day Pass": 2, "Multi-Day Pass": 1},
	})

	rows := ledger.Rows()

	assert.Equal(t, []domain.SalesRow{
		{Date: "2025-06-01", Ticket: "Multi-Day Pass", Quantity: 1},
		{Date: "2025-06-01", Ticket: "Single-Day Pass", Quantity: 2},
		{Date: "2025-06-02", Ticket: "Group Pass", Quantity: 1},
	}, rows)
}
