package order

import (
	"fmt"
	"regexp"

	"waterflow/internal/pkg/errs"
)

// orderNumberPattern matches the display numbers the business hands out,
// e.g. "WO-2025-007". The sequence is zero-padded to three digits but may
// grow beyond them.
var orderNumberPattern = regexp.MustCompile(`^WO-\d{4}-\d{3,}$`)

// ErrOrderNumberIsNotConstructed indicates a zero-value OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via NewOrderNumber or OrderNumberFromString")

// OrderNumber is the human-facing order identity in "WO-<year>-<sequence>"
// form. It is generated at creation time and unique across all orders; the
// storage layer enforces uniqueness with an index and the create workflow
// retries on collision.
type OrderNumber struct {
	value string
}

// NewOrderNumber builds an order number from a year and a 1-based sequence.
// The sequence is zero-padded to three digits.
func NewOrderNumber(year int, sequence int) (OrderNumber, error) {
	if sequence < 1 {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not greater than 0", sequence))
	}
	return OrderNumber{value: fmt.Sprintf("WO-%d-%03d", year, sequence)}, nil
}

// OrderNumberFromString restores an order number from persistence.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if !orderNumberPattern.MatchString(s) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not match WO-<year>-<sequence>", s))
	}
	return OrderNumber{value: s}, nil
}

// String returns the display form, e.g. "WO-2025-007".
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate returns ErrOrderNumberIsNotConstructed for the zero value.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
