// Package feedback models post-delivery customer ratings.
package feedback

import (
	"errors"
	"time"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/errs"
	"waterflow/internal/pkg/guard"
)

const (
	// MinRating is the lowest rating a customer can give.
	MinRating = 1
	// MaxRating is the highest rating a customer can give.
	MaxRating = 5
)

// ErrFeedbackIsNotConstructed is returned when a Feedback instance was not
// created through NewFeedback or RestoreFeedback.
var ErrFeedbackIsNotConstructed = errors.New("Feedback must be created via NewFeedback or RestoreFeedback constructor")

// Feedback is a customer's rating of a delivered order.
type Feedback struct {
	id         kernel.UUID
	orderID    kernel.UUID
	customerID kernel.UUID
	rating     int
	comment    string
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewFeedback creates feedback for an order. The create workflow verifies
// the order is delivered before calling this.
func NewFeedback(id, orderID, customerID kernel.UUID, rating int, comment string) (*Feedback, error) {
	f := &Feedback{
		comment:   comment,
		createdAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setID(id),
		f.setOrderID(orderID),
		f.setCustomerID(customerID),
		f.setRating(rating),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// RestoreFeedback reconstructs feedback from persistence.
func RestoreFeedback(
	id, orderID, customerID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Feedback, error) {
	f := &Feedback{
		comment:   comment,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setID(id),
		f.setOrderID(orderID),
		f.setCustomerID(customerID),
		f.setRating(rating),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// Validate ensures the Feedback was constructed through a constructor.
func (f *Feedback) Validate() error {
	if f == nil {
		return ErrFeedbackIsNotConstructed
	}
	return f.guard.Validate(ErrFeedbackIsNotConstructed)
}

// ID returns the feedback identifier.
func (f *Feedback) ID() kernel.UUID { return f.id }

// OrderID returns the rated order.
func (f *Feedback) OrderID() kernel.UUID { return f.orderID }

// CustomerID returns the rating customer.
func (f *Feedback) CustomerID() kernel.UUID { return f.customerID }

// Rating returns the 1-5 star rating.
func (f *Feedback) Rating() int { return f.rating }

// Comment returns the optional free-form comment.
func (f *Feedback) Comment() string { return f.comment }

// CreatedAt returns the creation timestamp.
func (f *Feedback) CreatedAt() time.Time { return f.createdAt }

func (f *Feedback) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Feedback) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.orderID = id
	return nil
}

func (f *Feedback) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.customerID = id
	return nil
}

func (f *Feedback) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	f.rating = rating
	return nil
}
