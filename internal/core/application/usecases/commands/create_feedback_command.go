package commands

import (
	"errors"
	"fmt"

	"waterflow/internal/core/domain/model/feedback"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/errs"
	"waterflow/internal/pkg/guard"
)

var ErrCreateFeedbackCommandIsNotConstructed = errors.New(
	"CreateFeedbackCommand must be created via NewCreateFeedbackCommand constructor",
)

// CreateFeedbackCommand represents a customer rating a completed order.
type CreateFeedbackCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	rating     int
	comment    string

	guard guard.ConstructorGuard
}

// NewCreateFeedbackCommand creates a command to capture order feedback.
// The rating must be between 1 and 5; the comment is optional.
func NewCreateFeedbackCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	rating int,
	comment string,
) (CreateFeedbackCommand, error) {
	cmd := CreateFeedbackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRating(rating),
	); err != nil {
		return CreateFeedbackCommand{}, err
	}

	cmd.comment = comment
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrCreateFeedbackCommandIsNotConstructed)
}

// OrderID returns the order being rated.
func (c CreateFeedbackCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer leaving the feedback.
func (c CreateFeedbackCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Rating returns the 1-5 score.
func (c CreateFeedbackCommand) Rating() int {
	return c.rating
}

// Comment returns the optional free-form comment.
func (c CreateFeedbackCommand) Comment() string {
	return c.comment
}

func (c *CreateFeedbackCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateFeedbackCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateFeedbackCommand) setRating(rating int) error {
	if rating < feedback.MinRating || rating > feedback.MaxRating {
		return errs.NewValueIsOutOfRangeErrorWithCause("rating", rating,
			feedback.MinRating, feedback.MaxRating,
			fmt.Errorf("%d is outside the rating scale", rating))
	}

	c.rating = rating
	return nil
}
