// Package feedbackrepo implements the repository pattern for customer
// feedback.
package feedbackrepo

import (
	"time"

	"github.com/google/uuid"

	"waterflow/internal/core/domain/model/feedback"
	"waterflow/internal/core/domain/model/kernel"
)

// FeedbackDTO represents the database structure for persisting feedback.
type FeedbackDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	Rating     int       `gorm:"not null"`
	Comment    *string
	CreatedAt  time.Time
}

// TableName specifies the database table name for feedback entities.
func (FeedbackDTO) TableName() string {
	return "feedback"
}

func fromDomain(aggregate *feedback.Feedback) FeedbackDTO {
	dto := FeedbackDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Rating:     aggregate.Rating(),
		CreatedAt:  aggregate.CreatedAt(),
	}

	if comment := aggregate.Comment(); comment != "" {
		dto.Comment = &comment
	}

	return dto
}

func toDomain(dto FeedbackDTO) (*feedback.Feedback, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var comment string
	if dto.Comment != nil {
		comment = *dto.Comment
	}

	return feedback.RestoreFeedback(
		id,
		orderID,
		customerID,
		dto.Rating,
		comment,
		dto.CreatedAt,
	)
}
