package ports

import (
	"context"

	"waterflow/internal/core/domain/model/feedback"
)

// FeedbackRepository defines the persistence contract for order feedback.
type FeedbackRepository interface {
	// Add persists new feedback.
	Add(ctx context.Context, aggregate *feedback.Feedback) error
}
