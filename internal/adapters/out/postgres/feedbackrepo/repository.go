package feedbackrepo

import (
	"context"

	"gorm.io/gorm"

	"waterflow/internal/core/domain/model/feedback"
	"waterflow/internal/core/domain/model/kernel"
)

// GormFeedbackRepository implements FeedbackRepository using GORM.
type GormFeedbackRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFeedbackRepository creates a new GORM feedback repository.
func NewGormFeedbackRepository(db *gorm.DB, tracker aggregateTracker) *GormFeedbackRepository {
	return &GormFeedbackRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves new feedback to the database.
func (r *GormFeedbackRepository) Add(ctx context.Context, aggregate *feedback.Feedback) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
