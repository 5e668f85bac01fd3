// Package agentrepo implements the repository pattern for the delivery
// agent aggregate.
package agentrepo

import (
	"time"

	"github.com/google/uuid"

	"waterflow/internal/core/domain/model/agent"
	"waterflow/internal/core/domain/model/kernel"
)

// AgentDTO represents the database structure for persisting delivery agents.
type AgentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"not null"`
	Phone       string     `gorm:"not null"`
	VehicleInfo *string
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "delivery_agents"
}

func fromDomain(aggregate *agent.Agent) AgentDTO {
	dto := AgentDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		IsActive:  aggregate.IsActive(),
		CreatedAt: aggregate.CreatedAt(),
	}

	if id := aggregate.UserID(); id != nil {
		raw := id.Bytes()
		dto.UserID = &raw
	}
	if info := aggregate.VehicleInfo(); info != "" {
		dto.VehicleInfo = &info
	}

	return dto
}

func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		converted, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}
		userID = &converted
	}

	var vehicleInfo string
	if dto.VehicleInfo != nil {
		vehicleInfo = *dto.VehicleInfo
	}

	return agent.RestoreAgent(
		id,
		userID,
		dto.Name,
		dto.Phone,
		vehicleInfo,
		dto.IsActive,
		dto.CreatedAt,
	)
}
