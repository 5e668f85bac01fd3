package postgres

import (
	"waterflow/internal/adapters/out/postgres/agentrepo"
	"waterflow/internal/adapters/out/postgres/customerrepo"
	"waterflow/internal/adapters/out/postgres/deliveryrepo"
	"waterflow/internal/adapters/out/postgres/feedbackrepo"
	"waterflow/internal/adapters/out/postgres/inventoryrepo"
	"waterflow/internal/adapters/out/postgres/orderrepo"
	"waterflow/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// MigrateSchema creates or updates the tables for every aggregate.
// Order matters only for readability; GORM resolves the constraints.
func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&customerrepo.CustomerDTO{},
		&agentrepo.AgentDTO{},
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
		&feedbackrepo.FeedbackDTO{},
		&inventoryrepo.ItemDTO{},
	)
}
