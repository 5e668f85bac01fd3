package queries

import (
	"errors"

	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/guard"
)

var ErrGetUserProfileQueryIsNotConstructed = errors.New(
	"GetUserProfileQuery must be created via NewGetUserProfileQuery constructor",
)

// GetUserProfileQuery resolves the signed-in user's account and linked
// profile records. Backs the session bootstrap endpoint.
type GetUserProfileQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserProfileQuery creates a profile lookup for the given user.
func NewGetUserProfileQuery(userID kernel.UUID) (GetUserProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserProfileQuery{}, err
	}
	return GetUserProfileQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetUserProfileQueryIsNotConstructed)
}

// UserID returns the account being looked up.
func (q GetUserProfileQuery) UserID() kernel.UUID {
	return q.userID
}
