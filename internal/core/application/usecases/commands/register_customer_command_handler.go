package commands

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"waterflow/internal/core/domain/model/account"
	"waterflow/internal/core/domain/model/customer"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/errs"
)

// RegisterCustomerCommandHandler handles self-service customer signup.
// Creates the login account and the customer record in one transaction;
// a duplicate email rolls both back.
type RegisterCustomerCommandHandler struct {
	uowFactory RegistrationUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer signup.
func NewRegisterCustomerCommandHandler(uowFactory RegistrationUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the signup command and returns the created customer.
// The password is hashed with bcrypt before it touches the repository.
func (h *RegisterCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterCustomerCommand,
) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err = userRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return nil, errs.NewConflictErrorWithCause("email",
			errors.New("email is already registered"))
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	firstName, lastName := splitName(cmd.Name())

	user, err := account.NewUser(
		kernel.NewUUID(),
		cmd.Email(),
		firstName,
		lastName,
		account.RoleCustomer,
		string(hash),
	)
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, user); err != nil {
		return nil, err
	}

	userID := user.ID()
	registered, err := customer.NewCustomer(
		kernel.NewUUID(),
		&userID,
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		cmd.Address(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.CustomerRepository().Add(ctx, registered); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return registered, nil
}

func splitName(full string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(full), " ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}
