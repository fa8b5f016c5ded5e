package usecases

import (
	"context"

	"github.com/Rakhulsr/go-admin-catalog/app/domain/category"
	"github.com/Rakhulsr/go-admin-catalog/app/domain/validation"
	"github.com/sirupsen/logrus"
)

type CreateCategoryCommand struct {
	Name        *string
	Description *string
	Active      bool
}

type CreateCategoryOutput struct {
	ID string `json:"id"`
}

type CreateCategoryUseCase struct {
	gateway category.Gateway
	log     *logrus.Logger
}

func NewCreateCategoryUseCase(gateway category.Gateway, logger *logrus.Logger) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{gateway: gateway, log: logger}
}

// Execute builds and validates a new category. A non-nil notification means
// the input violated business rules and the gateway was never called; a
// non-nil error is an infrastructure fault.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CreateCategoryOutput, *validation.Notification, error) {
	aCategory := category.NewCategory(cmd.Name, cmd.Description, cmd.Active)

	notification := validation.NewNotification()
	aCategory.Validate(notification)
	if notification.HasErrors() {
		uc.log.Warnf("Create category rejected with %d validation error(s)", len(notification.Errors()))
		return nil, notification, nil
	}

	created, err := uc.gateway.Create(ctx, aCategory)
	if err != nil {
		uc.log.Errorf("Gateway failed to create category: %v", err)
		return nil, nil, err
	}

	uc.log.Infof("Category created with ID %s", created.ID())
	return &CreateCategoryOutput{ID: created.ID().String()}, nil, nil
}
