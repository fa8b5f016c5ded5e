package usecases

import (
	"context"

	"github.com/Rakhulsr/go-admin-catalog/app/domain/category"
	"github.com/Rakhulsr/go-admin-catalog/app/domain/exceptions"
	"github.com/Rakhulsr/go-admin-catalog/app/domain/validation"
	"github.com/sirupsen/logrus"
)

type UpdateCategoryCommand struct {
	ID          string
	Name        *string
	Description *string
	Active      bool
}

type UpdateCategoryOutput struct {
	ID string `json:"id"`
}

type UpdateCategoryUseCase struct {
	gateway category.Gateway
	log     *logrus.Logger
}

func NewUpdateCategoryUseCase(gateway category.Gateway, logger *logrus.Logger) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{gateway: gateway, log: logger}
}

// Execute loads, mutates and persists an existing category. An unknown id is a
// NotFoundError on the error channel; rule violations come back as a
// notification without the gateway being written to. Gateway faults propagate
// as plain errors, the same policy Create follows.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*UpdateCategoryOutput, *validation.Notification, error) {
	id := category.CategoryIDFrom(cmd.ID)

	aCategory, err := uc.gateway.FindByID(ctx, id)
	if err != nil {
		uc.log.Errorf("Gateway failed to load category %s: %v", cmd.ID, err)
		return nil, nil, err
	}
	if aCategory == nil {
		uc.log.Warnf("Category %s not found for update", cmd.ID)
		return nil, nil, exceptions.NewNotFoundError("Category", cmd.ID)
	}

	aCategory.Update(cmd.Name, cmd.Description, cmd.Active)

	notification := validation.NewNotification()
	aCategory.Validate(notification)
	if notification.HasErrors() {
		uc.log.Warnf("Update of category %s rejected with %d validation error(s)", cmd.ID, len(notification.Errors()))
		return nil, notification, nil
	}

	updated, err := uc.gateway.Update(ctx, aCategory)
	if err != nil {
		uc.log.Errorf("Gateway failed to update category %s: %v", cmd.ID, err)
		return nil, nil, err
	}

	uc.log.Infof("Category %s updated", updated.ID())
	return &UpdateCategoryOutput{ID: updated.ID().String()}, nil, nil
}
