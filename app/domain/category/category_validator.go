package category

import (
	"strings"
	"unicode/utf8"

	"github.com/Rakhulsr/go-admin-catalog/app/domain/validation"
)

const (
	nameMinLength        = 3
	nameMaxLength        = 255
	descriptionMaxLength = 4000
)

type categoryValidator struct {
	category *Category
	handler  validation.Handler
}

func newCategoryValidator(aCategory *Category, aHandler validation.Handler) *categoryValidator {
	return &categoryValidator{category: aCategory, handler: aHandler}
}

// validate is a fixed sequence of independent checks over the same handler;
// an earlier failure never skips a later rule.
func (v *categoryValidator) validate() {
	v.checkNameConstraints()
	v.checkDescriptionConstraints()
}

func (v *categoryValidator) checkNameConstraints() {
	name := v.category.name
	if name == nil {
		v.handler.Append(validation.NewError("'name' should not be null"))
		return
	}
	if strings.TrimSpace(*name) == "" {
		v.handler.Append(validation.NewError("'name' should not be empty"))
		return
	}

	length := utf8.RuneCountInString(strings.TrimSpace(*name))
	if length < nameMinLength || length > nameMaxLength {
		v.handler.Append(validation.NewError("'name' must be between 3 and 255 characters"))
	}
}

func (v *categoryValidator) checkDescriptionConstraints() {
	description := v.category.description
	if description == nil {
		return
	}
	if utf8.RuneCountInString(*description) > descriptionMaxLength {
		v.handler.Append(validation.NewError("'description' must not be greater than 4000 characters"))
	}
}
