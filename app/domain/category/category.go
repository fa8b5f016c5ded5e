package category

import (
	"time"

	"github.com/Rakhulsr/go-admin-catalog/app/domain/validation"
	"github.com/google/uuid"
)

// CategoryID is the aggregate identity. Assigned once at creation, compared by
// value.
type CategoryID string

func NewCategoryID() CategoryID {
	return CategoryID(uuid.New().String())
}

func CategoryIDFrom(value string) CategoryID {
	return CategoryID(value)
}

func (id CategoryID) String() string {
	return string(id)
}

// Category is the aggregate root. It is the sole owner of its field values;
// name and description are pointers so an absent value stays distinguishable
// from an empty one, and deletedAt is set exactly while the category is
// inactive.
type Category struct {
	id          CategoryID
	name        *string
	description *string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

// NewCategory builds a category stamping createdAt == updatedAt. Construction
// never fails by itself: callers decide what to do with the violations by
// running Validate against a handler before persisting.
func NewCategory(name, description *string, active bool) *Category {
	now := time.Now()

	var deletedAt *time.Time
	if !active {
		deletedAt = &now
	}

	return &Category{
		id:          NewCategoryID(),
		name:        name,
		description: description,
		active:      active,
		createdAt:   now,
		updatedAt:   now,
		deletedAt:   deletedAt,
	}
}

// With rehydrates a category from stored state, bypassing the factory stamps.
func With(
	id CategoryID,
	name, description *string,
	active bool,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		deletedAt:   deletedAt,
	}
}

// Validate runs every invariant rule against the given handler. All rules run
// even after one fails.
func (c *Category) Validate(handler validation.Handler) {
	newCategoryValidator(c, handler).validate()
}

// Update replaces name, description and the active flag, keeping deletedAt in
// step with the flag and bumping updatedAt.
func (c *Category) Update(name, description *string, active bool) *Category {
	if active {
		c.Activate()
	} else {
		c.Deactivate()
	}
	c.name = name
	c.description = description
	c.updatedAt = time.Now()
	return c
}

func (c *Category) Activate() *Category {
	c.deletedAt = nil
	c.active = true
	c.updatedAt = time.Now()
	return c
}

func (c *Category) Deactivate() *Category {
	if c.deletedAt == nil {
		now := time.Now()
		c.deletedAt = &now
	}
	c.active = false
	c.updatedAt = time.Now()
	return c
}

// Clone hands out an independent copy so a holder's mutation cannot corrupt
// another holder's state.
func (c *Category) Clone() *Category {
	clone := *c
	if c.name != nil {
		name := *c.name
		clone.name = &name
	}
	if c.description != nil {
		description := *c.description
		clone.description = &description
	}
	if c.deletedAt != nil {
		deletedAt := *c.deletedAt
		clone.deletedAt = &deletedAt
	}
	return &clone
}

func (c *Category) ID() CategoryID {
	return c.id
}

// Name returns the category name, or the empty string while it is absent.
func (c *Category) Name() string {
	if c.name == nil {
		return ""
	}
	return *c.name
}

func (c *Category) Description() *string {
	return c.description
}

func (c *Category) IsActive() bool {
	return c.active
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Category) DeletedAt() *time.Time {
	return c.deletedAt
}
