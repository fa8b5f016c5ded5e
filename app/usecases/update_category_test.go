package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rakhulsr/go-admin-catalog/app/domain/exceptions"
)

func TestUpdateCategory(t *testing.T) {
	gateway := newMemoryGateway()
	seeded := seedCategory(t, gateway, "Film", nil, true)
	uc := NewUpdateCategoryUseCase(gateway, testLogger())

	time.Sleep(time.Millisecond)
	output, notification, err := uc.Execute(context.Background(), UpdateCategoryCommand{
		ID:          seeded.ID().String(),
		Name:        str("Filmes"),
		Description: str("A categoria mais assistida"),
		Active:      true,
	})

	if err != nil || notification != nil {
		t.Fatalf("unexpected failure: err=%v notification=%v", err, notification)
	}
	if output.ID != seeded.ID().String() {
		t.Fatalf("expected output id %s, got %s", seeded.ID(), output.ID)
	}

	stored := gateway.store[seeded.ID()]
	if stored.Name() != "Filmes" {
		t.Fatalf("expected updated name, got %q", stored.Name())
	}
	if !stored.CreatedAt().Equal(seeded.CreatedAt()) {
		t.Fatalf("createdAt must not change on update")
	}
	if !stored.UpdatedAt().After(seeded.UpdatedAt()) {
		t.Fatalf("updatedAt must strictly increase on update")
	}
}

func TestUpdateCategoryDeactivates(t *testing.T) {
	gateway := newMemoryGateway()
	seeded := seedCategory(t, gateway, "Filmes", nil, true)
	uc := NewUpdateCategoryUseCase(gateway, testLogger())

	_, notification, err := uc.Execute(context.Background(), UpdateCategoryCommand{
		ID:     seeded.ID().String(),
		Name:   str("Filmes"),
		Active: false,
	})

	if err != nil || notification != nil {
		t.Fatalf("unexpected failure: err=%v notification=%v", err, notification)
	}

	stored := gateway.store[seeded.ID()]
	if stored.IsActive() {
		t.Fatalf("expected inactive category after update")
	}
	if stored.DeletedAt() == nil {
		t.Fatalf("expected deletedAt after deactivating update")
	}
}

func TestUpdateCategoryNotFound(t *testing.T) {
	gateway := newMemoryGateway()
	uc := NewUpdateCategoryUseCase(gateway, testLogger())

	output, notification, err := uc.Execute(context.Background(), UpdateCategoryCommand{
		ID:     "123",
		Name:   str("Filmes"),
		Active: true,
	})

	if output != nil || notification != nil {
		t.Fatalf("expected only an error, got output=%v notification=%v", output, notification)
	}
	if !exceptions.IsNotFound(err) {
		t.Fatalf("expected a not-found error, got %v", err)
	}
	if err.Error() != "Category with ID 123 was not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestUpdateCategoryWithInvalidNameNeverCallsGateway(t *testing.T) {
	gateway := newMemoryGateway()
	seeded := seedCategory(t, gateway, "Filmes", nil, true)
	uc := NewUpdateCategoryUseCase(gateway, testLogger())

	output, notification, err := uc.Execute(context.Background(), UpdateCategoryCommand{
		ID:     seeded.ID().String(),
		Name:   nil,
		Active: true,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != nil {
		t.Fatalf("expected no output")
	}
	errs := notification.Errors()
	if len(errs) != 1 || errs[0].Message != "'name' should not be null" {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if gateway.updateCalls != 0 {
		t.Fatalf("gateway update must not be called on validation failure")
	}

	if stored := gateway.store[seeded.ID()]; stored.Name() != "Filmes" {
		t.Fatalf("stored category must stay untouched, got name %q", stored.Name())
	}
}

func TestUpdateCategoryPropagatesGatewayError(t *testing.T) {
	gateway := newMemoryGateway()
	seeded := seedCategory(t, gateway, "Filmes", nil, true)
	gateway.updateErr = errors.New("gateway error")
	uc := NewUpdateCategoryUseCase(gateway, testLogger())

	output, notification, err := uc.Execute(context.Background(), UpdateCategoryCommand{
		ID:     seeded.ID().String(),
		Name:   str("Séries"),
		Active: true,
	})

	if output != nil || notification != nil {
		t.Fatalf("expected only an error, got output=%v notification=%v", output, notification)
	}
	if err == nil || err.Error() != "gateway error" {
		t.Fatalf("expected the gateway error to propagate, got %v", err)
	}
}
