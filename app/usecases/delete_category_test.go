package usecases

import (
	"context"
	"testing"
)

func TestDeleteCategory(t *testing.T) {
	gateway := newMemoryGateway()
	seeded := seedCategory(t, gateway, "Filmes", nil, true)
	uc := NewDeleteCategoryUseCase(gateway, testLogger())

	if err := uc.Execute(context.Background(), seeded.ID().String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := gateway.store[seeded.ID()]; ok {
		t.Fatalf("expected the category to be removed")
	}
}

func TestDeleteUnknownCategoryIsANoOp(t *testing.T) {
	gateway := newMemoryGateway()
	seeded := seedCategory(t, gateway, "Filmes", nil, true)
	uc := NewDeleteCategoryUseCase(gateway, testLogger())

	if err := uc.Execute(context.Background(), "123"); err != nil {
		t.Fatalf("deleting an unknown id must succeed, got %v", err)
	}
	if _, ok := gateway.store[seeded.ID()]; !ok {
		t.Fatalf("existing categories must stay untouched")
	}
}
