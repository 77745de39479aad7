package service

import (
	"context"
	"testing"

	"medequip-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_AddEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		equipRepo := new(MockEquipmentRepo)
		svc := NewInventoryService(equipRepo)

		kind := &domain.EquipmentKind{ID: "EQ005", Name: "Wheelchair", Category: "Mobility", Quantity: 50, Unit: "chairs"}
		equipRepo.On("Create", ctx, kind).Return(nil).Once()

		require.NoError(t, svc.AddEquipment(ctx, kind))
		equipRepo.AssertExpectations(t)
	})

	t.Run("ZeroQuantityAllowed", func(t *testing.T) {
		equipRepo := new(MockEquipmentRepo)
		svc := NewInventoryService(equipRepo)

		kind := &domain.EquipmentKind{ID: "EQ006", Name: "Crutches", Category: "Mobility", Quantity: 0, Unit: "pairs"}
		equipRepo.On("Create", ctx, kind).Return(nil).Once()

		assert.NoError(t, svc.AddEquipment(ctx, kind))
	})

	t.Run("NegativeQuantityRejected", func(t *testing.T) {
		equipRepo := new(MockEquipmentRepo)
		svc := NewInventoryService(equipRepo)

		err := svc.AddEquipment(ctx, &domain.EquipmentKind{ID: "EQ007", Name: "X", Category: "Y", Quantity: -1, Unit: "z"})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		equipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("DuplicateID", func(t *testing.T) {
		equipRepo := new(MockEquipmentRepo)
		svc := NewInventoryService(equipRepo)

		equipRepo.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateEquipment).Once()

		err := svc.AddEquipment(ctx, &domain.EquipmentKind{ID: "EQ005", Name: "Wheelchair", Category: "Mobility", Quantity: 50, Unit: "chairs"})
		assert.ErrorIs(t, err, domain.ErrDuplicateEquipment)
	})
}

func TestInventoryService_SetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		equipRepo := new(MockEquipmentRepo)
		svc := NewInventoryService(equipRepo)

		equipRepo.On("SetQuantity", ctx, "EQ005", int32(75)).Return(nil).Once()
		assert.NoError(t, svc.SetQuantity(ctx, "EQ005", 75))
		equipRepo.AssertExpectations(t)
	})

	t.Run("NegativeRejected", func(t *testing.T) {
		equipRepo := new(MockEquipmentRepo)
		svc := NewInventoryService(equipRepo)

		err := svc.SetQuantity(ctx, "EQ005", -5)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		equipRepo.AssertNotCalled(t, "SetQuantity", mock.Anything, mock.Anything, mock.Anything)
	})
}
