package service

import (
	"context"

	"medequip-backend/internal/domain"
	"medequip-backend/internal/logger"
	"medequip-backend/internal/repository"
)

type inventoryService struct {
	equipRepo repository.EquipmentRepository
}

func NewInventoryService(equipRepo repository.EquipmentRepository) InventoryService {
	return &inventoryService{equipRepo: equipRepo}
}

func (s *inventoryService) AddEquipment(ctx context.Context, kind *domain.EquipmentKind) error {
	if kind.Quantity < 0 {
		return domain.ErrInvalidQuantity
	}
	if err := s.equipRepo.Create(ctx, kind); err != nil {
		return err
	}
	logger.Info("Equipment kind added", "id", kind.ID, "name", kind.Name, "quantity", kind.Quantity)
	return nil
}

// SetQuantity is an administrative correction, not part of the loan flows.
// It overwrites unconditionally.
func (s *inventoryService) SetQuantity(ctx context.Context, id string, quantity int32) error {
	if quantity < 0 {
		return domain.ErrInvalidQuantity
	}
	if err := s.equipRepo.SetQuantity(ctx, id, quantity); err != nil {
		return err
	}
	logger.Info("Equipment quantity overwritten", "id", id, "quantity", quantity)
	return nil
}

func (s *inventoryService) GetEquipment(ctx context.Context, id string) (*domain.EquipmentKind, error) {
	return s.equipRepo.GetByID(ctx, id)
}

func (s *inventoryService) ListEquipment(ctx context.Context) ([]domain.EquipmentKind, error) {
	return s.equipRepo.List(ctx)
}
