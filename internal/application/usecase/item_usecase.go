package usecase

import (
	"time"

	"github.com/minegocio/minegocio-api/internal/application/analytics"
	"github.com/minegocio/minegocio-api/internal/application/dto"
	"github.com/minegocio/minegocio-api/internal/domain/entity"
	"github.com/minegocio/minegocio-api/internal/domain/repository"
)

// ItemUseCase creación de ítems de inventario.
type ItemUseCase struct {
	repo   repository.ItemRepository
	ids    repository.IDGenerator
	recalc *analytics.Recalculator
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, ids repository.IDGenerator, recalc *analytics.Recalculator) *ItemUseCase {
	return &ItemUseCase{repo: repo, ids: ids, recalc: recalc}
}

// Create crea el ítem con los numéricos ya coercionados por el DTO y recalcula
// las métricas sobre la colección COMPLETA antes de devolver el registro.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*entity.Item, error) {
	item := &entity.Item{
		ID:           uc.ids.NewID(repository.PrefixItem),
		SKU:          in.SKU,
		Name:         in.Name,
		Description:  in.Description,
		CostPrice:    in.CostPrice,
		SellPrice:    in.SellPrice,
		StockLevel:   in.StockLevel.Int(),
		ReorderLevel: in.ReorderLevel.Int(),
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	if _, err := uc.recalc.Recalculate(); err != nil {
		return nil, err
	}
	return item, nil
}
