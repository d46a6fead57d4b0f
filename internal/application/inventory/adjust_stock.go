// Package inventory contiene los casos de uso de ajustes manuales y consulta
// de kardex.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jquispe/puntoventa-api/internal/application/dto"
	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

// AdjustStockUseCase registra ajustes manuales de inventario (mermas,
// conteos, regularizaciones) fuera del flujo de venta/compra.
type AdjustStockUseCase struct {
	txRunner InventoryTxRunner
	movRepo  repository.StockMovementRepository
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner InventoryTxRunner, movRepo repository.StockMovementRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, movRepo: movRepo}
}

// Adjust aplica un ajuste manual. Una SALIDA no puede dejar el stock en
// negativo. El motivo queda como referencia del asiento.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, userName string, in dto.AdjustStockRequest) (*dto.StockMovementResponse, error) {
	if in.ProductID == "" || in.Quantity < 1 || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	direction := entity.MovementDirection(in.Direction)
	if direction != entity.DirEntrada && direction != entity.DirSalida {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.StockMovement
	err := uc.txRunner.RunInventory(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		p, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		newStock := p.Stock + in.Quantity
		if direction == entity.DirSalida {
			if p.Stock < in.Quantity {
				return domain.ErrInsufficientStock
			}
			newStock = p.Stock - in.Quantity
		}
		if err := productRepo.UpdateStock(p.ID, newStock); err != nil {
			return err
		}
		created = &entity.StockMovement{
			ID:             uuid.New().String(),
			Date:           time.Now(),
			ProductID:      p.ID,
			ProductName:    p.Name,
			Direction:      direction,
			Quantity:       in.Quantity,
			ResultingStock: newStock,
			Reference:      in.Reason,
			UserName:       userName,
		}
		return movRepo.Create(created)
	})
	if err != nil {
		return nil, err
	}
	return movementToResponse(created), nil
}

// ListMovements lista el kardex completo por rango de fechas.
func (uc *AdjustStockUseCase) ListMovements(from, to *time.Time, page dto.PageRequest) ([]*dto.StockMovementResponse, error) {
	page.DefaultPage()
	movements, err := uc.movRepo.List(from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return movementsToResponse(movements), nil
}

// ListByProduct lista el kardex de un producto.
func (uc *AdjustStockUseCase) ListByProduct(productID string, from, to *time.Time, page dto.PageRequest) ([]*dto.StockMovementResponse, error) {
	page.DefaultPage()
	movements, err := uc.movRepo.ListByProduct(productID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return movementsToResponse(movements), nil
}

func movementToResponse(m *entity.StockMovement) *dto.StockMovementResponse {
	return &dto.StockMovementResponse{
		ID:             m.ID,
		Date:           m.Date.Format("2006-01-02 15:04:05"),
		ProductID:      m.ProductID,
		ProductName:    m.ProductName,
		Direction:      string(m.Direction),
		Quantity:       m.Quantity,
		ResultingStock: m.ResultingStock,
		Reference:      m.Reference,
		UserName:       m.UserName,
	}
}

func movementsToResponse(movements []*entity.StockMovement) []*dto.StockMovementResponse {
	out := make([]*dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, movementToResponse(m))
	}
	return out
}
