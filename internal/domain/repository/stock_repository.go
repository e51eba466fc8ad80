package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pizzacloud/restocker/internal/domain/entity"
)

// StockRepository puerto hacia el almacén remoto de stock, clave (tienda, ingrediente).
// El almacén serializa escrituras de fila individuales, no secuencias multi-fila.
type StockRepository interface {
	// Quantity lee la cantidad de un ingrediente en una tienda.
	// exists es false si no hay fila para ese par (distinto de cantidad cero).
	Quantity(ctx context.Context, storeID uuid.UUID, itemName string) (quantity int, exists bool, err error)

	// ListByStore lee todas las filas de stock de una tienda.
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]entity.StockRow, error)

	// SetQuantity escribe la cantidad de un ingrediente en una tienda (upsert).
	SetQuantity(ctx context.Context, storeID uuid.UUID, itemName string, quantity int) error

	// ListItems lee el catálogo de ingredientes persistido (tabla items).
	ListItems(ctx context.Context) ([]string, error)
}
