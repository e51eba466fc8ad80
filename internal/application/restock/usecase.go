package restock

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pizzacloud/restocker/internal/domain/entity"
	"github.com/pizzacloud/restocker/internal/domain/repository"
	"github.com/pizzacloud/restocker/pkg/logger"
)

// RestockBuffer unidades extra que se escriben por encima del déficit inmediato,
// para que el siguiente pedido tenga menos probabilidad de disparar otro restock.
const RestockBuffer = 10

// UseCase reconcilia el stock de una tienda contra un pedido: calcula lo
// requerido, detecta faltantes, los repone y descuenta el consumo.
type UseCase struct {
	stockRepo repository.StockRepository
	log       *logger.Logger
}

// NewUseCase construye el caso de uso de restock.
func NewUseCase(stockRepo repository.StockRepository, log *logger.Logger) *UseCase {
	return &UseCase{stockRepo: stockRepo, log: log}
}

// Process ejecuta el ciclo completo para un pedido: agregar → reconciliar →
// reponer → descontar. Cualquier error deja el pedido rechazado; no hay
// rollback de escrituras ya aplicadas (modo de fallo parcial aceptado y
// acotado: algún restock aplicado, ningún descuento).
func (uc *UseCase) Process(ctx context.Context, storeID uuid.UUID, pizzas []entity.Pizza) error {
	required, err := Aggregate(pizzas)
	if err != nil {
		return err
	}

	snapshot, shortages, err := uc.reconcile(ctx, storeID, required)
	if err != nil {
		return err
	}

	if len(shortages) > 0 {
		if err := uc.applyRestock(ctx, storeID, snapshot, shortages); err != nil {
			return err
		}
	}

	return uc.decrement(ctx, storeID, snapshot, required)
}

// reconcile lee el stock completo de la tienda y lo compara con lo requerido.
// El snapshot parte del catálogo en cero y se sobreescribe con las filas
// realmente almacenadas; se itera sobre filas, no sobre el catálogo, así que
// un ingrediente nunca almacenado y nunca requerido queda ausente y se da por
// suficiente. Una cantidad requerida de cero jamás genera faltante.
func (uc *UseCase) reconcile(ctx context.Context, storeID uuid.UUID, required entity.Quantities) (entity.Quantities, []entity.Shortage, error) {
	snapshot := entity.NewQuantities()

	rows, err := uc.stockRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, nil, fmt.Errorf("read stock for store %s: %w", storeID, err)
	}

	var shortages []entity.Shortage
	for _, row := range rows {
		if need := required[row.ItemName]; need > 0 && row.Quantity < need {
			shortages = append(shortages, entity.Shortage{
				ItemName: row.ItemName,
				Quantity: need - row.Quantity,
			})
		}
		// El snapshot refleja lo almacenado; el ajuste post-restock lo hace applyRestock.
		snapshot[row.ItemName] = row.Quantity
	}

	return snapshot, shortages, nil
}

// applyRestock escribe las reposiciones y actualiza el snapshot en memoria.
// Todas las reposiciones de un pedido se completan antes del primer descuento;
// el primer error aborta las escrituras restantes.
func (uc *UseCase) applyRestock(ctx context.Context, storeID uuid.UUID, snapshot entity.Quantities, shortages []entity.Shortage) error {
	for _, s := range shortages {
		newQuantity := s.Quantity + snapshot[s.ItemName] + RestockBuffer
		if err := uc.stockRepo.SetQuantity(ctx, storeID, s.ItemName, newQuantity); err != nil {
			return fmt.Errorf("restock %s: %w", s.ItemName, err)
		}
		snapshot[s.ItemName] = newQuantity
		uc.log.Info().
			Str("store_id", storeID.String()).
			Str("item", s.ItemName).
			Int("quantity", newQuantity).
			Msg("item restocked")
	}
	return nil
}

// decrement descuenta del stock lo consumido por el pedido. Se calcula sobre el
// snapshot post-restock, por lo que el resultado nunca es negativo.
func (uc *UseCase) decrement(ctx context.Context, storeID uuid.UUID, snapshot, required entity.Quantities) error {
	for itemName, need := range required {
		if need <= 0 {
			continue
		}
		if err := uc.stockRepo.SetQuantity(ctx, storeID, itemName, snapshot[itemName]-need); err != nil {
			return fmt.Errorf("decrement %s: %w", itemName, err)
		}
	}
	return nil
}
