package sweep

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pizzacloud/restocker/internal/application/workflow"
	"github.com/pizzacloud/restocker/internal/domain/repository"
	"github.com/pizzacloud/restocker/pkg/logger"
)

const (
	// DefaultInterval pausa entre barridos. El siguiente barrido se programa al
	// terminar el anterior: un barrido lento retrasa al próximo, nunca se solapan.
	DefaultInterval = 60 * time.Second

	// LowWaterMark cantidad por debajo de la cual un ingrediente se repone.
	LowWaterMark = 10

	// ReplenishLevel cantidad a la que se repone un ingrediente bajo el umbral.
	ReplenishLevel = 50
)

// Sweeper barrido periódico de stock: para cada tienda registrada y cada
// ingrediente del catálogo, repone los que estén bajo el umbral. Las filas
// inexistentes se omiten en silencio (asimetría deliberada frente al
// reconciliador del camino de pedidos, que las trata como cero).
type Sweeper struct {
	stockRepo repository.StockRepository
	registry  *workflow.Registry
	log       *logger.Logger
	interval  time.Duration
}

// New construye el sweeper con el intervalo por defecto.
func New(stockRepo repository.StockRepository, registry *workflow.Registry, log *logger.Logger) *Sweeper {
	return &Sweeper{
		stockRepo: stockRepo,
		registry:  registry,
		log:       log,
		interval:  DefaultInterval,
	}
}

// WithInterval ajusta el intervalo (para tests).
func (s *Sweeper) WithInterval(d time.Duration) *Sweeper {
	s.interval = d
	return s
}

// Run ejecuta el barrido en bucle hasta que se cancele el contexto. El primer
// barrido corre de inmediato; cada uno reprograma al siguiente al terminar.
func (s *Sweeper) Run(ctx context.Context) {
	for {
		s.Sweep(ctx)

		timer := time.NewTimer(s.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// Sweep ejecuta un barrido completo. Los errores de lectura/escritura se
// registran y no interrumpen el resto del barrido.
func (s *Sweeper) Sweep(ctx context.Context) {
	items, err := s.stockRepo.ListItems(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("sweep: list catalog items")
		return
	}

	for _, storeID := range s.registry.StoreIDs() {
		storeUUID, err := uuid.Parse(storeID)
		if err != nil {
			s.log.Error().Err(err).Str("store_id", storeID).Msg("sweep: bad store id")
			continue
		}

		for _, itemName := range items {
			quantity, exists, err := s.stockRepo.Quantity(ctx, storeUUID, itemName)
			if err != nil {
				s.log.Error().Err(err).Str("store_id", storeID).Str("item", itemName).
					Msg("sweep: read quantity")
				continue
			}
			if !exists || quantity >= LowWaterMark {
				continue
			}

			if err := s.stockRepo.SetQuantity(ctx, storeUUID, itemName, ReplenishLevel); err != nil {
				s.log.Error().Err(err).Str("store_id", storeID).Str("item", itemName).
					Msg("sweep: restock write")
				continue
			}
			s.log.Info().Str("store_id", storeID).Str("item", itemName).
				Int("quantity", ReplenishLevel).Msg("daily scan: item restocked")
		}
	}
}
