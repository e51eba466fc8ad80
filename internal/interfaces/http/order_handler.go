package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pizzacloud/restocker/internal/application/restock"
	"github.com/pizzacloud/restocker/internal/application/routing"
	"github.com/pizzacloud/restocker/internal/application/workflow"
	"github.com/pizzacloud/restocker/internal/domain/entity"
	"github.com/pizzacloud/restocker/pkg/logger"
)

// OrderHandler recibe pedidos, reconcilia el stock y los reenvía por el pipeline.
type OrderHandler struct {
	registry *workflow.Registry
	restock  *restock.UseCase
	router   *routing.Router
	log      *logger.Logger
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(registry *workflow.Registry, restockUC *restock.UseCase, router *routing.Router, log *logger.Logger) *OrderHandler {
	return &OrderHandler{registry: registry, restock: restockUC, router: router, log: log}
}

// Submit procesa POST /order: verifica el workflow de la tienda, reconcilia y
// descuenta stock, y reenvía el pedido a la siguiente etapa o los resultados
// al origen. El pedido se acepta entero o se rechaza entero.
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	h.log.Info().Msg("POST /order")

	raw := decodeDocument(c.Body())

	var order entity.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		h.log.Info().Err(err).Msg("order body is not valid JSON")
		return c.Status(fiber.StatusBadRequest).SendString("Request rejected, restock failed:\n" + err.Error())
	}

	storeID := order.PizzaOrder.StoreID
	if _, ok := h.registry.Get(storeID); !ok {
		h.log.Info().Str("store_id", storeID).Msg("Workflow does not exist. Request Rejected.")
		return c.Status(fiber.StatusUnprocessableEntity).SendString("Workflow does not exist. Request Rejected.")
	}

	storeUUID, err := uuid.Parse(storeID)
	if err == nil {
		err = h.restock.Process(c.Context(), storeUUID, order.PizzaOrder.PizzaList)
	}
	if err != nil {
		h.log.Info().Err(err).Str("store_id", storeID).Msg("request rejected, restock failed")
		return c.Status(fiber.StatusBadRequest).SendString("Request rejected, restock failed:\n" + err.Error())
	}

	resp, err := h.router.Route(c.Context(), storeID, order, raw)
	if err != nil {
		h.log.Error().Err(err).Str("store_id", storeID).Msg("outbound delivery failed")
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	return c.Status(resp.StatusCode).Send(resp.Body)
}
