package http

import (
	"encoding/json"
	"slices"

	"github.com/gofiber/fiber/v2"
	"github.com/pizzacloud/restocker/internal/application/workflow"
	"github.com/pizzacloud/restocker/internal/domain/entity"
	"github.com/pizzacloud/restocker/pkg/logger"
)

// WorkflowHandler gestiona el registro de workflows por tienda.
// Los cuerpos de respuesta se conservan byte a byte por compatibilidad con el
// resto del pipeline.
type WorkflowHandler struct {
	registry  *workflow.Registry
	validator *workflow.Validator
	log       *logger.Logger
}

// NewWorkflowHandler construye el handler de workflows.
func NewWorkflowHandler(registry *workflow.Registry, validator *workflow.Validator, log *logger.Logger) *WorkflowHandler {
	return &WorkflowHandler{registry: registry, validator: validator, log: log}
}

// Register procesa PUT /workflow-requests/{storeId}: valida contra el schema y
// da de alta el workflow si no existe.
func (h *WorkflowHandler) Register(c *fiber.Ctx) error {
	storeID := c.Params("storeId")
	h.log.Info().Str("store_id", storeID).Msg("PUT /workflow-requests")

	body := decodeDocument(c.Body())
	if err := h.validator.Validate(body); err != nil {
		h.log.Info().Err(err).Msg("workflow-request ill formatted")
		return c.Status(fiber.StatusBadRequest).SendString("workflow-request ill formatted\n" + err.Error())
	}

	var w entity.Workflow
	if err := json.Unmarshal(body, &w); err != nil {
		h.log.Info().Err(err).Msg("workflow-request ill formatted")
		return c.Status(fiber.StatusBadRequest).SendString("workflow-request ill formatted\n" + err.Error())
	}

	if err := h.registry.Register(storeID, w); err != nil {
		h.log.Info().Str("store_id", storeID).Msg("workflow already exists")
		return c.Status(fiber.StatusConflict).SendString("Workflow " + storeID + " already exists\n")
	}

	h.log.Info().Str("store_id", storeID).Msg("workflow started for store")
	return c.Status(fiber.StatusCreated).SendString("Restocker deployed for " + storeID + "\n")
}

// Update procesa PUT /workflow-update/{storeId}: reemplaza el workflow. La
// etapa de datos ("cass") es dependencia de esta etapa y debe seguir presente.
func (h *WorkflowHandler) Update(c *fiber.Ctx) error {
	storeID := c.Params("storeId")
	h.log.Info().Str("store_id", storeID).Msg("PUT /workflow-update")

	body := decodeDocument(c.Body())
	if err := h.validator.Validate(body); err != nil {
		h.log.Info().Err(err).Msg("workflow-request ill formatted")
		return c.Status(fiber.StatusBadRequest).SendString("workflow-request ill formatted\n" + err.Error())
	}

	var w entity.Workflow
	if err := json.Unmarshal(body, &w); err != nil {
		h.log.Info().Err(err).Msg("workflow-request ill formatted")
		return c.Status(fiber.StatusBadRequest).SendString("workflow-request ill formatted\n" + err.Error())
	}

	if !slices.Contains(w.ComponentList, "cass") {
		h.log.Info().Str("store_id", storeID).Msg("update rejected, cass is a required workflow component")
		return c.Status(fiber.StatusUnprocessableEntity).SendString("Update rejected, cass is a required workflow component.\n")
	}

	h.registry.Replace(storeID, w)

	h.log.Info().Str("store_id", storeID).Msg("restocker updated for store")
	return c.Status(fiber.StatusOK).SendString("Restocker updated for " + storeID + "\n")
}

// Teardown procesa DELETE /workflow-requests/{storeId}.
func (h *WorkflowHandler) Teardown(c *fiber.Ctx) error {
	storeID := c.Params("storeId")

	if err := h.registry.Delete(storeID); err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Workflow doesn't exist. Nothing to teardown.\n")
	}

	h.log.Info().Str("store_id", storeID).Msg("restocker stopped for store")
	return c.SendStatus(fiber.StatusNoContent)
}

// Retrieve procesa GET /workflow-requests/{storeId}.
func (h *WorkflowHandler) Retrieve(c *fiber.Ctx) error {
	storeID := c.Params("storeId")
	h.log.Info().Str("store_id", storeID).Msg("GET /workflow-requests")

	w, ok := h.registry.Get(storeID)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Workflow doesn't exist. Nothing to retrieve.\n")
	}
	return c.Status(fiber.StatusOK).JSON(w)
}

// List procesa GET /workflow-requests: todos los workflows registrados.
func (h *WorkflowHandler) List(c *fiber.Ctx) error {
	h.log.Info().Msg("GET /workflow-requests")
	return c.Status(fiber.StatusOK).JSON(h.registry.All())
}
