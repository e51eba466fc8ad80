package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pizzacloud/restocker/internal/application/restock"
	"github.com/pizzacloud/restocker/internal/application/routing"
	"github.com/pizzacloud/restocker/internal/application/workflow"
	"github.com/pizzacloud/restocker/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Registry  *workflow.Registry
	Validator *workflow.Validator
	RestockUC *restock.UseCase
	Pipeline  *routing.Router
	Log       *logger.Logger
}

// Router registra las rutas del servicio. Paths, métodos y códigos de estado
// se conservan exactos: el resto del pipeline depende de ellos.
func Router(app *fiber.App, deps RouterDeps) {
	orderHandler := NewOrderHandler(deps.Registry, deps.RestockUC, deps.Pipeline, deps.Log)
	workflowHandler := NewWorkflowHandler(deps.Registry, deps.Validator, deps.Log)

	app.Post("/order", orderHandler.Submit)

	app.Put("/workflow-requests/:storeId", workflowHandler.Register)
	app.Put("/workflow-update/:storeId", workflowHandler.Update)
	app.Delete("/workflow-requests/:storeId", workflowHandler.Teardown)
	app.Get("/workflow-requests/:storeId", workflowHandler.Retrieve)
	app.Get("/workflow-requests", workflowHandler.List)

	app.Get("/health", func(c *fiber.Ctx) error {
		deps.Log.Info().Msg("GET /health")
		return c.Status(fiber.StatusOK).SendString("healthy\n")
	})
}
