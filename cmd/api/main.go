package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/pizzacloud/restocker/internal/application/restock"
	"github.com/pizzacloud/restocker/internal/application/routing"
	"github.com/pizzacloud/restocker/internal/application/sweep"
	"github.com/pizzacloud/restocker/internal/application/workflow"
	"github.com/pizzacloud/restocker/internal/infrastructure/forwarder"
	"github.com/pizzacloud/restocker/internal/infrastructure/postgres"
	httpRouter "github.com/pizzacloud/restocker/internal/interfaces/http"
	"github.com/pizzacloud/restocker/pkg/config"
	"github.com/pizzacloud/restocker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// No se acepta tráfico hasta que el almacén de datos sea alcanzable.
	pool, err := postgres.Connect(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén de datos")
	}
	defer pool.Close()

	stockRepo := postgres.NewStockRepository(pool)
	registry := workflow.NewRegistry()
	validator, err := workflow.NewValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("schema de workflow-request")
	}

	restockUC := restock.NewUseCase(stockRepo, log)
	pipeline := routing.NewRouter(registry, forwarder.New(), log)

	sweeper := sweep.New(stockRepo, registry, log)
	go sweeper.Run(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout: time.Second * 10,
		// El reenvío al siguiente componente ocurre dentro del request; el
		// deadline de escritura debe cubrir la espera de la etapa siguiente.
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Registry:  registry,
		Validator: validator,
		RestockUC: restockUC,
		Pipeline:  pipeline,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
