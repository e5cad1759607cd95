package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/chronos-sistema/chronos-capital/internal/application/compras"
	"github.com/chronos-sistema/chronos-capital/internal/application/tesoreria"
	"github.com/chronos-sistema/chronos-capital/internal/application/ventas"
	"github.com/chronos-sistema/chronos-capital/internal/infrastructure/postgres"
	httpRouter "github.com/chronos-sistema/chronos-capital/internal/interfaces/http"
	"github.com/chronos-sistema/chronos-capital/pkg/config"
	"github.com/chronos-sistema/chronos-capital/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:      cfg.App.Env,
		Level:    "info",
		Servicio: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repos atados al pool para lecturas; el TxRunner ata los suyos por transacción.
	bancoRepo := postgres.NewBancoRepository(pool)
	movRepo := postgres.NewMovimientoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	ocRepo := postgres.NewOrdenCompraRepository(pool)
	distRepo := postgres.NewDistribuidorRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	bancoQueryUC := tesoreria.NewBancoQueryUseCase(bancoRepo, movRepo)
	gastoUC := tesoreria.NewGastoUseCase(txRunner)
	transferenciaUC := tesoreria.NewTransferenciaUseCase(txRunner)
	createVentaUC := ventas.NewCreateVentaUseCase(txRunner, clienteRepo)
	abonoUC := ventas.NewAbonoUseCase(txRunner)
	ventaQueryUC := ventas.NewVentaQueryUseCase(ventaRepo, clienteRepo)
	clienteUC := ventas.NewClienteUseCase(clienteRepo)
	ordenCompraUC := compras.NewOrdenCompraUseCase(txRunner, distRepo, ocRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Chronos Capital API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BancoQueryUC:    bancoQueryUC,
		GastoUC:         gastoUC,
		TransferenciaUC: transferenciaUC,
		CreateVentaUC:   createVentaUC,
		AbonoUC:         abonoUC,
		VentaQueryUC:    ventaQueryUC,
		ClienteUC:       clienteUC,
		OrdenCompraUC:   ordenCompraUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
