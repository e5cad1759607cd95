package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chronos-sistema/chronos-capital/internal/application/compras"
	"github.com/chronos-sistema/chronos-capital/internal/application/tesoreria"
	"github.com/chronos-sistema/chronos-capital/internal/application/ventas"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BancoQueryUC    *tesoreria.BancoQueryUseCase
	GastoUC         *tesoreria.GastoUseCase
	TransferenciaUC *tesoreria.TransferenciaUseCase
	CreateVentaUC   *ventas.CreateVentaUseCase
	AbonoUC         *ventas.AbonoUseCase
	VentaQueryUC    *ventas.VentaQueryUseCase
	ClienteUC       *ventas.ClienteUseCase
	OrdenCompraUC   *compras.OrdenCompraUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Bancos (lecturas, gastos e ingresos manuales)
	bancos := api.Group("/bancos")
	bancoHandler := NewBancoHandler(deps.BancoQueryUC, deps.GastoUC)
	bancos.Get("/", bancoHandler.List)
	bancos.Get("/:id", bancoHandler.GetByID)
	bancos.Get("/:id/movimientos", bancoHandler.ListMovimientos)
	bancos.Post("/:id/gastos", bancoHandler.RegistrarGasto)
	bancos.Post("/:id/ingresos", bancoHandler.RegistrarIngreso)

	// Transferencias entre bancos
	transferencias := api.Group("/transferencias")
	transferenciaHandler := NewTransferenciaHandler(deps.TransferenciaUC)
	transferencias.Post("/", transferenciaHandler.Create)

	// Ventas, abonos y clientes
	ventaHandler := NewVentaHandler(deps.CreateVentaUC, deps.AbonoUC, deps.VentaQueryUC, deps.ClienteUC)
	ventasGroup := api.Group("/ventas")
	ventasGroup.Post("/distribucion", ventaHandler.ComputeDistribucion)
	ventasGroup.Post("/", ventaHandler.Create)
	ventasGroup.Get("/:id", ventaHandler.GetByID)
	ventasGroup.Post("/:id/abonos", ventaHandler.ApplyAbono)

	clientes := api.Group("/clientes")
	clientes.Post("/", ventaHandler.CreateCliente)
	clientes.Get("/:id", ventaHandler.GetCliente)

	// Órdenes de compra, pagos y distribuidores
	ocHandler := NewOrdenCompraHandler(deps.OrdenCompraUC)
	ordenes := api.Group("/ordenes-compra")
	ordenes.Post("/", ocHandler.Create)
	ordenes.Get("/:id", ocHandler.GetByID)
	ordenes.Post("/:id/pagos", ocHandler.PagarDistribuidor)

	distribuidores := api.Group("/distribuidores")
	distribuidores.Post("/", ocHandler.CreateDistribuidor)
	distribuidores.Get("/:id", ocHandler.GetDistribuidor)
}
