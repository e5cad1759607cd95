package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
	"github.com/chronos-sistema/chronos-capital/internal/domain/ledger"
)

func TestCalcularStock_RestaVendidos(t *testing.T) {
	oc := &entity.OrdenCompra{ID: "OC0001", StockInicial: d(100)}
	ventas := []*entity.Venta{
		{OrdenCompraID: "OC0001", Cantidad: d(30)},
		{OrdenCompraID: "OC0001", Cantidad: d(20)},
		{OrdenCompraID: "OC0002", Cantidad: d(99)}, // otra OC, no cuenta
	}

	assert.True(t, d(50).Equal(ledger.CalcularStock(oc, ventas)))
}

func TestCalcularStock_NuncaNegativo(t *testing.T) {
	oc := &entity.OrdenCompra{ID: "OC0001", StockInicial: d(10)}
	ventas := []*entity.Venta{{OrdenCompraID: "OC0001", Cantidad: d(50)}}

	assert.True(t, ledger.CalcularStock(oc, ventas).IsZero())
}

func TestRecalcularCliente_SumaSusVentas(t *testing.T) {
	cliente := entity.Cliente{ID: "CLI001"}
	ventas := []*entity.Venta{
		{ClienteID: "CLI001", PrecioTotalVenta: d(50000), MontoPagado: d(30000)},
		{ClienteID: "CLI001", PrecioTotalVenta: d(30000), MontoPagado: d(30000)},
		{ClienteID: "CLI002", PrecioTotalVenta: d(99999), MontoPagado: decimal.Zero},
	}

	actualizado := ledger.RecalcularCliente(cliente, ventas)

	assert.True(t, d(80000).Equal(actualizado.TotalVentas))
	assert.True(t, d(60000).Equal(actualizado.TotalPagado))
	assert.True(t, d(20000).Equal(actualizado.DeudaTotal))
	assert.Equal(t, 2, actualizado.NumeroCompras)
}

func TestRecalcularDistribuidor_SumaSusOrdenes(t *testing.T) {
	dist := entity.Distribuidor{ID: "DIST001"}
	ordenes := []*entity.OrdenCompra{
		{DistribuidorID: "DIST001", Total: d(100000), MontoPagado: d(50000)},
		{DistribuidorID: "DIST001", Total: d(80000), MontoPagado: d(80000)},
		{DistribuidorID: "DIST002", Total: d(77777)},
	}

	actualizado := ledger.RecalcularDistribuidor(dist, ordenes)

	assert.True(t, d(180000).Equal(actualizado.TotalOrdenesCompra))
	assert.True(t, d(130000).Equal(actualizado.TotalPagado))
	assert.True(t, d(50000).Equal(actualizado.DeudaTotal))
	assert.Equal(t, 2, actualizado.NumeroOrdenes)
}
