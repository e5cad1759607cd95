package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
)

// CalcularStock deriva el stock vigente de una orden de compra: el inicial
// menos las unidades vendidas contra ella, con piso en cero.
func CalcularStock(oc *entity.OrdenCompra, ventas []*entity.Venta) decimal.Decimal {
	vendido := decimal.Zero
	for _, v := range ventas {
		if v.OrdenCompraID == oc.ID {
			vendido = vendido.Add(v.Cantidad)
		}
	}
	stock := oc.StockInicial.Sub(vendido)
	if stock.IsNegative() {
		return decimal.Zero
	}
	return stock
}

// RecalcularCliente reconstruye los agregados del cliente desde sus ventas.
// Los totales nunca se mantienen incrementalmente a mano.
func RecalcularCliente(cliente entity.Cliente, ventas []*entity.Venta) entity.Cliente {
	totalVentas := decimal.Zero
	totalPagado := decimal.Zero
	compras := 0
	for _, v := range ventas {
		if v.ClienteID != cliente.ID {
			continue
		}
		totalVentas = totalVentas.Add(v.PrecioTotalVenta)
		totalPagado = totalPagado.Add(v.MontoPagado)
		compras++
	}
	cliente.TotalVentas = totalVentas
	cliente.TotalPagado = totalPagado
	cliente.DeudaTotal = totalVentas.Sub(totalPagado)
	cliente.NumeroCompras = compras
	return cliente
}

// RecalcularDistribuidor reconstruye los agregados del distribuidor desde sus
// órdenes de compra.
func RecalcularDistribuidor(dist entity.Distribuidor, ordenes []*entity.OrdenCompra) entity.Distribuidor {
	totalOrdenes := decimal.Zero
	totalPagado := decimal.Zero
	n := 0
	for _, oc := range ordenes {
		if oc.DistribuidorID != dist.ID {
			continue
		}
		totalOrdenes = totalOrdenes.Add(oc.Total)
		totalPagado = totalPagado.Add(oc.MontoPagado)
		n++
	}
	dist.TotalOrdenesCompra = totalOrdenes
	dist.TotalPagado = totalPagado
	dist.DeudaTotal = totalOrdenes.Sub(totalPagado)
	dist.NumeroOrdenes = n
	return dist
}
