package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrdenCompra es una compra a distribuidor: alimenta el stock vendible y
// genera una deuda que se paga desde un banco elegido (vía gasto).
type OrdenCompra struct {
	ID             string
	DistribuidorID string
	NumeroOrden    string
	Fecha          time.Time

	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	Total          decimal.Decimal

	MontoPagado decimal.Decimal
	Estado      EstadoPago

	StockInicial decimal.Decimal
	StockActual  decimal.Decimal

	BancoOrigenID BancoID
	Observaciones string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Deuda es lo que falta por pagar al distribuidor.
func (oc *OrdenCompra) Deuda() decimal.Decimal {
	deuda := oc.Total.Sub(oc.MontoPagado)
	if deuda.IsNegative() {
		return decimal.Zero
	}
	return deuda
}
