package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente con sus agregados de ventas. Los totales no se mantienen a mano:
// se recalculan desde las ventas del cliente (ledger.RecalcularCliente).
type Cliente struct {
	ID     string
	Nombre string

	TotalVentas   decimal.Decimal
	TotalPagado   decimal.Decimal
	DeudaTotal    decimal.Decimal
	NumeroCompras int

	Estado    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
