package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Distribuidor (proveedor) con sus agregados de órdenes de compra,
// recalculados desde las OC (ledger.RecalcularDistribuidor).
type Distribuidor struct {
	ID     string
	Nombre string

	TotalOrdenesCompra decimal.Decimal
	TotalPagado        decimal.Decimal
	DeudaTotal         decimal.Decimal
	NumeroOrdenes      int

	Estado    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
