package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento bancario.
const (
	MovimientoIngreso              = "ingreso"
	MovimientoGasto                = "gasto"
	MovimientoAbono                = "abono"
	MovimientoPago                 = "pago"
	MovimientoTransferenciaSalida  = "transferencia_salida"
	MovimientoTransferenciaEntrada = "transferencia_entrada"
)

// Movimiento es el registro de auditoría de cada mutación sobre un banco.
// Los movimientos no participan en la fórmula de capital; son la bitácora
// que permite reconstruir cómo llegó cada banco a su estado.
type Movimiento struct {
	ID      string
	BancoID BancoID
	Tipo    string
	Monto   decimal.Decimal
	Fecha   time.Time

	Concepto   string
	Referencia string

	// Contraparte en transferencias.
	BancoOrigenID  BancoID
	BancoDestinoID BancoID

	// Referencias opcionales a la operación que originó el movimiento.
	ClienteID      string
	DistribuidorID string
	VentaID        string
	OrdenCompraID  string

	CreatedAt time.Time
}
