package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
)

// BancoResponse estado de un banco. Los montos viajan como strings decimales
// (serialización de shopspring/decimal): nunca números binarios JSON.
type BancoResponse struct {
	ID                      entity.BancoID  `json:"id"`
	Nombre                  string          `json:"nombre"`
	Tipo                    string          `json:"tipo"`
	CapitalActual           decimal.Decimal `json:"capital_actual"`
	HistoricoIngresos       decimal.Decimal `json:"historico_ingresos"`
	HistoricoGastos         decimal.Decimal `json:"historico_gastos"`
	HistoricoTransferencias decimal.Decimal `json:"historico_transferencias"`
	PendienteCobro          decimal.Decimal `json:"pendiente_cobro"`
	Activo                  bool            `json:"activo"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// BancoFromEntity arma la respuesta derivando el capital actual.
func BancoFromEntity(b *entity.Banco) BancoResponse {
	return BancoResponse{
		ID:                      b.ID,
		Nombre:                  b.Nombre,
		Tipo:                    b.Tipo,
		CapitalActual:           b.CapitalActual(),
		HistoricoIngresos:       b.HistoricoIngresos,
		HistoricoGastos:         b.HistoricoGastos,
		HistoricoTransferencias: b.HistoricoTransferencias,
		PendienteCobro:          b.PendienteCobro,
		Activo:                  b.Activo,
		UpdatedAt:               b.UpdatedAt,
	}
}

// RegistrarGastoRequest body para POST /api/bancos/:id/gastos.
type RegistrarGastoRequest struct {
	Monto    decimal.Decimal `json:"monto"`
	Concepto string          `json:"concepto"`
}

// RegistrarIngresoRequest body para POST /api/bancos/:id/ingresos.
type RegistrarIngresoRequest struct {
	Monto    decimal.Decimal `json:"monto"`
	Concepto string          `json:"concepto"`
}

// MovimientoResponse un registro de la bitácora de un banco.
type MovimientoResponse struct {
	ID             string          `json:"id"`
	BancoID        entity.BancoID  `json:"banco_id"`
	Tipo           string          `json:"tipo"`
	Monto          decimal.Decimal `json:"monto"`
	Concepto       string          `json:"concepto"`
	Referencia     string          `json:"referencia,omitempty"`
	BancoOrigenID  entity.BancoID  `json:"banco_origen_id,omitempty"`
	BancoDestinoID entity.BancoID  `json:"banco_destino_id,omitempty"`
	VentaID        string          `json:"venta_id,omitempty"`
	OrdenCompraID  string          `json:"orden_compra_id,omitempty"`
	Fecha          time.Time       `json:"fecha"`
}

// MovimientoFromEntity convierte la entidad a respuesta.
func MovimientoFromEntity(m *entity.Movimiento) MovimientoResponse {
	return MovimientoResponse{
		ID:             m.ID,
		BancoID:        m.BancoID,
		Tipo:           m.Tipo,
		Monto:          m.Monto,
		Concepto:       m.Concepto,
		Referencia:     m.Referencia,
		BancoOrigenID:  m.BancoOrigenID,
		BancoDestinoID: m.BancoDestinoID,
		VentaID:        m.VentaID,
		OrdenCompraID:  m.OrdenCompraID,
		Fecha:          m.Fecha,
	}
}
