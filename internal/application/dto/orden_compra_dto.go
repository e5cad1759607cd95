package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
)

// CreateOrdenCompraRequest body para POST /api/ordenes-compra. Si PagoInicial
// es positivo se registra como gasto del banco indicado en la misma transacción.
type CreateOrdenCompraRequest struct {
	DistribuidorID string          `json:"distribuidor_id"`
	NumeroOrden    string          `json:"numero_orden,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	PagoInicial    decimal.Decimal `json:"pago_inicial"`
	BancoOrigenID  entity.BancoID  `json:"banco_origen_id,omitempty"`
	Observaciones  string          `json:"observaciones,omitempty"`
}

// PagoDistribuidorRequest body para POST /api/ordenes-compra/:id/pagos.
type PagoDistribuidorRequest struct {
	BancoOrigenID entity.BancoID  `json:"banco_origen_id"`
	Monto         decimal.Decimal `json:"monto"`
	Concepto      string          `json:"concepto,omitempty"`
}

// OrdenCompraResponse estado de una orden de compra.
type OrdenCompraResponse struct {
	ID             string            `json:"id"`
	DistribuidorID string            `json:"distribuidor_id"`
	NumeroOrden    string            `json:"numero_orden,omitempty"`
	Cantidad       decimal.Decimal   `json:"cantidad"`
	PrecioUnitario decimal.Decimal   `json:"precio_unitario"`
	Total          decimal.Decimal   `json:"total"`
	MontoPagado    decimal.Decimal   `json:"monto_pagado"`
	Deuda          decimal.Decimal   `json:"deuda"`
	Estado         entity.EstadoPago `json:"estado"`
	StockInicial   decimal.Decimal   `json:"stock_inicial"`
	StockActual    decimal.Decimal   `json:"stock_actual"`
	Fecha          time.Time         `json:"fecha"`
}

// OrdenCompraFromEntity convierte la entidad a respuesta.
func OrdenCompraFromEntity(oc *entity.OrdenCompra) OrdenCompraResponse {
	return OrdenCompraResponse{
		ID:             oc.ID,
		DistribuidorID: oc.DistribuidorID,
		NumeroOrden:    oc.NumeroOrden,
		Cantidad:       oc.Cantidad,
		PrecioUnitario: oc.PrecioUnitario,
		Total:          oc.Total,
		MontoPagado:    oc.MontoPagado,
		Deuda:          oc.Deuda(),
		Estado:         oc.Estado,
		StockInicial:   oc.StockInicial,
		StockActual:    oc.StockActual,
		Fecha:          oc.Fecha,
	}
}

// CreateDistribuidorRequest body para POST /api/distribuidores.
type CreateDistribuidorRequest struct {
	Nombre string `json:"nombre"`
}

// DistribuidorResponse agregados de un distribuidor.
type DistribuidorResponse struct {
	ID                 string          `json:"id"`
	Nombre             string          `json:"nombre"`
	TotalOrdenesCompra decimal.Decimal `json:"total_ordenes_compra"`
	TotalPagado        decimal.Decimal `json:"total_pagado"`
	DeudaTotal         decimal.Decimal `json:"deuda_total"`
	NumeroOrdenes      int             `json:"numero_ordenes"`
}

// DistribuidorFromEntity convierte la entidad a respuesta.
func DistribuidorFromEntity(d *entity.Distribuidor) DistribuidorResponse {
	return DistribuidorResponse{
		ID:                 d.ID,
		Nombre:             d.Nombre,
		TotalOrdenesCompra: d.TotalOrdenesCompra,
		TotalPagado:        d.TotalPagado,
		DeudaTotal:         d.DeudaTotal,
		NumeroOrdenes:      d.NumeroOrdenes,
	}
}
