package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
)

// CreateVentaRequest body para POST /api/ventas. MontoPagado es el pago al
// momento de crear la venta: 0 (pendiente), parcial o total.
type CreateVentaRequest struct {
	ClienteID          string          `json:"cliente_id"`
	OrdenCompraID      string          `json:"orden_compra_id,omitempty"`
	Cantidad           decimal.Decimal `json:"cantidad"`
	PrecioVentaUnidad  decimal.Decimal `json:"precio_venta_unidad"`
	PrecioCompraUnidad decimal.Decimal `json:"precio_compra_unidad"`
	PrecioFleteUnidad  decimal.Decimal `json:"precio_flete_unidad"`
	MontoPagado        decimal.Decimal `json:"monto_pagado"`
	Observaciones      string          `json:"observaciones,omitempty"`
}

// ComputeDistribucionRequest body para POST /api/ventas/distribucion
// (cálculo puro, sin asientos).
type ComputeDistribucionRequest struct {
	Cantidad           decimal.Decimal `json:"cantidad"`
	PrecioVentaUnidad  decimal.Decimal `json:"precio_venta_unidad"`
	PrecioCompraUnidad decimal.Decimal `json:"precio_compra_unidad"`
	PrecioFleteUnidad  decimal.Decimal `json:"precio_flete_unidad"`
}

// DistribucionDTO reparto GYA de una venta.
type DistribucionDTO struct {
	BovedaMonte decimal.Decimal `json:"boveda_monte"`
	Fletes      decimal.Decimal `json:"fletes"`
	Utilidades  decimal.Decimal `json:"utilidades"`
	Total       decimal.Decimal `json:"total"`
}

// DistribucionFromEntity convierte el value object a DTO.
func DistribucionFromEntity(d entity.DistribucionGYA) DistribucionDTO {
	return DistribucionDTO{
		BovedaMonte: d.BovedaMonte,
		Fletes:      d.Fletes,
		Utilidades:  d.Utilidades,
		Total:       d.Total,
	}
}

// AbonoRequest body para POST /api/ventas/:id/abonos.
type AbonoRequest struct {
	Monto    decimal.Decimal `json:"monto"`
	Concepto string          `json:"concepto,omitempty"`
}

// VentaResponse estado completo de una venta.
type VentaResponse struct {
	ID                string            `json:"id"`
	ClienteID         string            `json:"cliente_id"`
	OrdenCompraID     string            `json:"orden_compra_id,omitempty"`
	Cantidad          decimal.Decimal   `json:"cantidad"`
	PrecioVentaUnidad decimal.Decimal   `json:"precio_venta_unidad"`
	PrecioTotalVenta  decimal.Decimal   `json:"precio_total_venta"`
	MontoPagado       decimal.Decimal   `json:"monto_pagado"`
	MontoRestante     decimal.Decimal   `json:"monto_restante"`
	EstadoPago        entity.EstadoPago `json:"estado_pago"`
	Distribucion      DistribucionDTO   `json:"distribucion"`
	CapitalReconocido DistribucionDTO   `json:"capital_reconocido"`
	Fecha             time.Time         `json:"fecha"`
}

// VentaFromEntity convierte la entidad a respuesta.
func VentaFromEntity(v *entity.Venta) VentaResponse {
	return VentaResponse{
		ID:                v.ID,
		ClienteID:         v.ClienteID,
		OrdenCompraID:     v.OrdenCompraID,
		Cantidad:          v.Cantidad,
		PrecioVentaUnidad: v.PrecioVentaUnidad,
		PrecioTotalVenta:  v.PrecioTotalVenta,
		MontoPagado:       v.MontoPagado,
		MontoRestante:     v.MontoRestante(),
		EstadoPago:        v.EstadoPago,
		Distribucion:      DistribucionFromEntity(v.Distribucion),
		CapitalReconocido: DistribucionFromEntity(v.CapitalReconocido),
		Fecha:             v.Fecha,
	}
}

// CreateClienteRequest body para POST /api/clientes.
type CreateClienteRequest struct {
	Nombre string `json:"nombre"`
}

// ClienteResponse agregados de un cliente.
type ClienteResponse struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	TotalVentas   decimal.Decimal `json:"total_ventas"`
	TotalPagado   decimal.Decimal `json:"total_pagado"`
	DeudaTotal    decimal.Decimal `json:"deuda_total"`
	NumeroCompras int             `json:"numero_compras"`
}

// ClienteFromEntity convierte la entidad a respuesta.
func ClienteFromEntity(c *entity.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		TotalVentas:   c.TotalVentas,
		TotalPagado:   c.TotalPagado,
		DeudaTotal:    c.DeudaTotal,
		NumeroCompras: c.NumeroCompras,
	}
}
