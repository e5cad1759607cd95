package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una venta u orden de compra.
type EstadoPago string

const (
	EstadoPendiente EstadoPago = "pendiente"
	EstadoParcial   EstadoPago = "parcial"
	EstadoCompleto  EstadoPago = "completo"
)

// DistribucionGYA es el reparto de una venta entre los tres bancos destino.
// Se calcula una sola vez por venta y no se recalcula ni se muta: es el
// registro histórico permanente.
//
//	BovedaMonte = precioCompraUnidad × cantidad  (recuperación de costo)
//	Fletes      = precioFleteUnidad × cantidad   (margen de flete)
//	Utilidades  = (venta − compra − flete) × cantidad (ganancia neta, puede ser negativa)
//	Total       = precioVentaUnidad × cantidad
type DistribucionGYA struct {
	BovedaMonte decimal.Decimal
	Fletes      decimal.Decimal
	Utilidades  decimal.Decimal
	Total       decimal.Decimal
}

// Escalar multiplica cada componente por la proporción dada.
func (d DistribucionGYA) Escalar(proporcion decimal.Decimal) DistribucionGYA {
	return DistribucionGYA{
		BovedaMonte: d.BovedaMonte.Mul(proporcion),
		Fletes:      d.Fletes.Mul(proporcion),
		Utilidades:  d.Utilidades.Mul(proporcion),
		Total:       d.Total.Mul(proporcion),
	}
}

// Sub resta componente a componente.
func (d DistribucionGYA) Sub(o DistribucionGYA) DistribucionGYA {
	return DistribucionGYA{
		BovedaMonte: d.BovedaMonte.Sub(o.BovedaMonte),
		Fletes:      d.Fletes.Sub(o.Fletes),
		Utilidades:  d.Utilidades.Sub(o.Utilidades),
		Total:       d.Total.Sub(o.Total),
	}
}

// PorBanco devuelve el monto asignado al banco destino indicado.
// Solo tiene sentido para los tres bancos de distribución.
func (d DistribucionGYA) PorBanco(id BancoID) decimal.Decimal {
	switch id {
	case BancoBovedaMonte:
		return d.BovedaMonte
	case BancoFleteSur:
		return d.Fletes
	case BancoUtilidades:
		return d.Utilidades
	}
	return decimal.Zero
}

// Venta es la entrada de libro mayor de una venta.
//
// PrecioTotalVenta = (precioVentaUnidad + precioFleteUnidad) × cantidad es lo
// que el cliente debe (el flete se cobra aparte del total distribuible).
// Distribucion es inmutable; MontoPagado solo crece (abonos) y está acotado
// por PrecioTotalVenta. CapitalReconocido es la porción de Distribucion ya
// respaldada por pago cobrado: Distribucion × (MontoPagado/PrecioTotalVenta).
type Venta struct {
	ID            string
	ClienteID     string
	OrdenCompraID string
	Fecha         time.Time

	Cantidad           decimal.Decimal
	PrecioVentaUnidad  decimal.Decimal
	PrecioCompraUnidad decimal.Decimal
	PrecioFleteUnidad  decimal.Decimal

	PrecioTotalVenta decimal.Decimal
	MontoPagado      decimal.Decimal

	Distribucion      DistribucionGYA
	CapitalReconocido DistribucionGYA
	EstadoPago        EstadoPago

	Observaciones string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MontoRestante es lo que falta por cobrar al cliente.
func (v *Venta) MontoRestante() decimal.Decimal {
	resto := v.PrecioTotalVenta.Sub(v.MontoPagado)
	if resto.IsNegative() {
		return decimal.Zero
	}
	return resto
}
