// Package ledger contiene la lógica sagrada de tesorería: distribución GYA
// de ventas a tres bancos, estados de pago proporcionales, abonos posteriores
// y transferencias entre bancos. Todas las funciones son puras y operan sobre
// decimales exactos; los efectos los aplican los casos de uso.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/chronos-sistema/chronos-capital/internal/domain"
	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
)

// CalcularDistribucion reparte una venta entre los tres bancos destino (GYA):
//
//	BovedaMonte = precioCompra × cantidad
//	Fletes      = precioFlete × cantidad
//	Utilidades  = (precioVenta − precioCompra − precioFlete) × cantidad
//	Total       = precioVenta × cantidad
//
// Utilidades puede salir negativa (venta a pérdida); se conserva tal cual.
// Retorna ErrEntradaInvalida con cantidad no positiva o precios negativos.
func CalcularDistribucion(precioVenta, precioCompra, precioFlete, cantidad decimal.Decimal) (entity.DistribucionGYA, error) {
	if !cantidad.IsPositive() {
		return entity.DistribucionGYA{}, domain.ErrEntradaInvalida
	}
	if precioVenta.IsNegative() || precioCompra.IsNegative() || precioFlete.IsNegative() {
		return entity.DistribucionGYA{}, domain.ErrEntradaInvalida
	}

	return entity.DistribucionGYA{
		BovedaMonte: precioCompra.Mul(cantidad),
		Fletes:      precioFlete.Mul(cantidad),
		Utilidades:  precioVenta.Sub(precioCompra).Sub(precioFlete).Mul(cantidad),
		Total:       precioVenta.Mul(cantidad),
	}, nil
}

// PrecioTotalVenta es lo que el cliente debe: el flete se cobra encima del
// precio de venta, aunque dentro de la distribución va como desglose.
func PrecioTotalVenta(precioVenta, precioFlete, cantidad decimal.Decimal) decimal.Decimal {
	return precioVenta.Add(precioFlete).Mul(cantidad)
}

// ResolverEstadoPago clasifica el pago y devuelve la proporción cobrada.
// Función total: nunca falla con entradas no negativas.
//
//   - proporción = montoPagado/precioTotalVenta, recortada a [0, 1];
//     0 cuando precioTotalVenta es 0.
//   - completo: montoPagado ≥ precioTotalVenta (el sobrepago colapsa a 1.0)
//   - parcial:  0 < montoPagado < precioTotalVenta
//   - pendiente: montoPagado ≤ 0
func ResolverEstadoPago(montoPagado, precioTotalVenta decimal.Decimal) (entity.EstadoPago, decimal.Decimal) {
	if !precioTotalVenta.IsPositive() {
		return estadoSegunMonto(montoPagado, precioTotalVenta), decimal.Zero
	}
	if montoPagado.GreaterThanOrEqual(precioTotalVenta) {
		return entity.EstadoCompleto, decimal.NewFromInt(1)
	}
	if montoPagado.IsPositive() {
		return entity.EstadoParcial, montoPagado.Div(precioTotalVenta)
	}
	return entity.EstadoPendiente, decimal.Zero
}

func estadoSegunMonto(montoPagado, precioTotalVenta decimal.Decimal) entity.EstadoPago {
	if montoPagado.GreaterThanOrEqual(precioTotalVenta) && montoPagado.IsPositive() {
		return entity.EstadoCompleto
	}
	if montoPagado.IsPositive() {
		return entity.EstadoParcial
	}
	return entity.EstadoPendiente
}

// CalcularCapitalReconocido escala la distribución por la proporción cobrada.
// El histórico conserva la distribución completa; esto es solo la parte
// "disponible" del capital.
func CalcularCapitalReconocido(d entity.DistribucionGYA, proporcion decimal.Decimal) entity.DistribucionGYA {
	return d.Escalar(proporcion)
}

// NuevaVenta construye la entrada de libro mayor de una venta aplicando el
// protocolo de asiento: la distribución se registra al 100% como histórico y
// el capital reconocido es la proporción cobrada al momento de crearla.
func NuevaVenta(precioVenta, precioCompra, precioFlete, cantidad, montoPagado decimal.Decimal) (*entity.Venta, error) {
	if montoPagado.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	dist, err := CalcularDistribucion(precioVenta, precioCompra, precioFlete, cantidad)
	if err != nil {
		return nil, err
	}

	precioTotal := PrecioTotalVenta(precioVenta, precioFlete, cantidad)
	if montoPagado.GreaterThan(precioTotal) {
		montoPagado = precioTotal
	}
	estado, proporcion := ResolverEstadoPago(montoPagado, precioTotal)

	return &entity.Venta{
		Cantidad:           cantidad,
		PrecioVentaUnidad:  precioVenta,
		PrecioCompraUnidad: precioCompra,
		PrecioFleteUnidad:  precioFlete,
		PrecioTotalVenta:   precioTotal,
		MontoPagado:        montoPagado,
		Distribucion:       dist,
		CapitalReconocido:  CalcularCapitalReconocido(dist, proporcion),
		EstadoPago:         estado,
	}, nil
}
