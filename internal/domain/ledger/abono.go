package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/chronos-sistema/chronos-capital/internal/domain"
	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
)

// ResultadoAbono describe el efecto de un abono sobre una venta existente.
// Incremento es el capital que se libera hacia cada banco destino; la
// distribución histórica de la venta no se toca jamás.
type ResultadoAbono struct {
	MontoAplicado decimal.Decimal
	Proporcion    decimal.Decimal

	Incremento   entity.DistribucionGYA
	NuevoCapital entity.DistribucionGYA

	NuevoMontoPagado decimal.Decimal
	NuevoEstado      entity.EstadoPago
}

// CalcularAbono aplica un pago posterior contra la distribución original.
//
// El capital reconocido se recalcula desde el acumulado
// (Distribucion × montoPagadoAcumulado/precioTotal) y el incremento es la
// diferencia con el capital anterior: así dos abonos de a y b liberan
// exactamente lo mismo que uno de a+b, sin deriva de redondeo.
//
// Un abono que excede el restante se recorta (el sobrepago se tolera, la
// proporción colapsa a 1). Retorna ErrMontoInvalido con monto no positivo o
// con una venta de precio total cero.
func CalcularAbono(venta *entity.Venta, montoAbono decimal.Decimal) (ResultadoAbono, error) {
	if !montoAbono.IsPositive() {
		return ResultadoAbono{}, domain.ErrMontoInvalido
	}
	if !venta.PrecioTotalVenta.IsPositive() {
		return ResultadoAbono{}, domain.ErrMontoInvalido
	}

	nuevoPagado := venta.MontoPagado.Add(montoAbono)
	if nuevoPagado.GreaterThan(venta.PrecioTotalVenta) {
		nuevoPagado = venta.PrecioTotalVenta
	}
	aplicado := nuevoPagado.Sub(venta.MontoPagado)

	estado, proporcionTotal := ResolverEstadoPago(nuevoPagado, venta.PrecioTotalVenta)
	nuevoCapital := CalcularCapitalReconocido(venta.Distribucion, proporcionTotal)

	return ResultadoAbono{
		MontoAplicado:    aplicado,
		Proporcion:       aplicado.Div(venta.PrecioTotalVenta),
		Incremento:       nuevoCapital.Sub(venta.CapitalReconocido),
		NuevoCapital:     nuevoCapital,
		NuevoMontoPagado: nuevoPagado,
		NuevoEstado:      estado,
	}, nil
}

// AplicarAbono muta la venta con el resultado calculado.
func AplicarAbono(venta *entity.Venta, r ResultadoAbono) {
	venta.MontoPagado = r.NuevoMontoPagado
	venta.CapitalReconocido = r.NuevoCapital
	venta.EstadoPago = r.NuevoEstado
}
