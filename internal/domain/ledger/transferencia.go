package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/chronos-sistema/chronos-capital/internal/domain"
	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
)

// ResultadoTransferencia contiene los dos bancos ya mutados. La aplicación de
// ambos debe persistirse atómicamente: ningún observador puede ver el origen
// debitado sin el destino acreditado.
type ResultadoTransferencia struct {
	Origen  entity.Banco
	Destino entity.Banco
}

// CalcularTransferencia valida y ejecuta una transferencia entre bancos sobre
// copias de los libros. Orden de validación (gana el primer fallo):
//
//  1. origen == destino            → ErrMismoBanco
//  2. monto ≤ 0                    → ErrMontoInvalido
//  3. capital del origen < monto   → ErrCapitalInsuficiente
//
// En éxito el origen suma el monto a HistoricoGastos y a
// HistoricoTransferencias (el capital baja por la vía del gasto; el contador
// de transferencias es informativo) y el destino lo suma a HistoricoIngresos.
// La suma de capitales de ambos bancos es invariante bajo la operación.
func CalcularTransferencia(origen, destino entity.Banco, monto decimal.Decimal) (ResultadoTransferencia, error) {
	if origen.ID == destino.ID {
		return ResultadoTransferencia{}, domain.ErrMismoBanco
	}
	if !monto.IsPositive() {
		return ResultadoTransferencia{}, domain.ErrMontoInvalido
	}
	if origen.CapitalActual().LessThan(monto) {
		return ResultadoTransferencia{}, domain.ErrCapitalInsuficiente
	}

	origen.HistoricoGastos = origen.HistoricoGastos.Add(monto)
	origen.HistoricoTransferencias = origen.HistoricoTransferencias.Add(monto)
	destino.HistoricoIngresos = destino.HistoricoIngresos.Add(monto)

	return ResultadoTransferencia{Origen: origen, Destino: destino}, nil
}

// RegistrarGasto aplica un gasto sobre una copia del banco. Los gastos no
// tienen protección de sobregiro: el capital puede quedar negativo.
func RegistrarGasto(banco entity.Banco, monto decimal.Decimal) (entity.Banco, error) {
	if !monto.IsPositive() {
		return entity.Banco{}, domain.ErrMontoInvalido
	}
	banco.HistoricoGastos = banco.HistoricoGastos.Add(monto)
	return banco, nil
}

// RegistrarIngresoManual aplica un ingreso manual. Solo los cuatro bancos
// operativos lo aceptan; los bancos GYA reciben ingresos únicamente por
// distribución de ventas o transferencias.
func RegistrarIngresoManual(banco entity.Banco, monto decimal.Decimal) (entity.Banco, error) {
	if !monto.IsPositive() {
		return entity.Banco{}, domain.ErrMontoInvalido
	}
	if !banco.ID.PermiteIngresoManual() {
		return entity.Banco{}, domain.ErrBancoNoManual
	}
	banco.HistoricoIngresos = banco.HistoricoIngresos.Add(monto)
	return banco, nil
}
