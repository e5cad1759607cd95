package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos-sistema/chronos-capital/internal/domain"
	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
	"github.com/chronos-sistema/chronos-capital/internal/domain/ledger"
)

// bancoPrueba crea un banco con el capital indicado expresado como
// históricos (capital = ingresos − gastos, sin pendiente de cobro).
func bancoPrueba(id entity.BancoID, ingresos, gastos int64) entity.Banco {
	return entity.Banco{
		ID:                id,
		HistoricoIngresos: d(ingresos),
		HistoricoGastos:   d(gastos),
	}
}

func TestCapitalActual_Formula(t *testing.T) {
	banco := bancoPrueba(entity.BancoProfit, 500000, 200000)
	assert.True(t, d(300000).Equal(banco.CapitalActual()))
}

func TestCapitalActual_PuedeSerNegativo(t *testing.T) {
	banco := bancoPrueba(entity.BancoAzteca, 100000, 150000)
	assert.True(t, d(-50000).Equal(banco.CapitalActual()), "los gastos pueden dejar sobregiro")
}

func TestCapitalActual_DescuentaPendienteCobro(t *testing.T) {
	banco := bancoPrueba(entity.BancoBovedaMonte, 63000, 0)
	banco.PendienteCobro = d(31500)
	assert.True(t, d(31500).Equal(banco.CapitalActual()),
		"el histórico posteado pero no cobrado no es capital disponible")
}

// ──────────────────────────────────────────────────────────────────────────────
// Transferencias
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularTransferencia_Exitosa(t *testing.T) {
	origen := bancoPrueba(entity.BancoBovedaMonte, 300000, 100000) // capital 200,000
	destino := bancoPrueba(entity.BancoProfit, 100000, 0)          // capital 100,000

	r, err := ledger.CalcularTransferencia(origen, destino, d(50000))
	require.NoError(t, err)

	assert.True(t, d(150000).Equal(r.Origen.CapitalActual()))
	assert.True(t, d(150000).Equal(r.Destino.CapitalActual()))
	assert.True(t, d(50000).Equal(r.Origen.HistoricoTransferencias))
	assert.True(t, d(150000).Equal(r.Destino.HistoricoIngresos))
}

// La suma de capitales de los dos bancos es invariante bajo la transferencia.
func TestCalcularTransferencia_ConservaCapitalTotal(t *testing.T) {
	origen := bancoPrueba(entity.BancoUtilidades, 150000, 50000)
	destino := bancoPrueba(entity.BancoAzteca, 50000, 0)
	antes := origen.CapitalActual().Add(destino.CapitalActual())

	r, err := ledger.CalcularTransferencia(origen, destino, d(32000))
	require.NoError(t, err)

	despues := r.Origen.CapitalActual().Add(r.Destino.CapitalActual())
	assert.True(t, antes.Equal(despues))
	assert.True(t, d(68000).Equal(r.Origen.CapitalActual()))
	assert.True(t, d(82000).Equal(r.Destino.CapitalActual()))
}

// Escenario concreto de sobregiro: capital 8,000, transferir 10,000 falla;
// transferir 5,000 deja 3,000 en el origen y suma 5,000 al destino.
func TestCalcularTransferencia_ProteccionSobregiro(t *testing.T) {
	origen := bancoPrueba(entity.BancoFleteSur, 8000, 0)
	destino := bancoPrueba(entity.BancoLeftie, 20000, 0)

	_, err := ledger.CalcularTransferencia(origen, destino, d(10000))
	assert.ErrorIs(t, err, domain.ErrCapitalInsuficiente)

	r, err := ledger.CalcularTransferencia(origen, destino, d(5000))
	require.NoError(t, err)
	assert.True(t, d(3000).Equal(r.Origen.CapitalActual()))
	assert.True(t, d(25000).Equal(r.Destino.CapitalActual()))
}

func TestCalcularTransferencia_MismoBanco(t *testing.T) {
	banco := bancoPrueba(entity.BancoBovedaMonte, 100000, 0)
	_, err := ledger.CalcularTransferencia(banco, banco, d(10000))
	assert.ErrorIs(t, err, domain.ErrMismoBanco)
}

func TestCalcularTransferencia_MontoInvalido(t *testing.T) {
	origen := bancoPrueba(entity.BancoBovedaMonte, 100000, 0)
	destino := bancoPrueba(entity.BancoProfit, 50000, 0)

	_, err := ledger.CalcularTransferencia(origen, destino, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrMontoInvalido)

	_, err = ledger.CalcularTransferencia(origen, destino, d(-100))
	assert.ErrorIs(t, err, domain.ErrMontoInvalido)
}

// El orden de validación importa: mismo banco gana sobre monto inválido, y
// monto inválido gana sobre capital insuficiente.
func TestCalcularTransferencia_OrdenDeValidacion(t *testing.T) {
	banco := bancoPrueba(entity.BancoBovedaMonte, 0, 0)
	_, err := ledger.CalcularTransferencia(banco, banco, d(-5))
	assert.ErrorIs(t, err, domain.ErrMismoBanco)

	destino := bancoPrueba(entity.BancoProfit, 0, 0)
	_, err = ledger.CalcularTransferencia(banco, destino, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrMontoInvalido)
}

// El fallo no muta las copias del caller (las funciones operan por valor).
func TestCalcularTransferencia_FalloSinEfectos(t *testing.T) {
	origen := bancoPrueba(entity.BancoFleteSur, 8000, 0)
	destino := bancoPrueba(entity.BancoLeftie, 20000, 0)

	_, err := ledger.CalcularTransferencia(origen, destino, d(10000))
	require.Error(t, err)

	assert.True(t, d(8000).Equal(origen.CapitalActual()))
	assert.True(t, d(20000).Equal(destino.CapitalActual()))
	assert.True(t, origen.HistoricoTransferencias.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Gastos e ingresos manuales
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarGasto_PermiteSobregiro(t *testing.T) {
	banco := bancoPrueba(entity.BancoAzteca, 200000, 50000)

	nuevo, err := ledger.RegistrarGasto(banco, d(63000))
	require.NoError(t, err)

	assert.True(t, d(87000).Equal(nuevo.CapitalActual()))
	assert.True(t, d(113000).Equal(nuevo.HistoricoGastos))

	// Un gasto mayor al capital es válido: deja sobregiro.
	sobregirado, err := ledger.RegistrarGasto(nuevo, d(100000))
	require.NoError(t, err)
	assert.True(t, sobregirado.CapitalActual().IsNegative())
}

func TestRegistrarGasto_MontoInvalido(t *testing.T) {
	banco := bancoPrueba(entity.BancoAzteca, 100000, 0)
	_, err := ledger.RegistrarGasto(banco, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrMontoInvalido)
}

func TestRegistrarIngresoManual_SoloBancosOperativos(t *testing.T) {
	manual := bancoPrueba(entity.BancoLeftie, 10000, 0)
	nuevo, err := ledger.RegistrarIngresoManual(manual, d(5000))
	require.NoError(t, err)
	assert.True(t, d(15000).Equal(nuevo.HistoricoIngresos))

	gya := bancoPrueba(entity.BancoBovedaMonte, 10000, 0)
	_, err = ledger.RegistrarIngresoManual(gya, d(5000))
	assert.ErrorIs(t, err, domain.ErrBancoNoManual,
		"los bancos GYA solo reciben ingresos por distribución o transferencia")
}

// ──────────────────────────────────────────────────────────────────────────────
// Conjunto cerrado de bancos
// ──────────────────────────────────────────────────────────────────────────────

func TestBancos_SieteExactos(t *testing.T) {
	todos := entity.TodosLosBancos()
	require.Len(t, todos, 7)

	vistos := map[entity.BancoID]bool{}
	for _, id := range todos {
		assert.True(t, id.EsValido())
		vistos[id] = true
	}
	assert.Len(t, vistos, 7, "sin duplicados")
}

func TestBancos_TresDeDistribucion(t *testing.T) {
	gya := entity.BancosDistribucion()
	assert.Equal(t, entity.BancoBovedaMonte, gya[0])
	assert.Equal(t, entity.BancoFleteSur, gya[1])
	assert.Equal(t, entity.BancoUtilidades, gya[2])

	manuales := 0
	for _, id := range entity.TodosLosBancos() {
		if id.PermiteIngresoManual() {
			manuales++
		}
	}
	assert.Equal(t, 4, manuales, "cuatro bancos aceptan ingresos manuales")
}

func TestBancos_IDDesconocido(t *testing.T) {
	assert.False(t, entity.BancoID("banco_pirata").EsValido())
	assert.False(t, entity.BancoID("").EsValido())
	assert.False(t, entity.BancoID("banco_pirata").PermiteIngresoManual())
}
