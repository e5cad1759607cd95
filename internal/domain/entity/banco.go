package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BancoID identifica uno de los siete bancos fijos del sistema.
// El conjunto es cerrado: no se crean ni se eliminan bancos en runtime.
type BancoID string

const (
	BancoBovedaMonte BancoID = "boveda_monte"
	BancoBovedaUSA   BancoID = "boveda_usa"
	BancoProfit      BancoID = "profit"
	BancoLeftie      BancoID = "leftie"
	BancoAzteca      BancoID = "azteca"
	BancoFleteSur    BancoID = "flete_sur"
	BancoUtilidades  BancoID = "utilidades"
)

// Tipos de banco (metadato operativo, no afecta la fórmula de capital).
const (
	BancoTipoOperativo = "operativo"
	BancoTipoInversion = "inversion"
	BancoTipoAhorro    = "ahorro"
)

// TodosLosBancos devuelve los siete IDs en orden lexicográfico.
// El orden es el mismo que usan los repositorios para adquirir bloqueos
// de fila, de modo que toda operación multi-banco bloquea en orden global fijo.
func TodosLosBancos() []BancoID {
	return []BancoID{
		BancoAzteca,
		BancoBovedaMonte,
		BancoBovedaUSA,
		BancoFleteSur,
		BancoLeftie,
		BancoProfit,
		BancoUtilidades,
	}
}

// BancosDistribucion devuelve los tres bancos que reciben la distribución
// automática GYA de cada venta: costo, flete y ganancia.
func BancosDistribucion() [3]BancoID {
	return [3]BancoID{BancoBovedaMonte, BancoFleteSur, BancoUtilidades}
}

// EsValido indica si el ID pertenece al conjunto cerrado de siete bancos.
func (id BancoID) EsValido() bool {
	switch id {
	case BancoBovedaMonte, BancoBovedaUSA, BancoProfit, BancoLeftie,
		BancoAzteca, BancoFleteSur, BancoUtilidades:
		return true
	}
	return false
}

// RecibeDistribucion indica si el banco es destino automático de ventas (GYA).
func (id BancoID) RecibeDistribucion() bool {
	return id == BancoBovedaMonte || id == BancoFleteSur || id == BancoUtilidades
}

// PermiteIngresoManual indica si el banco acepta ingresos registrados a mano.
// Los tres bancos GYA solo reciben ingresos vía distribución de ventas o
// transferencias; los otros cuatro son operativos.
func (id BancoID) PermiteIngresoManual() bool {
	return id.EsValido() && !id.RecibeDistribucion()
}

// Banco es el libro mayor de una de las siete cuentas fijas.
//
// Los históricos son acumulativos y monotónicos: nunca disminuyen durante la
// vida del banco. El capital actual no se almacena; se deriva:
//
//	CapitalActual = HistoricoIngresos - HistoricoGastos - PendienteCobro
//
// HistoricoIngresos registra el 100% de cada distribución de venta en el
// momento de crearla, haya sido cobrada o no; PendienteCobro acumula la
// porción aún no cobrada, que los abonos van liberando. Así el histórico
// siempre muestra la distribución completa y el capital solo lo cobrado.
type Banco struct {
	ID                      BancoID
	Nombre                  string
	Tipo                    string
	HistoricoIngresos       decimal.Decimal
	HistoricoGastos         decimal.Decimal
	HistoricoTransferencias decimal.Decimal
	PendienteCobro          decimal.Decimal
	Activo                  bool
	UpdatedAt               time.Time
}

// CapitalActual deriva el capital disponible. Puede ser negativo (sobregiro
// producido por gastos); una transferencia saliente nunca lo deja por debajo
// de cero por sí sola.
func (b *Banco) CapitalActual() decimal.Decimal {
	return b.HistoricoIngresos.Sub(b.HistoricoGastos).Sub(b.PendienteCobro)
}
