package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los cuatro primeros son rechazos de negocio: se detectan antes de cualquier
// mutación y los handlers deben devolverlos sin colapsarlos en un error genérico.
var (
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrMontoInvalido       = errors.New("monto inválido")
	ErrMismoBanco          = errors.New("banco origen y destino deben ser diferentes")
	ErrCapitalInsuficiente = errors.New("capital insuficiente")

	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("el recurso ya existe")
	ErrBancoNoManual     = errors.New("el banco no acepta ingresos manuales")
	ErrStockInsuficiente = errors.New("stock insuficiente en la orden de compra")
)
