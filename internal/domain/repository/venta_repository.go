package repository

import "github.com/chronos-sistema/chronos-capital/internal/domain/entity"

// VentaRepository define el puerto de persistencia de ventas.
// La distribución de una venta es inmutable: Update solo toca monto pagado,
// capital reconocido y estado de pago.
type VentaRepository interface {
	Create(venta *entity.Venta) error
	GetByID(id string) (*entity.Venta, error)
	// GetForUpdate bloquea la venta para aplicar un abono sin carreras.
	GetForUpdate(id string) (*entity.Venta, error)
	Update(venta *entity.Venta) error
	ListByCliente(clienteID string) ([]*entity.Venta, error)
	ListByOrdenCompra(ordenCompraID string) ([]*entity.Venta, error)
}
