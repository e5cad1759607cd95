package repository

import "github.com/chronos-sistema/chronos-capital/internal/domain/entity"

// OrdenCompraRepository define el puerto de persistencia de órdenes de compra.
type OrdenCompraRepository interface {
	Create(oc *entity.OrdenCompra) error
	GetByID(id string) (*entity.OrdenCompra, error)
	// GetForUpdate bloquea la OC para descontar stock o aplicar un pago.
	GetForUpdate(id string) (*entity.OrdenCompra, error)
	Update(oc *entity.OrdenCompra) error
	ListByDistribuidor(distribuidorID string) ([]*entity.OrdenCompra, error)
}
