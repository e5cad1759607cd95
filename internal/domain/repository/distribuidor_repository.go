package repository

import "github.com/chronos-sistema/chronos-capital/internal/domain/entity"

// DistribuidorRepository define el puerto de persistencia de distribuidores.
type DistribuidorRepository interface {
	Create(dist *entity.Distribuidor) error
	GetByID(id string) (*entity.Distribuidor, error)
	// Update persiste los agregados recalculados desde las órdenes de compra.
	Update(dist *entity.Distribuidor) error
}
