package repository

import "github.com/chronos-sistema/chronos-capital/internal/domain/entity"

// ClienteRepository define el puerto de persistencia de clientes.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	// Update persiste los agregados recalculados desde las ventas.
	Update(cliente *entity.Cliente) error
}
