package repository

import "github.com/chronos-sistema/chronos-capital/internal/domain/entity"

// BancoRepository define el puerto de persistencia de los siete bancos.
// Usado dentro de transacciones para garantizar consistencia multi-banco.
type BancoRepository interface {
	GetByID(id entity.BancoID) (*entity.Banco, error)
	List() ([]*entity.Banco, error)
	// GetForUpdate bloquea la fila del banco (SELECT FOR UPDATE). Las
	// operaciones multi-banco deben bloquear en orden lexicográfico de ID
	// para evitar deadlocks y lecturas de capital obsoleto.
	GetForUpdate(id entity.BancoID) (*entity.Banco, error)
	Update(banco *entity.Banco) error
	// Upsert existe para el seed inicial: los bancos nunca se crean en runtime.
	Upsert(banco *entity.Banco) error
}
