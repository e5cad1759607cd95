package repository

import "github.com/chronos-sistema/chronos-capital/internal/domain/entity"

// MovimientoRepository define el puerto de la bitácora de movimientos.
// Los movimientos son append-only: no hay Update ni Delete.
type MovimientoRepository interface {
	Create(mov *entity.Movimiento) error
	ListByBanco(bancoID entity.BancoID, limit int) ([]*entity.Movimiento, error)
}
