package tesoreria

import (
	"context"

	"github.com/chronos-sistema/chronos-capital/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que las mutaciones multi-banco de
// una transferencia se apliquen atómicamente: ambos bancos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		bancoRepo repository.BancoRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}
