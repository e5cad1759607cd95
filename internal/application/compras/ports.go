package compras

import (
	"context"

	"github.com/chronos-sistema/chronos-capital/internal/domain/repository"
)

// ComprasTxRunner ejecuta la creación o el pago de una orden de compra en una
// sola transacción: banco pagador, orden, bitácora y agregados del
// distribuidor se escriben todos o ninguno.
type ComprasTxRunner interface {
	RunCompra(ctx context.Context, fn func(
		bancoRepo repository.BancoRepository,
		ocRepo repository.OrdenCompraRepository,
		movRepo repository.MovimientoRepository,
		distRepo repository.DistribuidorRepository,
	) error) error
}
