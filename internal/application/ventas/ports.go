package ventas

import (
	"context"

	"github.com/chronos-sistema/chronos-capital/internal/domain/repository"
)

// VentasTxRunner ejecuta el asiento de una venta o un abono en una sola
// transacción: los tres bancos destino, la venta, la bitácora y los agregados
// del cliente se escriben todos o ninguno.
type VentasTxRunner interface {
	RunVenta(ctx context.Context, fn func(
		bancoRepo repository.BancoRepository,
		ventaRepo repository.VentaRepository,
		movRepo repository.MovimientoRepository,
		ocRepo repository.OrdenCompraRepository,
		clienteRepo repository.ClienteRepository,
	) error) error
}
