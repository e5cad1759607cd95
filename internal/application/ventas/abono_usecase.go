package ventas

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chronos-sistema/chronos-capital/internal/application/dto"
	"github.com/chronos-sistema/chronos-capital/internal/domain"
	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
	"github.com/chronos-sistema/chronos-capital/internal/domain/ledger"
	"github.com/chronos-sistema/chronos-capital/internal/domain/repository"
)

// AbonoUseCase aplica pagos posteriores contra la distribución original de
// una venta. Libera capital proporcional hacia los tres bancos destino sin
// tocar jamás el histórico (ya se asentó completo al crear la venta).
type AbonoUseCase struct {
	txRunner VentasTxRunner
}

// NewAbonoUseCase construye el caso de uso.
func NewAbonoUseCase(txRunner VentasTxRunner) *AbonoUseCase {
	return &AbonoUseCase{txRunner: txRunner}
}

// ApplyAbono aplica el abono dentro de una transacción: bloquea la venta,
// calcula el incremento desde el acumulado y libera pendiente de cobro en los
// tres bancos, en el mismo orden global de bloqueo que el resto del sistema.
func (uc *AbonoUseCase) ApplyAbono(ctx context.Context, ventaID string, in dto.AbonoRequest) (*dto.VentaResponse, error) {
	if ventaID == "" {
		return nil, domain.ErrNotFound
	}
	if !in.Monto.IsPositive() {
		return nil, domain.ErrMontoInvalido
	}

	now := time.Now()
	var resp *dto.VentaResponse

	err := uc.txRunner.RunVenta(ctx, func(
		bancoRepo repository.BancoRepository,
		ventaRepo repository.VentaRepository,
		movRepo repository.MovimientoRepository,
		_ repository.OrdenCompraRepository,
		clienteRepo repository.ClienteRepository,
	) error {
		venta, err := ventaRepo.GetForUpdate(ventaID)
		if err != nil {
			return err
		}
		if venta == nil {
			return domain.ErrNotFound
		}

		r, err := ledger.CalcularAbono(venta, in.Monto)
		if err != nil {
			return err
		}
		// Abono sobre venta ya saldada: nada que liberar.
		if !r.MontoAplicado.IsPositive() {
			return domain.ErrMontoInvalido
		}

		for _, id := range entity.BancosDistribucion() {
			banco, err := bancoRepo.GetForUpdate(id)
			if err != nil {
				return err
			}

			// En una venta con pérdida el tramo de utilidades es negativo:
			// su pendiente arranca negativo y cada abono lo acerca a cero.
			// No se recorta; el incremento ya está acotado por la proporción
			// acumulada de la venta.
			liberado := r.Incremento.PorBanco(id)
			banco.PendienteCobro = banco.PendienteCobro.Sub(liberado)
			banco.UpdatedAt = now
			if err := bancoRepo.Update(banco); err != nil {
				return err
			}

			mov := &entity.Movimiento{
				ID:        uuid.New().String(),
				BancoID:   id,
				Tipo:      entity.MovimientoAbono,
				Monto:     liberado,
				Fecha:     now,
				Concepto:  in.Concepto,
				ClienteID: venta.ClienteID,
				VentaID:   venta.ID,
				CreatedAt: now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}

		ledger.AplicarAbono(venta, r)
		venta.UpdatedAt = now
		if err := ventaRepo.Update(venta); err != nil {
			return err
		}

		cliente, err := clienteRepo.GetByID(venta.ClienteID)
		if err != nil {
			return err
		}
		if cliente != nil {
			ventasCliente, err := ventaRepo.ListByCliente(venta.ClienteID)
			if err != nil {
				return err
			}
			actualizado := ledger.RecalcularCliente(*cliente, ventasCliente)
			actualizado.UpdatedAt = now
			if err := clienteRepo.Update(&actualizado); err != nil {
				return err
			}
		}

		v := dto.VentaFromEntity(venta)
		resp = &v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
