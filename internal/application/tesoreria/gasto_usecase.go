package tesoreria

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronos-sistema/chronos-capital/internal/application/dto"
	"github.com/chronos-sistema/chronos-capital/internal/domain"
	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
	"github.com/chronos-sistema/chronos-capital/internal/domain/ledger"
	"github.com/chronos-sistema/chronos-capital/internal/domain/repository"
)

// GastoUseCase registra gastos e ingresos manuales sobre un banco.
// Los gastos no tienen protección de sobregiro (el capital puede quedar
// negativo); los ingresos manuales solo se aceptan en los cuatro bancos
// operativos.
type GastoUseCase struct {
	txRunner TxRunner
}

// NewGastoUseCase construye el caso de uso.
func NewGastoUseCase(txRunner TxRunner) *GastoUseCase {
	return &GastoUseCase{txRunner: txRunner}
}

// RegistrarGasto suma el monto a HistoricoGastos del banco y deja bitácora.
func (uc *GastoUseCase) RegistrarGasto(ctx context.Context, bancoID entity.BancoID, monto decimal.Decimal, concepto string) (*dto.BancoResponse, error) {
	if !bancoID.EsValido() {
		return nil, domain.ErrNotFound
	}
	if !monto.IsPositive() {
		return nil, domain.ErrMontoInvalido
	}
	return uc.aplicar(ctx, bancoID, entity.MovimientoGasto, monto.Neg(), concepto, func(b entity.Banco) (entity.Banco, error) {
		return ledger.RegistrarGasto(b, monto)
	})
}

// RegistrarIngreso suma el monto a HistoricoIngresos de un banco manual.
func (uc *GastoUseCase) RegistrarIngreso(ctx context.Context, bancoID entity.BancoID, monto decimal.Decimal, concepto string) (*dto.BancoResponse, error) {
	if !bancoID.EsValido() {
		return nil, domain.ErrNotFound
	}
	if !monto.IsPositive() {
		return nil, domain.ErrMontoInvalido
	}
	return uc.aplicar(ctx, bancoID, entity.MovimientoIngreso, monto, concepto, func(b entity.Banco) (entity.Banco, error) {
		return ledger.RegistrarIngresoManual(b, monto)
	})
}

func (uc *GastoUseCase) aplicar(
	ctx context.Context,
	bancoID entity.BancoID,
	tipo string,
	montoMovimiento decimal.Decimal,
	concepto string,
	mutar func(entity.Banco) (entity.Banco, error),
) (*dto.BancoResponse, error) {
	now := time.Now()
	var resp *dto.BancoResponse

	err := uc.txRunner.Run(ctx, func(
		bancoRepo repository.BancoRepository,
		movRepo repository.MovimientoRepository,
	) error {
		banco, err := bancoRepo.GetForUpdate(bancoID)
		if err != nil {
			return err
		}
		nuevo, err := mutar(*banco)
		if err != nil {
			return err
		}
		nuevo.UpdatedAt = now
		if err := bancoRepo.Update(&nuevo); err != nil {
			return err
		}
		mov := &entity.Movimiento{
			ID:        uuid.New().String(),
			BancoID:   bancoID,
			Tipo:      tipo,
			Monto:     montoMovimiento,
			Fecha:     now,
			Concepto:  concepto,
			CreatedAt: now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		r := dto.BancoFromEntity(&nuevo)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
