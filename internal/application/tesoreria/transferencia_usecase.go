package tesoreria

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

// TransferenciaUseCase mueve capital entre dos bancos con protección de
// sobregiro, dentro de una transacción con bloqueo de filas.
type TransferenciaUseCase struct {
	txRunner TxRunner
}

// NewTransferenciaUseCase construye el caso de uso.
func NewTransferenciaUseCase(txRunner TxRunner) *TransferenciaUseCase {
	return &TransferenciaUseCase{txRunner: txRunner}
}

// Transferir valida y ejecuta la transferencia. Las validaciones de negocio
// (mismo banco, monto, sobregiro) se resuelven antes de mutar nada; el chequeo
// de capital se hace sobre las filas ya bloqueadas, nunca sobre una lectura
// obsoleta. Los dos bancos se bloquean en orden lexicográfico de ID para que
// transferencias concurrentes en sentidos opuestos no se bloqueen mutuamente.
func (uc *TransferenciaUseCase) Transferir(ctx context.Context, in dto.TransferenciaRequest) (*dto.TransferenciaResponse, error) {
	if !in.BancoOrigenID.EsValido() || !in.BancoDestinoID.EsValido() {
		return nil, domain.ErrNotFound
	}
	if in.BancoOrigenID == in.BancoDestinoID {
		return nil, domain.ErrMismoBanco
	}
	if !in.Monto.IsPositive() {
		return nil, domain.ErrMontoInvalido
	}

	now := time.Now()
	var resp *dto.TransferenciaResponse

	err := uc.txRunner.Run(ctx, func(
		bancoRepo repository.BancoRepository,
		movRepo repository.MovimientoRepository,
	) error {
		primero, segundo := in.BancoOrigenID, in.BancoDestinoID
		if segundo < primero {
			primero, segundo = segundo, primero
		}

		bancos := make(map[entity.BancoID]*entity.Banco, 2)
		for _, id := range []entity.BancoID{primero, segundo} {
			b, err := bancoRepo.GetForUpdate(id)
			if err != nil {
				return err
			}
			bancos[id] = b
		}
		origen := bancos[in.BancoOrigenID]
		destino := bancos[in.BancoDestinoID]

		r, err := ledger.CalcularTransferencia(*origen, *destino, in.Monto)
		if err != nil {
			return err
		}

		r.Origen.UpdatedAt = now
		r.Destino.UpdatedAt = now
		if err := bancoRepo.Update(&r.Origen); err != nil {
			return err
		}
		if err := bancoRepo.Update(&r.Destino); err != nil {
			return err
		}

		salida := &entity.Movimiento{
			ID:             uuid.New().String(),
			BancoID:        in.BancoOrigenID,
			Tipo:           entity.MovimientoTransferenciaSalida,
			Monto:          in.Monto.Neg(),
			Fecha:          now,
			Concepto:       in.Concepto,
			BancoDestinoID: in.BancoDestinoID,
			CreatedAt:      now,
		}
		entrada := &entity.Movimiento{
			ID:            uuid.New().String(),
			BancoID:       in.BancoDestinoID,
			Tipo:          entity.MovimientoTransferenciaEntrada,
			Monto:         in.Monto,
			Fecha:         now,
			Concepto:      in.Concepto,
			BancoOrigenID: in.BancoOrigenID,
			CreatedAt:     now,
		}
		if err := movRepo.Create(salida); err != nil {
			return err
		}
		if err := movRepo.Create(entrada); err != nil {
			return err
		}

		resp = &dto.TransferenciaResponse{
			Origen:  dto.BancoFromEntity(&r.Origen),
			Destino: dto.BancoFromEntity(&r.Destino),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
