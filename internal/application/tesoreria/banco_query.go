package tesoreria

import (
	"context"

	"github.com/chronos-sistema/chronos-capital/internal/application/dto"
	"github.com/chronos-sistema/chronos-capital/internal/domain"
	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
	"github.com/chronos-sistema/chronos-capital/internal/domain/repository"
)

// BancoQueryUseCase consultas de solo lectura sobre bancos y su bitácora.
type BancoQueryUseCase struct {
	bancoRepo repository.BancoRepository
	movRepo   repository.MovimientoRepository
}

// NewBancoQueryUseCase construye el caso de uso.
func NewBancoQueryUseCase(bancoRepo repository.BancoRepository, movRepo repository.MovimientoRepository) *BancoQueryUseCase {
	return &BancoQueryUseCase{bancoRepo: bancoRepo, movRepo: movRepo}
}

// ListBancos devuelve los siete bancos con su capital derivado.
func (uc *BancoQueryUseCase) ListBancos(ctx context.Context) ([]dto.BancoResponse, error) {
	bancos, err := uc.bancoRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BancoResponse, 0, len(bancos))
	for _, b := range bancos {
		out = append(out, dto.BancoFromEntity(b))
	}
	return out, nil
}

// GetBanco devuelve un banco por ID.
func (uc *BancoQueryUseCase) GetBanco(ctx context.Context, id entity.BancoID) (*dto.BancoResponse, error) {
	if !id.EsValido() {
		return nil, domain.ErrNotFound
	}
	banco, err := uc.bancoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if banco == nil {
		return nil, domain.ErrNotFound
	}
	r := dto.BancoFromEntity(banco)
	return &r, nil
}

// ListMovimientos devuelve la bitácora reciente del banco.
func (uc *BancoQueryUseCase) ListMovimientos(ctx context.Context, id entity.BancoID, limit int) ([]dto.MovimientoResponse, error) {
	if !id.EsValido() {
		return nil, domain.ErrNotFound
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	movs, err := uc.movRepo.ListByBanco(id, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovimientoFromEntity(m))
	}
	return out, nil
}
