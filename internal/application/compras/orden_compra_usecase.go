package compras

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chronos-sistema/chronos-capital/internal/application/dto"
	"github.com/chronos-sistema/chronos-capital/internal/domain"
	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
	"github.com/chronos-sistema/chronos-capital/internal/domain/ledger"
	"github.com/chronos-sistema/chronos-capital/internal/domain/repository"
)

// OrdenCompraUseCase gestiona órdenes de compra a distribuidor: alta con
// stock inicial, pagos posteriores desde un banco (vía gasto, sin protección
// de sobregiro) y agregados del distribuidor.
type OrdenCompraUseCase struct {
	txRunner ComprasTxRunner
	distRepo repository.DistribuidorRepository
	ocRepo   repository.OrdenCompraRepository
}

// NewOrdenCompraUseCase construye el caso de uso.
func NewOrdenCompraUseCase(
	txRunner ComprasTxRunner,
	distRepo repository.DistribuidorRepository,
	ocRepo repository.OrdenCompraRepository,
) *OrdenCompraUseCase {
	return &OrdenCompraUseCase{txRunner: txRunner, distRepo: distRepo, ocRepo: ocRepo}
}

// CreateOrdenCompra da de alta la OC. El stock inicial es la cantidad
// comprada; si hay pago inicial se registra como gasto del banco origen en la
// misma transacción.
func (uc *OrdenCompraUseCase) CreateOrdenCompra(ctx context.Context, in dto.CreateOrdenCompraRequest) (*dto.OrdenCompraResponse, error) {
	if in.DistribuidorID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if !in.Cantidad.IsPositive() || in.PrecioUnitario.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	if in.PagoInicial.IsNegative() {
		return nil, domain.ErrMontoInvalido
	}
	if in.PagoInicial.IsPositive() && !in.BancoOrigenID.EsValido() {
		return nil, domain.ErrNotFound
	}

	dist, err := uc.distRepo.GetByID(in.DistribuidorID)
	if err != nil {
		return nil, err
	}
	if dist == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	total := in.Cantidad.Mul(in.PrecioUnitario)
	pago := in.PagoInicial
	if pago.GreaterThan(total) {
		pago = total
	}
	estado, _ := ledger.ResolverEstadoPago(pago, total)

	oc := &entity.OrdenCompra{
		ID:             uuid.New().String(),
		DistribuidorID: in.DistribuidorID,
		NumeroOrden:    in.NumeroOrden,
		Fecha:          now,
		Cantidad:       in.Cantidad,
		PrecioUnitario: in.PrecioUnitario,
		Total:          total,
		MontoPagado:    pago,
		Estado:         estado,
		StockInicial:   in.Cantidad,
		StockActual:    in.Cantidad,
		BancoOrigenID:  in.BancoOrigenID,
		Observaciones:  in.Observaciones,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.txRunner.RunCompra(ctx, func(
		bancoRepo repository.BancoRepository,
		ocRepo repository.OrdenCompraRepository,
		movRepo repository.MovimientoRepository,
		distRepo repository.DistribuidorRepository,
	) error {
		if err := ocRepo.Create(oc); err != nil {
			return err
		}
		if pago.IsPositive() {
			if err := uc.pagarDesdeBanco(bancoRepo, movRepo, in.BancoOrigenID, pago, "Pago inicial OC", oc, now); err != nil {
				return err
			}
		}
		return uc.recalcularDistribuidor(ocRepo, distRepo, dist, now)
	})
	if err != nil {
		return nil, err
	}

	resp := dto.OrdenCompraFromEntity(oc)
	return &resp, nil
}

// PagarDistribuidor aplica un pago contra la deuda de la OC desde el banco
// elegido. El pago se recorta a la deuda restante; el banco asume el gasto
// aunque quede en sobregiro.
func (uc *OrdenCompraUseCase) PagarDistribuidor(ctx context.Context, ocID string, in dto.PagoDistribuidorRequest) (*dto.OrdenCompraResponse, error) {
	if ocID == "" {
		return nil, domain.ErrNotFound
	}
	if !in.BancoOrigenID.EsValido() {
		return nil, domain.ErrNotFound
	}
	if !in.Monto.IsPositive() {
		return nil, domain.ErrMontoInvalido
	}

	now := time.Now()
	var resp *dto.OrdenCompraResponse

	err := uc.txRunner.RunCompra(ctx, func(
		bancoRepo repository.BancoRepository,
		ocRepo repository.OrdenCompraRepository,
		movRepo repository.MovimientoRepository,
		distRepo repository.DistribuidorRepository,
	) error {
		oc, err := ocRepo.GetForUpdate(ocID)
		if err != nil {
			return err
		}
		if oc == nil {
			return domain.ErrNotFound
		}

		aplicado := in.Monto
		if aplicado.GreaterThan(oc.Deuda()) {
			aplicado = oc.Deuda()
		}
		if !aplicado.IsPositive() {
			return domain.ErrMontoInvalido
		}

		concepto := in.Concepto
		if concepto == "" {
			concepto = "Pago a distribuidor"
		}
		if err := uc.pagarDesdeBanco(bancoRepo, movRepo, in.BancoOrigenID, aplicado, concepto, oc, now); err != nil {
			return err
		}

		oc.MontoPagado = oc.MontoPagado.Add(aplicado)
		oc.Estado, _ = ledger.ResolverEstadoPago(oc.MontoPagado, oc.Total)
		oc.UpdatedAt = now
		if err := ocRepo.Update(oc); err != nil {
			return err
		}

		dist, err := distRepo.GetByID(oc.DistribuidorID)
		if err != nil {
			return err
		}
		if dist != nil {
			if err := uc.recalcularDistribuidor(ocRepo, distRepo, dist, now); err != nil {
				return err
			}
		}

		r := dto.OrdenCompraFromEntity(oc)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetOrdenCompra devuelve una OC por ID.
func (uc *OrdenCompraUseCase) GetOrdenCompra(ctx context.Context, id string) (*dto.OrdenCompraResponse, error) {
	oc, err := uc.ocRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if oc == nil {
		return nil, domain.ErrNotFound
	}
	r := dto.OrdenCompraFromEntity(oc)
	return &r, nil
}

// CreateDistribuidor da de alta un distribuidor con agregados en cero.
func (uc *OrdenCompraUseCase) CreateDistribuidor(ctx context.Context, in dto.CreateDistribuidorRequest) (*dto.DistribuidorResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}

	now := time.Now()
	dist := &entity.Distribuidor{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		Estado:    "activo",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.distRepo.Create(dist); err != nil {
		return nil, err
	}
	r := dto.DistribuidorFromEntity(dist)
	return &r, nil
}

// GetDistribuidor devuelve un distribuidor con sus agregados.
func (uc *OrdenCompraUseCase) GetDistribuidor(ctx context.Context, id string) (*dto.DistribuidorResponse, error) {
	dist, err := uc.distRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dist == nil {
		return nil, domain.ErrNotFound
	}
	r := dto.DistribuidorFromEntity(dist)
	return &r, nil
}

func (uc *OrdenCompraUseCase) pagarDesdeBanco(
	bancoRepo repository.BancoRepository,
	movRepo repository.MovimientoRepository,
	bancoID entity.BancoID,
	monto decimal.Decimal,
	concepto string,
	oc *entity.OrdenCompra,
	now time.Time,
) error {
	banco, err := bancoRepo.GetForUpdate(bancoID)
	if err != nil {
		return err
	}
	if banco == nil {
		return domain.ErrNotFound
	}
	nuevo, err := ledger.RegistrarGasto(*banco, monto)
	if err != nil {
		return err
	}
	nuevo.UpdatedAt = now
	if err := bancoRepo.Update(&nuevo); err != nil {
		return err
	}
	mov := &entity.Movimiento{
		ID:             uuid.New().String(),
		BancoID:        bancoID,
		Tipo:           entity.MovimientoPago,
		Monto:          monto.Neg(),
		Fecha:          now,
		Concepto:       concepto,
		DistribuidorID: oc.DistribuidorID,
		OrdenCompraID:  oc.ID,
		CreatedAt:      now,
	}
	return movRepo.Create(mov)
}

func (uc *OrdenCompraUseCase) recalcularDistribuidor(
	ocRepo repository.OrdenCompraRepository,
	distRepo repository.DistribuidorRepository,
	dist *entity.Distribuidor,
	now time.Time,
) error {
	ordenes, err := ocRepo.ListByDistribuidor(dist.ID)
	if err != nil {
		return err
	}
	actualizado := ledger.RecalcularDistribuidor(*dist, ordenes)
	actualizado.UpdatedAt = now
	return distRepo.Update(&actualizado)
}
