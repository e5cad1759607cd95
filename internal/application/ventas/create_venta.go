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

// CreateVentaUseCase crea una venta y ejecuta el protocolo de asiento:
// el 100% de la distribución GYA entra al histórico de los tres bancos
// destino en el momento de la venta, haya pago o no; solo la proporción
// cobrada queda como capital disponible (el resto queda pendiente de cobro).
type CreateVentaUseCase struct {
	txRunner    VentasTxRunner
	clienteRepo repository.ClienteRepository
}

// NewCreateVentaUseCase construye el caso de uso.
func NewCreateVentaUseCase(txRunner VentasTxRunner, clienteRepo repository.ClienteRepository) *CreateVentaUseCase {
	return &CreateVentaUseCase{txRunner: txRunner, clienteRepo: clienteRepo}
}

// CreateVenta valida, calcula la distribución y asienta. Validaciones de
// negocio primero (puras, sin tocar ningún libro); después la transacción
// bloquea los tres bancos destino en orden lexicográfico de ID y aplica todo.
func (uc *CreateVentaUseCase) CreateVenta(ctx context.Context, in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	if in.ClienteID == "" {
		return nil, domain.ErrEntradaInvalida
	}

	// Cálculo puro: rechaza cantidad/precios inválidos sin efectos.
	venta, err := ledger.NuevaVenta(
		in.PrecioVentaUnidad, in.PrecioCompraUnidad, in.PrecioFleteUnidad,
		in.Cantidad, in.MontoPagado,
	)
	if err != nil {
		return nil, err
	}

	// Cliente debe existir (lectura fuera de la tx).
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	venta.ID = uuid.New().String()
	venta.ClienteID = in.ClienteID
	venta.OrdenCompraID = in.OrdenCompraID
	venta.Observaciones = in.Observaciones
	venta.Fecha = now
	venta.CreatedAt = now
	venta.UpdatedAt = now

	err = uc.txRunner.RunVenta(ctx, func(
		bancoRepo repository.BancoRepository,
		ventaRepo repository.VentaRepository,
		movRepo repository.MovimientoRepository,
		ocRepo repository.OrdenCompraRepository,
		clienteRepo repository.ClienteRepository,
	) error {
		// Si la venta sale de una OC, descuenta stock con la fila bloqueada.
		if venta.OrdenCompraID != "" {
			oc, err := ocRepo.GetForUpdate(venta.OrdenCompraID)
			if err != nil {
				return err
			}
			if oc == nil {
				return domain.ErrNotFound
			}
			if oc.StockActual.LessThan(venta.Cantidad) {
				return domain.ErrStockInsuficiente
			}
			oc.StockActual = oc.StockActual.Sub(venta.Cantidad)
			oc.UpdatedAt = now
			if err := ocRepo.Update(oc); err != nil {
				return err
			}
		}

		// Asiento en los tres bancos destino. BancosDistribucion ya viene en
		// orden lexicográfico (boveda_monte, flete_sur, utilidades): el mismo
		// orden global de bloqueo que usan las transferencias.
		for _, id := range entity.BancosDistribucion() {
			banco, err := bancoRepo.GetForUpdate(id)
			if err != nil {
				return err
			}

			historico := venta.Distribucion.PorBanco(id)
			cobrado := venta.CapitalReconocido.PorBanco(id)

			// Histórico siempre al 100%; lo no cobrado queda pendiente y no
			// cuenta como capital hasta que un abono lo libere.
			banco.HistoricoIngresos = banco.HistoricoIngresos.Add(historico)
			banco.PendienteCobro = banco.PendienteCobro.Add(historico.Sub(cobrado))
			banco.UpdatedAt = now
			if err := bancoRepo.Update(banco); err != nil {
				return err
			}

			mov := &entity.Movimiento{
				ID:        uuid.New().String(),
				BancoID:   id,
				Tipo:      entity.MovimientoIngreso,
				Monto:     historico,
				Fecha:     now,
				Concepto:  "Distribución de venta",
				ClienteID: venta.ClienteID,
				VentaID:   venta.ID,
				CreatedAt: now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}

		if err := ventaRepo.Create(venta); err != nil {
			return err
		}

		// Agregados del cliente recalculados desde sus ventas, nunca a mano.
		ventasCliente, err := ventaRepo.ListByCliente(venta.ClienteID)
		if err != nil {
			return err
		}
		actualizado := ledger.RecalcularCliente(*cliente, ventasCliente)
		actualizado.UpdatedAt = now
		return clienteRepo.Update(&actualizado)
	})
	if err != nil {
		return nil, err
	}

	resp := dto.VentaFromEntity(venta)
	return &resp, nil
}
