package ventas

import (
	"context"

	"github.com/chronos-sistema/chronos-capital/internal/application/dto"
	"github.com/chronos-sistema/chronos-capital/internal/domain"
	"github.com/chronos-sistema/chronos-capital/internal/domain/repository"
)

// VentaQueryUseCase consultas de solo lectura de ventas y clientes.
type VentaQueryUseCase struct {
	ventaRepo   repository.VentaRepository
	clienteRepo repository.ClienteRepository
}

// NewVentaQueryUseCase construye el caso de uso.
func NewVentaQueryUseCase(ventaRepo repository.VentaRepository, clienteRepo repository.ClienteRepository) *VentaQueryUseCase {
	return &VentaQueryUseCase{ventaRepo: ventaRepo, clienteRepo: clienteRepo}
}

// GetVenta devuelve una venta por ID.
func (uc *VentaQueryUseCase) GetVenta(ctx context.Context, id string) (*dto.VentaResponse, error) {
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	r := dto.VentaFromEntity(venta)
	return &r, nil
}

// GetCliente devuelve un cliente con sus agregados.
func (uc *VentaQueryUseCase) GetCliente(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	r := dto.ClienteFromEntity(cliente)
	return &r, nil
}
