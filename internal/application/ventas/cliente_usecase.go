package ventas

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chronos-sistema/chronos-capital/internal/application/dto"
	"github.com/chronos-sistema/chronos-capital/internal/domain"
	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
	"github.com/chronos-sistema/chronos-capital/internal/domain/repository"
)

// ClienteUseCase alta de clientes. Los agregados arrancan en cero y solo los
// mueve el recálculo desde las ventas.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(clienteRepo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo}
}

// CreateCliente da de alta un cliente.
func (uc *ClienteUseCase) CreateCliente(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}

	now := time.Now()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		Estado:    "activo",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clienteRepo.Create(cliente); err != nil {
		return nil, err
	}
	r := dto.ClienteFromEntity(cliente)
	return &r, nil
}
