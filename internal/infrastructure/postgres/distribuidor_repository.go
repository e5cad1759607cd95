package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/chronos-sistema/chronos-capital/internal/domain"
	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
	"github.com/chronos-sistema/chronos-capital/internal/domain/repository"
)

var _ repository.DistribuidorRepository = (*DistribuidorRepo)(nil)

// DistribuidorRepo implementación de DistribuidorRepository (usable con pool o tx).
type DistribuidorRepo struct {
	q Querier
}

// NewDistribuidorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDistribuidorRepository(q Querier) *DistribuidorRepo {
	return &DistribuidorRepo{q: q}
}

// Create persiste un distribuidor nuevo.
func (r *DistribuidorRepo) Create(dist *entity.Distribuidor) error {
	query := `
		INSERT INTO distribuidores (id, nombre, total_ordenes_compra, total_pagado,
			deuda_total, numero_ordenes, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		dist.ID, dist.Nombre, dist.TotalOrdenesCompra, dist.TotalPagado,
		dist.DeudaTotal, dist.NumeroOrdenes, dist.Estado,
		dist.CreatedAt, dist.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert distribuidor: %w", err)
	}
	return nil
}

// GetByID obtiene un distribuidor por ID (nil si no existe).
func (r *DistribuidorRepo) GetByID(id string) (*entity.Distribuidor, error) {
	query := `
		SELECT id, nombre, total_ordenes_compra, total_pagado, deuda_total,
			numero_ordenes, estado, created_at, updated_at
		FROM distribuidores WHERE id = $1`
	var d entity.Distribuidor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Nombre, &d.TotalOrdenesCompra, &d.TotalPagado, &d.DeudaTotal,
		&d.NumeroOrdenes, &d.Estado, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get distribuidor: %w", err)
	}
	return &d, nil
}

// Update persiste los agregados recalculados del distribuidor.
func (r *DistribuidorRepo) Update(dist *entity.Distribuidor) error {
	query := `
		UPDATE distribuidores SET nombre = $2, total_ordenes_compra = $3,
			total_pagado = $4, deuda_total = $5, numero_ordenes = $6,
			estado = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		dist.ID, dist.Nombre, dist.TotalOrdenesCompra, dist.TotalPagado,
		dist.DeudaTotal, dist.NumeroOrdenes, dist.Estado, dist.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update distribuidor: %w", err)
	}
	return nil
}
