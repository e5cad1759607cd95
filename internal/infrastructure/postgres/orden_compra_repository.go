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

var _ repository.OrdenCompraRepository = (*OrdenCompraRepo)(nil)

const ordenCompraColumns = `id, distribuidor_id, numero_orden, fecha, cantidad,
		precio_unitario, total, monto_pagado, estado, stock_inicial, stock_actual,
		banco_origen_id, observaciones, created_at, updated_at`

// OrdenCompraRepo implementación de OrdenCompraRepository (usable con pool o tx).
type OrdenCompraRepo struct {
	q Querier
}

// NewOrdenCompraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrdenCompraRepository(q Querier) *OrdenCompraRepo {
	return &OrdenCompraRepo{q: q}
}

func scanOrdenCompra(row pgx.Row) (*entity.OrdenCompra, error) {
	var oc entity.OrdenCompra
	var bancoID *string
	err := row.Scan(
		&oc.ID, &oc.DistribuidorID, &oc.NumeroOrden, &oc.Fecha, &oc.Cantidad,
		&oc.PrecioUnitario, &oc.Total, &oc.MontoPagado, &oc.Estado,
		&oc.StockInicial, &oc.StockActual, &bancoID, &oc.Observaciones,
		&oc.CreatedAt, &oc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if bancoID != nil {
		oc.BancoOrigenID = entity.BancoID(*bancoID)
	}
	return &oc, nil
}

// Create persiste una orden de compra.
func (r *OrdenCompraRepo) Create(oc *entity.OrdenCompra) error {
	query := `
		INSERT INTO ordenes_compra (` + ordenCompraColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		oc.ID, oc.DistribuidorID, oc.NumeroOrden, oc.Fecha, oc.Cantidad,
		oc.PrecioUnitario, oc.Total, oc.MontoPagado, oc.Estado,
		oc.StockInicial, oc.StockActual, nullIfEmpty(string(oc.BancoOrigenID)),
		oc.Observaciones, oc.CreatedAt, oc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert orden de compra: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID (nil si no existe).
func (r *OrdenCompraRepo) GetByID(id string) (*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenCompraColumns + ` FROM ordenes_compra WHERE id = $1`
	oc, err := scanOrdenCompra(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden de compra: %w", err)
	}
	return oc, nil
}

// GetForUpdate obtiene la orden y bloquea su fila para descontar stock o pagar.
func (r *OrdenCompraRepo) GetForUpdate(id string) (*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenCompraColumns + ` FROM ordenes_compra WHERE id = $1 FOR UPDATE`
	oc, err := scanOrdenCompra(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden de compra for update: %w", err)
	}
	return oc, nil
}

// Update persiste stock y avance de pago de la orden.
func (r *OrdenCompraRepo) Update(oc *entity.OrdenCompra) error {
	query := `
		UPDATE ordenes_compra SET monto_pagado = $2, estado = $3,
			stock_actual = $4, observaciones = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		oc.ID, oc.MontoPagado, oc.Estado, oc.StockActual, oc.Observaciones, oc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update orden de compra: %w", err)
	}
	return nil
}

// ListByDistribuidor lista las órdenes de un distribuidor, más recientes primero.
func (r *OrdenCompraRepo) ListByDistribuidor(distribuidorID string) ([]*entity.OrdenCompra, error) {
	query := `SELECT ` + ordenCompraColumns + ` FROM ordenes_compra WHERE distribuidor_id = $1 ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query, distribuidorID)
	if err != nil {
		return nil, fmt.Errorf("list ordenes de compra: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrdenCompra
	for rows.Next() {
		oc, err := scanOrdenCompra(rows)
		if err != nil {
			return nil, fmt.Errorf("scan orden de compra: %w", err)
		}
		list = append(list, oc)
	}
	return list, rows.Err()
}
