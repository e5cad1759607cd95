package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
	"github.com/chronos-sistema/chronos-capital/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

const ventaColumns = `id, cliente_id, orden_compra_id, fecha, cantidad,
		precio_venta_unidad, precio_compra_unidad, precio_flete_unidad,
		precio_total_venta, monto_pagado,
		dist_boveda_monte, dist_fletes, dist_utilidades, dist_total,
		cap_boveda_monte, cap_fletes, cap_utilidades, cap_total,
		estado_pago, observaciones, created_at, updated_at`

// VentaRepo implementación de VentaRepository (usable con pool o tx).
// La distribución GYA se persiste desglosada en columnas: es el registro
// histórico de la venta y no se recalcula al leer.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

func scanVenta(row pgx.Row) (*entity.Venta, error) {
	var v entity.Venta
	var ocID *string
	err := row.Scan(
		&v.ID, &v.ClienteID, &ocID, &v.Fecha, &v.Cantidad,
		&v.PrecioVentaUnidad, &v.PrecioCompraUnidad, &v.PrecioFleteUnidad,
		&v.PrecioTotalVenta, &v.MontoPagado,
		&v.Distribucion.BovedaMonte, &v.Distribucion.Fletes, &v.Distribucion.Utilidades, &v.Distribucion.Total,
		&v.CapitalReconocido.BovedaMonte, &v.CapitalReconocido.Fletes, &v.CapitalReconocido.Utilidades, &v.CapitalReconocido.Total,
		&v.EstadoPago, &v.Observaciones, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if ocID != nil {
		v.OrdenCompraID = *ocID
	}
	return &v, nil
}

// Create persiste una venta nueva con su distribución completa.
func (r *VentaRepo) Create(venta *entity.Venta) error {
	query := `
		INSERT INTO ventas (` + ventaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		venta.ID, venta.ClienteID, nullIfEmpty(venta.OrdenCompraID), venta.Fecha, venta.Cantidad,
		venta.PrecioVentaUnidad, venta.PrecioCompraUnidad, venta.PrecioFleteUnidad,
		venta.PrecioTotalVenta, venta.MontoPagado,
		venta.Distribucion.BovedaMonte, venta.Distribucion.Fletes, venta.Distribucion.Utilidades, venta.Distribucion.Total,
		venta.CapitalReconocido.BovedaMonte, venta.CapitalReconocido.Fletes, venta.CapitalReconocido.Utilidades, venta.CapitalReconocido.Total,
		venta.EstadoPago, venta.Observaciones, venta.CreatedAt, venta.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID (nil si no existe).
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas WHERE id = $1`
	v, err := scanVenta(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return v, nil
}

// GetForUpdate obtiene la venta y bloquea su fila para aplicar un abono.
func (r *VentaRepo) GetForUpdate(id string) (*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas WHERE id = $1 FOR UPDATE`
	v, err := scanVenta(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta for update: %w", err)
	}
	return v, nil
}

// Update persiste el avance de pago de la venta. La distribución histórica
// no se toca: solo monto pagado, capital reconocido y estado.
func (r *VentaRepo) Update(venta *entity.Venta) error {
	query := `
		UPDATE ventas SET monto_pagado = $2,
			cap_boveda_monte = $3, cap_fletes = $4, cap_utilidades = $5, cap_total = $6,
			estado_pago = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		venta.ID, venta.MontoPagado,
		venta.CapitalReconocido.BovedaMonte, venta.CapitalReconocido.Fletes,
		venta.CapitalReconocido.Utilidades, venta.CapitalReconocido.Total,
		venta.EstadoPago, venta.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update venta: %w", err)
	}
	return nil
}

// ListByCliente lista las ventas de un cliente, más recientes primero.
func (r *VentaRepo) ListByCliente(clienteID string) ([]*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas WHERE cliente_id = $1 ORDER BY fecha DESC`
	return r.list(query, clienteID)
}

// ListByOrdenCompra lista las ventas que salieron de una orden de compra.
func (r *VentaRepo) ListByOrdenCompra(ordenCompraID string) ([]*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas WHERE orden_compra_id = $1 ORDER BY fecha DESC`
	return r.list(query, ordenCompraID)
}

func (r *VentaRepo) list(query string, arg any) ([]*entity.Venta, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		v, err := scanVenta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
