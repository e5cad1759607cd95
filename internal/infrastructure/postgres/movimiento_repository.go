package postgres

import (
	"context"
	"fmt"

	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
	"github.com/chronos-sistema/chronos-capital/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository (usable con pool o tx).
// La bitácora es append-only: no hay UPDATE ni DELETE sobre movimientos.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento de la bitácora.
func (r *MovimientoRepo) Create(mov *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, banco_id, tipo, monto, fecha, concepto, referencia,
			banco_origen_id, banco_destino_id, cliente_id, distribuidor_id,
			venta_id, orden_compra_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.BancoID, mov.Tipo, mov.Monto, mov.Fecha, mov.Concepto, mov.Referencia,
		nullIfEmpty(string(mov.BancoOrigenID)), nullIfEmpty(string(mov.BancoDestinoID)),
		nullIfEmpty(mov.ClienteID), nullIfEmpty(mov.DistribuidorID),
		nullIfEmpty(mov.VentaID), nullIfEmpty(mov.OrdenCompraID),
		mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListByBanco devuelve los movimientos recientes del banco, más nuevos primero.
func (r *MovimientoRepo) ListByBanco(bancoID entity.BancoID, limit int) ([]*entity.Movimiento, error) {
	query := `
		SELECT id, banco_id, tipo, monto, fecha, concepto, COALESCE(referencia, ''),
			COALESCE(banco_origen_id, ''), COALESCE(banco_destino_id, ''),
			COALESCE(cliente_id, ''), COALESCE(distribuidor_id, ''),
			COALESCE(venta_id, ''), COALESCE(orden_compra_id, ''), created_at
		FROM movimientos WHERE banco_id = $1
		ORDER BY fecha DESC, created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, bancoID, limit)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		err := rows.Scan(
			&m.ID, &m.BancoID, &m.Tipo, &m.Monto, &m.Fecha, &m.Concepto, &m.Referencia,
			&m.BancoOrigenID, &m.BancoDestinoID, &m.ClienteID, &m.DistribuidorID,
			&m.VentaID, &m.OrdenCompraID, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
