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

var _ repository.BancoRepository = (*BancoRepo)(nil)

const bancoColumns = `id, nombre, tipo, historico_ingresos, historico_gastos,
		historico_transferencias, pendiente_cobro, activo, updated_at`

// BancoRepo implementación de BancoRepository sobre PostgreSQL (usable con pool o tx).
// Los siete bancos se siembran una vez; en runtime solo se actualizan.
type BancoRepo struct {
	q Querier
}

// NewBancoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBancoRepository(q Querier) *BancoRepo {
	return &BancoRepo{q: q}
}

func scanBanco(row pgx.Row) (*entity.Banco, error) {
	var b entity.Banco
	err := row.Scan(
		&b.ID, &b.Nombre, &b.Tipo, &b.HistoricoIngresos, &b.HistoricoGastos,
		&b.HistoricoTransferencias, &b.PendienteCobro, &b.Activo, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByID obtiene un banco por ID. Un banco del conjunto fijo que no existe
// en la tabla es un error de datos, no un "no encontrado" silencioso.
func (r *BancoRepo) GetByID(id entity.BancoID) (*entity.Banco, error) {
	query := `SELECT ` + bancoColumns + ` FROM bancos WHERE id = $1`
	b, err := scanBanco(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get banco: %w", err)
	}
	return b, nil
}

// GetForUpdate obtiene el banco y bloquea su fila (SELECT FOR UPDATE).
// Toda operación multi-banco debe pedir los bloqueos en orden lexicográfico de ID.
func (r *BancoRepo) GetForUpdate(id entity.BancoID) (*entity.Banco, error) {
	query := `SELECT ` + bancoColumns + ` FROM bancos WHERE id = $1 FOR UPDATE`
	b, err := scanBanco(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get banco for update: %w", err)
	}
	return b, nil
}

// List devuelve los siete bancos en orden lexicográfico de ID.
func (r *BancoRepo) List() ([]*entity.Banco, error) {
	query := `SELECT ` + bancoColumns + ` FROM bancos ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bancos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Banco
	for rows.Next() {
		b, err := scanBanco(rows)
		if err != nil {
			return nil, fmt.Errorf("scan banco: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Update persiste los acumulados del banco.
func (r *BancoRepo) Update(banco *entity.Banco) error {
	query := `
		UPDATE bancos SET historico_ingresos = $2, historico_gastos = $3,
			historico_transferencias = $4, pendiente_cobro = $5, activo = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		banco.ID, banco.HistoricoIngresos, banco.HistoricoGastos,
		banco.HistoricoTransferencias, banco.PendienteCobro, banco.Activo, banco.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update banco: %w", err)
	}
	return nil
}

// Upsert existe para el seed inicial: los bancos nunca se crean en runtime.
// Si el banco ya existe no pisa sus acumulados, solo nombre y tipo.
func (r *BancoRepo) Upsert(banco *entity.Banco) error {
	query := `
		INSERT INTO bancos (id, nombre, tipo, historico_ingresos, historico_gastos,
			historico_transferencias, pendiente_cobro, activo, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (id)
		DO UPDATE SET nombre = EXCLUDED.nombre, tipo = EXCLUDED.tipo, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		banco.ID, banco.Nombre, banco.Tipo, banco.HistoricoIngresos, banco.HistoricoGastos,
		banco.HistoricoTransferencias, banco.PendienteCobro, banco.Activo,
	)
	if err != nil {
		return fmt.Errorf("upsert banco: %w", err)
	}
	return nil
}
