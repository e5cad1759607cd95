package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chronos-sistema/chronos-capital/internal/application/compras"
	"github.com/chronos-sistema/chronos-capital/internal/application/tesoreria"
	"github.com/chronos-sistema/chronos-capital/internal/application/ventas"
	"github.com/chronos-sistema/chronos-capital/internal/domain/repository"
)

var _ tesoreria.TxRunner = (*TxRunner)(nil)
var _ ventas.VentasTxRunner = (*TxRunner)(nil)
var _ compras.ComprasTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Cada Run
// ata repositorios frescos a la tx: los SELECT FOR UPDATE de los repos ven y
// bloquean dentro de esa transacción, y todo se confirma o revierte junto.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos de tesorería (bancos y bitácora).
func (r *TxRunner) Run(ctx context.Context, fn func(
	bancoRepo repository.BancoRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewBancoRepository(tx), NewMovimientoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunVenta inicia una transacción con los repos del asiento de ventas y abonos.
func (r *TxRunner) RunVenta(ctx context.Context, fn func(
	bancoRepo repository.BancoRepository,
	ventaRepo repository.VentaRepository,
	movRepo repository.MovimientoRepository,
	ocRepo repository.OrdenCompraRepository,
	clienteRepo repository.ClienteRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewBancoRepository(tx),
		NewVentaRepository(tx),
		NewMovimientoRepository(tx),
		NewOrdenCompraRepository(tx),
		NewClienteRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCompra inicia una transacción con los repos de órdenes de compra y pagos.
func (r *TxRunner) RunCompra(ctx context.Context, fn func(
	bancoRepo repository.BancoRepository,
	ocRepo repository.OrdenCompraRepository,
	movRepo repository.MovimientoRepository,
	distRepo repository.DistribuidorRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewBancoRepository(tx),
		NewOrdenCompraRepository(tx),
		NewMovimientoRepository(tx),
		NewDistribuidorRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
