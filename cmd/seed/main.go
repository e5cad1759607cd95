// seed siembra los siete bancos fijos del sistema con sus saldos históricos
// de arranque. Idempotente: los bancos existentes conservan sus acumulados.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
	"github.com/chronos-sistema/chronos-capital/internal/infrastructure/postgres"
	"github.com/chronos-sistema/chronos-capital/pkg/config"
	"github.com/chronos-sistema/chronos-capital/pkg/logger"
)

type bancoSeed struct {
	id       entity.BancoID
	nombre   string
	tipo     string
	ingresos int64
	gastos   int64
}

// Saldos de apertura del libro mayor. El capital queda derivado:
// ingresos - gastos (sin pendiente de cobro al arranque).
var seeds = []bancoSeed{
	{entity.BancoBovedaMonte, "Bóveda Monte", entity.BancoTipoOperativo, 2500000, 2100000},
	{entity.BancoBovedaUSA, "Bóveda USA", entity.BancoTipoAhorro, 800000, 600000},
	{entity.BancoProfit, "Profit", entity.BancoTipoInversion, 500000, 380000},
	{entity.BancoLeftie, "Leftie", entity.BancoTipoOperativo, 300000, 220000},
	{entity.BancoAzteca, "Azteca", entity.BancoTipoOperativo, 1200000, 1050000},
	{entity.BancoFleteSur, "Flete Sur", entity.BancoTipoOperativo, 180000, 180000},
	{entity.BancoUtilidades, "Utilidades", entity.BancoTipoOperativo, 450000, 450000},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Servicio: cfg.App.Name})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	bancoRepo := postgres.NewBancoRepository(pool)
	now := time.Now()

	for _, s := range seeds {
		banco := &entity.Banco{
			ID:                s.id,
			Nombre:            s.nombre,
			Tipo:              s.tipo,
			HistoricoIngresos: decimal.NewFromInt(s.ingresos),
			HistoricoGastos:   decimal.NewFromInt(s.gastos),
			Activo:            true,
			UpdatedAt:         now,
		}
		if err := bancoRepo.Upsert(banco); err != nil {
			log.Fatal().Err(err).Str("banco", string(s.id)).Msg("seed banco")
		}
		log.Info().
			Str("banco", string(s.id)).
			Str("capital", banco.CapitalActual().String()).
			Msg("banco sembrado")
	}

	log.Info().Int("bancos", len(seeds)).Msg("seed completado")
}
