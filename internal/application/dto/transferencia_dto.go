package dto

import (
	"github.com/shopspring/decimal"

	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
)

// TransferenciaRequest body para POST /api/transferencias.
type TransferenciaRequest struct {
	BancoOrigenID  entity.BancoID  `json:"banco_origen_id"`
	BancoDestinoID entity.BancoID  `json:"banco_destino_id"`
	Monto          decimal.Decimal `json:"monto"`
	Concepto       string          `json:"concepto"`
}

// TransferenciaResponse estado final de ambos bancos tras la transferencia.
type TransferenciaResponse struct {
	Origen  BancoResponse `json:"origen"`
	Destino BancoResponse `json:"destino"`
}
