package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chronos-sistema/chronos-capital/internal/application/dto"
	"github.com/chronos-sistema/chronos-capital/internal/application/tesoreria"
)

// TransferenciaHandler maneja las transferencias entre bancos.
type TransferenciaHandler struct {
	uc *tesoreria.TransferenciaUseCase
}

// NewTransferenciaHandler construye el handler.
func NewTransferenciaHandler(uc *tesoreria.TransferenciaUseCase) *TransferenciaHandler {
	return &TransferenciaHandler{uc: uc}
}

// Create godoc
// @Summary      Transferir capital entre dos bancos
// @Description  Atómica y con protección de sobregiro: el origen nunca queda negativo por una transferencia.
// @Tags         transferencias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferenciaRequest  true  "banco origen, banco destino, monto"
// @Success      200  {object}  dto.TransferenciaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transferencias [post]
func (h *TransferenciaHandler) Create(c *fiber.Ctx) error {
	var in dto.TransferenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Transferir(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
