package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chronos-sistema/chronos-capital/internal/application/dto"
	"github.com/chronos-sistema/chronos-capital/internal/application/tesoreria"
	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
)

// BancoHandler maneja las peticiones HTTP sobre los siete bancos.
type BancoHandler struct {
	queryUC *tesoreria.BancoQueryUseCase
	gastoUC *tesoreria.GastoUseCase
}

// NewBancoHandler construye el handler.
func NewBancoHandler(queryUC *tesoreria.BancoQueryUseCase, gastoUC *tesoreria.GastoUseCase) *BancoHandler {
	return &BancoHandler{queryUC: queryUC, gastoUC: gastoUC}
}

// List godoc
// @Summary      Listar los siete bancos con capital derivado
// @Tags         bancos
// @Produce      json
// @Success      200  {array}   dto.BancoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/bancos [get]
func (h *BancoHandler) List(c *fiber.Ctx) error {
	bancos, err := h.queryUC.ListBancos(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bancos)
}

// GetByID godoc
// @Summary      Consultar un banco
// @Tags         bancos
// @Produce      json
// @Param        id   path      string  true  "ID del banco (boveda_monte, azteca, ...)"
// @Success      200  {object}  dto.BancoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bancos/{id} [get]
func (h *BancoHandler) GetByID(c *fiber.Ctx) error {
	banco, err := h.queryUC.GetBanco(c.Context(), entity.BancoID(c.Params("id")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(banco)
}

// ListMovimientos godoc
// @Summary      Bitácora reciente del banco
// @Tags         bancos
// @Produce      json
// @Param        id     path   string  true   "ID del banco"
// @Param        limit  query  int     false  "Máximo de movimientos (default 100, tope 500)"
// @Success      200  {array}   dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bancos/{id}/movimientos [get]
func (h *BancoHandler) ListMovimientos(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	movs, err := h.queryUC.ListMovimientos(c.Context(), entity.BancoID(c.Params("id")), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movs)
}

// RegistrarGasto godoc
// @Summary      Registrar un gasto del banco
// @Description  Los gastos no tienen protección de sobregiro: el capital puede quedar negativo.
// @Tags         bancos
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del banco"
// @Param        body  body  dto.RegistrarGastoRequest  true  "monto, concepto"
// @Success      200  {object}  dto.BancoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bancos/{id}/gastos [post]
func (h *BancoHandler) RegistrarGasto(c *fiber.Ctx) error {
	var in dto.RegistrarGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	banco, err := h.gastoUC.RegistrarGasto(c.Context(), entity.BancoID(c.Params("id")), in.Monto, in.Concepto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(banco)
}

// RegistrarIngreso godoc
// @Summary      Registrar un ingreso manual
// @Description  Solo los bancos operativos aceptan ingresos manuales; los tres bancos de distribución los rechazan.
// @Tags         bancos
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del banco"
// @Param        body  body  dto.RegistrarIngresoRequest  true  "monto, concepto"
// @Success      200  {object}  dto.BancoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bancos/{id}/ingresos [post]
func (h *BancoHandler) RegistrarIngreso(c *fiber.Ctx) error {
	var in dto.RegistrarIngresoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	banco, err := h.gastoUC.RegistrarIngreso(c.Context(), entity.BancoID(c.Params("id")), in.Monto, in.Concepto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(banco)
}
