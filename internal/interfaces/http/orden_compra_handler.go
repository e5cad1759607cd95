package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chronos-sistema/chronos-capital/internal/application/compras"
	"github.com/chronos-sistema/chronos-capital/internal/application/dto"
)

// OrdenCompraHandler maneja órdenes de compra, pagos a distribuidor y distribuidores.
type OrdenCompraHandler struct {
	uc *compras.OrdenCompraUseCase
}

// NewOrdenCompraHandler construye el handler.
func NewOrdenCompraHandler(uc *compras.OrdenCompraUseCase) *OrdenCompraHandler {
	return &OrdenCompraHandler{uc: uc}
}

// Create godoc
// @Summary      Crear una orden de compra a distribuidor
// @Description  El stock inicial es la cantidad comprada. Si hay pago inicial se registra como gasto del banco origen en la misma transacción.
// @Tags         ordenes-compra
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrdenCompraRequest  true  "distribuidor, cantidad, precio unitario, pago inicial opcional"
// @Success      201  {object}  dto.OrdenCompraResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra [post]
func (h *OrdenCompraHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrdenCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	oc, err := h.uc.CreateOrdenCompra(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(oc)
}

// PagarDistribuidor godoc
// @Summary      Pagar deuda de una orden al distribuidor
// @Description  El pago sale como gasto del banco elegido (sin protección de sobregiro) y se recorta a la deuda restante.
// @Tags         ordenes-compra
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la orden de compra"
// @Param        body  body  dto.PagoDistribuidorRequest true  "banco origen, monto, concepto"
// @Success      200  {object}  dto.OrdenCompraResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra/{id}/pagos [post]
func (h *OrdenCompraHandler) PagarDistribuidor(c *fiber.Ctx) error {
	var in dto.PagoDistribuidorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	oc, err := h.uc.PagarDistribuidor(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(oc)
}

// GetByID godoc
// @Summary      Consultar una orden de compra
// @Tags         ordenes-compra
// @Produce      json
// @Param        id   path      string  true  "ID de la orden de compra"
// @Success      200  {object}  dto.OrdenCompraResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra/{id} [get]
func (h *OrdenCompraHandler) GetByID(c *fiber.Ctx) error {
	oc, err := h.uc.GetOrdenCompra(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(oc)
}

// CreateDistribuidor godoc
// @Summary      Dar de alta un distribuidor
// @Tags         distribuidores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDistribuidorRequest  true  "nombre"
// @Success      201  {object}  dto.DistribuidorResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/distribuidores [post]
func (h *OrdenCompraHandler) CreateDistribuidor(c *fiber.Ctx) error {
	var in dto.CreateDistribuidorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	dist, err := h.uc.CreateDistribuidor(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dist)
}

// GetDistribuidor godoc
// @Summary      Consultar un distribuidor con sus agregados
// @Tags         distribuidores
// @Produce      json
// @Param        id   path      string  true  "ID del distribuidor"
// @Success      200  {object}  dto.DistribuidorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distribuidores/{id} [get]
func (h *OrdenCompraHandler) GetDistribuidor(c *fiber.Ctx) error {
	dist, err := h.uc.GetDistribuidor(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dist)
}
