package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chronos-sistema/chronos-capital/internal/application/dto"
	"github.com/chronos-sistema/chronos-capital/internal/application/ventas"
	"github.com/chronos-sistema/chronos-capital/internal/domain/ledger"
)

// VentaHandler maneja las peticiones HTTP de ventas, abonos y clientes.
type VentaHandler struct {
	createUC  *ventas.CreateVentaUseCase
	abonoUC   *ventas.AbonoUseCase
	queryUC   *ventas.VentaQueryUseCase
	clienteUC *ventas.ClienteUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(
	createUC *ventas.CreateVentaUseCase,
	abonoUC *ventas.AbonoUseCase,
	queryUC *ventas.VentaQueryUseCase,
	clienteUC *ventas.ClienteUseCase,
) *VentaHandler {
	return &VentaHandler{createUC: createUC, abonoUC: abonoUC, queryUC: queryUC, clienteUC: clienteUC}
}

// ComputeDistribucion godoc
// @Summary      Calcular la distribución GYA de una venta hipotética
// @Description  Cálculo puro: no asienta nada en los bancos. Útil para previsualizar el reparto antes de confirmar la venta.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ComputeDistribucionRequest  true  "cantidad y precios unitarios"
// @Success      200  {object}  dto.DistribucionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas/distribucion [post]
func (h *VentaHandler) ComputeDistribucion(c *fiber.Ctx) error {
	var in dto.ComputeDistribucionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	dist, err := ledger.CalcularDistribucion(in.PrecioVentaUnidad, in.PrecioCompraUnidad, in.PrecioFleteUnidad, in.Cantidad)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DistribucionFromEntity(dist))
}

// Create godoc
// @Summary      Crear una venta y asentar su distribución
// @Description  El 100% de la distribución entra al histórico de los tres bancos destino; el capital disponible refleja solo la proporción cobrada.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVentaRequest  true  "cliente, cantidad, precios, monto pagado"
// @Success      201  {object}  dto.VentaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	venta, err := h.createUC.CreateVenta(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(venta)
}

// ApplyAbono godoc
// @Summary      Aplicar un abono a una venta
// @Description  Libera capital proporcional hacia los tres bancos destino sin tocar el histórico.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID de la venta"
// @Param        body  body  dto.AbonoRequest true  "monto, concepto"
// @Success      200  {object}  dto.VentaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/abonos [post]
func (h *VentaHandler) ApplyAbono(c *fiber.Ctx) error {
	var in dto.AbonoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	venta, err := h.abonoUC.ApplyAbono(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(venta)
}

// GetByID godoc
// @Summary      Consultar una venta
// @Tags         ventas
// @Produce      json
// @Param        id   path      string  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	venta, err := h.queryUC.GetVenta(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(venta)
}

// CreateCliente godoc
// @Summary      Dar de alta un cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClienteRequest  true  "nombre"
// @Success      201  {object}  dto.ClienteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *VentaHandler) CreateCliente(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	cliente, err := h.clienteUC.CreateCliente(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// GetCliente godoc
// @Summary      Consultar un cliente con sus agregados
// @Tags         clientes
// @Produce      json
// @Param        id   path      string  true  "ID del cliente"
// @Success      200  {object}  dto.ClienteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [get]
func (h *VentaHandler) GetCliente(c *fiber.Ctx) error {
	cliente, err := h.queryUC.GetCliente(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cliente)
}
