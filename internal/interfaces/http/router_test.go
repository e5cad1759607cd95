package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/chronos-sistema/chronos-capital/internal/application/compras"
	"github.com/chronos-sistema/chronos-capital/internal/application/dto"
	"github.com/chronos-sistema/chronos-capital/internal/application/tesoreria"
	"github.com/chronos-sistema/chronos-capital/internal/application/ventas"
	"github.com/chronos-sistema/chronos-capital/internal/domain"
	"github.com/chronos-sistema/chronos-capital/internal/domain/entity"
	"github.com/chronos-sistema/chronos-capital/internal/domain/repository"
	httpapi "github.com/chronos-sistema/chronos-capital/internal/interfaces/http"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// Fakes en memoria. Cada repositorio guarda copias para imitar el
// aislamiento de filas de la base de datos.

type bancoRepoFake struct {
	bancos map[entity.BancoID]*entity.Banco
}

func (f *bancoRepoFake) leer(id entity.BancoID) (*entity.Banco, error) {
	b, ok := f.bancos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copia := *b
	return &copia, nil
}

func (f *bancoRepoFake) GetByID(id entity.BancoID) (*entity.Banco, error)      { return f.leer(id) }
func (f *bancoRepoFake) GetForUpdate(id entity.BancoID) (*entity.Banco, error) { return f.leer(id) }

func (f *bancoRepoFake) List() ([]*entity.Banco, error) {
	var out []*entity.Banco
	for _, id := range entity.TodosLosBancos() {
		if b, ok := f.bancos[id]; ok {
			copia := *b
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *bancoRepoFake) Update(banco *entity.Banco) error {
	copia := *banco
	f.bancos[banco.ID] = &copia
	return nil
}

func (f *bancoRepoFake) Upsert(banco *entity.Banco) error { return f.Update(banco) }

type ventaRepoFake struct {
	ventas map[string]*entity.Venta
}

func (f *ventaRepoFake) Create(v *entity.Venta) error {
	copia := *v
	f.ventas[v.ID] = &copia
	return nil
}

func (f *ventaRepoFake) leer(id string) (*entity.Venta, error) {
	v, ok := f.ventas[id]
	if !ok {
		return nil, nil
	}
	copia := *v
	return &copia, nil
}

func (f *ventaRepoFake) GetByID(id string) (*entity.Venta, error)      { return f.leer(id) }
func (f *ventaRepoFake) GetForUpdate(id string) (*entity.Venta, error) { return f.leer(id) }

func (f *ventaRepoFake) Update(v *entity.Venta) error {
	copia := *v
	f.ventas[v.ID] = &copia
	return nil
}

func (f *ventaRepoFake) ListByCliente(clienteID string) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range f.ventas {
		if v.ClienteID == clienteID {
			copia := *v
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *ventaRepoFake) ListByOrdenCompra(ocID string) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range f.ventas {
		if v.OrdenCompraID == ocID {
			copia := *v
			out = append(out, &copia)
		}
	}
	return out, nil
}

type movimientoRepoFake struct {
	movs []*entity.Movimiento
}

func (f *movimientoRepoFake) Create(m *entity.Movimiento) error {
	copia := *m
	f.movs = append(f.movs, &copia)
	return nil
}

func (f *movimientoRepoFake) ListByBanco(bancoID entity.BancoID, limit int) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range f.movs {
		if m.BancoID == bancoID && len(out) < limit {
			copia := *m
			out = append(out, &copia)
		}
	}
	return out, nil
}

type ordenCompraRepoFake struct {
	ordenes map[string]*entity.OrdenCompra
}

func (f *ordenCompraRepoFake) Create(oc *entity.OrdenCompra) error {
	copia := *oc
	f.ordenes[oc.ID] = &copia
	return nil
}

func (f *ordenCompraRepoFake) leer(id string) (*entity.OrdenCompra, error) {
	oc, ok := f.ordenes[id]
	if !ok {
		return nil, nil
	}
	copia := *oc
	return &copia, nil
}

func (f *ordenCompraRepoFake) GetByID(id string) (*entity.OrdenCompra, error)      { return f.leer(id) }
func (f *ordenCompraRepoFake) GetForUpdate(id string) (*entity.OrdenCompra, error) { return f.leer(id) }

func (f *ordenCompraRepoFake) Update(oc *entity.OrdenCompra) error {
	copia := *oc
	f.ordenes[oc.ID] = &copia
	return nil
}

func (f *ordenCompraRepoFake) ListByDistribuidor(distID string) ([]*entity.OrdenCompra, error) {
	var out []*entity.OrdenCompra
	for _, oc := range f.ordenes {
		if oc.DistribuidorID == distID {
			copia := *oc
			out = append(out, &copia)
		}
	}
	return out, nil
}

type clienteRepoFake struct {
	clientes map[string]*entity.Cliente
}

func (f *clienteRepoFake) Create(c *entity.Cliente) error {
	copia := *c
	f.clientes[c.ID] = &copia
	return nil
}

func (f *clienteRepoFake) GetByID(id string) (*entity.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (f *clienteRepoFake) Update(c *entity.Cliente) error { return f.Create(c) }

type distribuidorRepoFake struct {
	dists map[string]*entity.Distribuidor
}

func (f *distribuidorRepoFake) Create(dist *entity.Distribuidor) error {
	copia := *dist
	f.dists[dist.ID] = &copia
	return nil
}

func (f *distribuidorRepoFake) GetByID(id string) (*entity.Distribuidor, error) {
	dist, ok := f.dists[id]
	if !ok {
		return nil, nil
	}
	copia := *dist
	return &copia, nil
}

func (f *distribuidorRepoFake) Update(dist *entity.Distribuidor) error { return f.Create(dist) }

// runnerFake cumple los tres runners pasando los mismos fakes; sin
// transacción real no hay rollback, suficiente para probar el enrutado.
type runnerFake struct {
	bancos   *bancoRepoFake
	ventas   *ventaRepoFake
	movs     *movimientoRepoFake
	ordenes  *ordenCompraRepoFake
	clientes *clienteRepoFake
	dists    *distribuidorRepoFake
}

func (f *runnerFake) Run(_ context.Context, fn func(
	repository.BancoRepository,
	repository.MovimientoRepository,
) error) error {
	return fn(f.bancos, f.movs)
}

func (f *runnerFake) RunVenta(_ context.Context, fn func(
	repository.BancoRepository,
	repository.VentaRepository,
	repository.MovimientoRepository,
	repository.OrdenCompraRepository,
	repository.ClienteRepository,
) error) error {
	return fn(f.bancos, f.ventas, f.movs, f.ordenes, f.clientes)
}

func (f *runnerFake) RunCompra(_ context.Context, fn func(
	repository.BancoRepository,
	repository.OrdenCompraRepository,
	repository.MovimientoRepository,
	repository.DistribuidorRepository,
) error) error {
	return fn(f.bancos, f.ordenes, f.movs, f.dists)
}

type entornoHTTP struct {
	app    *fiber.App
	bancos *bancoRepoFake
	movs   *movimientoRepoFake
}

func appDePrueba(t *testing.T) *entornoHTTP {
	t.Helper()

	bancos := &bancoRepoFake{bancos: map[entity.BancoID]*entity.Banco{}}
	for _, id := range entity.TodosLosBancos() {
		bancos.bancos[id] = &entity.Banco{ID: id, Nombre: string(id), Tipo: entity.BancoTipoOperativo, Activo: true}
	}
	// Azteca arranca con capital para las transferencias y gastos.
	bancos.bancos[entity.BancoAzteca].HistoricoIngresos = d("100000")

	ventasRepo := &ventaRepoFake{ventas: map[string]*entity.Venta{}}
	movs := &movimientoRepoFake{}
	ordenes := &ordenCompraRepoFake{ordenes: map[string]*entity.OrdenCompra{}}
	clientes := &clienteRepoFake{clientes: map[string]*entity.Cliente{}}
	clientes.clientes["cliente-1"] = &entity.Cliente{ID: "cliente-1", Nombre: "Comercial Andina", Estado: "activo"}
	dists := &distribuidorRepoFake{dists: map[string]*entity.Distribuidor{}}

	runner := &runnerFake{bancos: bancos, ventas: ventasRepo, movs: movs, ordenes: ordenes, clientes: clientes, dists: dists}

	deps := httpapi.RouterDeps{
		BancoQueryUC:    tesoreria.NewBancoQueryUseCase(bancos, movs),
		GastoUC:         tesoreria.NewGastoUseCase(runner),
		TransferenciaUC: tesoreria.NewTransferenciaUseCase(runner),
		CreateVentaUC:   ventas.NewCreateVentaUseCase(runner, clientes),
		AbonoUC:         ventas.NewAbonoUseCase(runner),
		VentaQueryUC:    ventas.NewVentaQueryUseCase(ventasRepo, clientes),
		ClienteUC:       ventas.NewClienteUseCase(clientes),
		OrdenCompraUC:   compras.NewOrdenCompraUseCase(runner, dists, ordenes),
	}

	app := fiber.New()
	httpapi.Router(app, deps)
	return &entornoHTTP{app: app, bancos: bancos, movs: movs}
}

func hacerPeticion(t *testing.T, app *fiber.App, metodo, ruta string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(metodo, ruta, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodificar(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestListarBancosDevuelveLosSiete(t *testing.T) {
	env := appDePrueba(t)

	resp := hacerPeticion(t, env.app, http.MethodGet, "/api/bancos", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var lista []dto.BancoResponse
	decodificar(t, resp, &lista)
	require.Len(t, lista, 7)
	require.Equal(t, entity.BancoAzteca, lista[0].ID)
	require.True(t, lista[0].CapitalActual.Equal(d("100000")))
}

func TestDistribucionPuraNoAsientaNada(t *testing.T) {
	env := appDePrueba(t)

	resp := hacerPeticion(t, env.app, http.MethodPost, "/api/ventas/distribucion", dto.ComputeDistribucionRequest{
		Cantidad:           d("10"),
		PrecioVentaUnidad:  d("10000"),
		PrecioCompraUnidad: d("6300"),
		PrecioFleteUnidad:  d("500"),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dist dto.DistribucionDTO
	decodificar(t, resp, &dist)
	require.True(t, dist.BovedaMonte.Equal(d("63000")))
	require.True(t, dist.Fletes.Equal(d("5000")))
	require.True(t, dist.Utilidades.Equal(d("32000")))
	require.True(t, dist.Total.Equal(d("100000")))

	require.Empty(t, env.movs.movs)
	require.True(t, env.bancos.bancos[entity.BancoBovedaMonte].HistoricoIngresos.IsZero())
}

func TestCrearVentaYAbonarPorHTTP(t *testing.T) {
	env := appDePrueba(t)

	resp := hacerPeticion(t, env.app, http.MethodPost, "/api/ventas", dto.CreateVentaRequest{
		ClienteID:          "cliente-1",
		Cantidad:           d("10"),
		PrecioVentaUnidad:  d("10000"),
		PrecioCompraUnidad: d("6300"),
		PrecioFleteUnidad:  d("500"),
		MontoPagado:        d("52500"),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var venta dto.VentaResponse
	decodificar(t, resp, &venta)
	require.Equal(t, entity.EstadoParcial, venta.EstadoPago)
	require.True(t, venta.PrecioTotalVenta.Equal(d("105000")))
	require.True(t, venta.MontoRestante.Equal(d("52500")))

	// El histórico registra el 100%; el capital solo la mitad cobrada.
	monte := env.bancos.bancos[entity.BancoBovedaMonte]
	require.True(t, monte.HistoricoIngresos.Equal(d("63000")))
	require.True(t, monte.CapitalActual().Equal(d("31500")))

	resp = hacerPeticion(t, env.app, http.MethodPost, "/api/ventas/"+venta.ID+"/abonos", dto.AbonoRequest{
		Monto: d("26250"),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	decodificar(t, resp, &venta)
	require.True(t, venta.MontoPagado.Equal(d("78750")))
	require.Equal(t, entity.EstadoParcial, venta.EstadoPago)

	monte = env.bancos.bancos[entity.BancoBovedaMonte]
	require.True(t, monte.HistoricoIngresos.Equal(d("63000")))
	require.True(t, monte.CapitalActual().Equal(d("47250")))
}

func TestTransferenciaPorHTTP(t *testing.T) {
	env := appDePrueba(t)

	resp := hacerPeticion(t, env.app, http.MethodPost, "/api/transferencias", dto.TransferenciaRequest{
		BancoOrigenID:  entity.BancoAzteca,
		BancoDestinoID: entity.BancoLeftie,
		Monto:          d("40000"),
		Concepto:       "Fondeo leftie",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.TransferenciaResponse
	decodificar(t, resp, &out)
	require.True(t, out.Origen.CapitalActual.Equal(d("60000")))
	require.True(t, out.Destino.CapitalActual.Equal(d("40000")))
}

func TestTransferenciaSinCapitalDevuelve409(t *testing.T) {
	env := appDePrueba(t)

	resp := hacerPeticion(t, env.app, http.MethodPost, "/api/transferencias", dto.TransferenciaRequest{
		BancoOrigenID:  entity.BancoLeftie,
		BancoDestinoID: entity.BancoAzteca,
		Monto:          d("5000"),
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodificar(t, resp, &errResp)
	require.Equal(t, "INSUFFICIENT_CAPITAL", errResp.Code)
}

func TestIngresoManualRechazadoEnBancoGYA(t *testing.T) {
	env := appDePrueba(t)

	resp := hacerPeticion(t, env.app, http.MethodPost, "/api/bancos/utilidades/ingresos", dto.RegistrarIngresoRequest{
		Monto:    d("1000"),
		Concepto: "Ajuste manual",
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodificar(t, resp, &errResp)
	require.Equal(t, "MANUAL_INCOME_FORBIDDEN", errResp.Code)
}

func TestVentaInexistenteDevuelve404(t *testing.T) {
	env := appDePrueba(t)

	resp := hacerPeticion(t, env.app, http.MethodGet, "/api/ventas/no-existe", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodificar(t, resp, &errResp)
	require.Equal(t, "NOT_FOUND", errResp.Code)
}

func TestCuerpoInvalidoDevuelve400(t *testing.T) {
	env := appDePrueba(t)

	req := httptest.NewRequest(http.MethodPost, "/api/transferencias", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFlujoOrdenDeCompraPorHTTP(t *testing.T) {
	env := appDePrueba(t)

	resp := hacerPeticion(t, env.app, http.MethodPost, "/api/distribuidores", dto.CreateDistribuidorRequest{
		Nombre: "Distribuidora del Sur",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var dist dto.DistribuidorResponse
	decodificar(t, resp, &dist)

	resp = hacerPeticion(t, env.app, http.MethodPost, "/api/ordenes-compra", dto.CreateOrdenCompraRequest{
		DistribuidorID: dist.ID,
		Cantidad:       d("10"),
		PrecioUnitario: d("6300"),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var oc dto.OrdenCompraResponse
	decodificar(t, resp, &oc)
	require.True(t, oc.Total.Equal(d("63000")))
	require.Equal(t, entity.EstadoPendiente, oc.Estado)

	resp = hacerPeticion(t, env.app, http.MethodPost, "/api/ordenes-compra/"+oc.ID+"/pagos", dto.PagoDistribuidorRequest{
		BancoOrigenID: entity.BancoAzteca,
		Monto:         d("30000"),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	decodificar(t, resp, &oc)
	require.True(t, oc.MontoPagado.Equal(d("30000")))
	require.Equal(t, entity.EstadoParcial, oc.Estado)
	require.True(t, env.bancos.bancos[entity.BancoAzteca].CapitalActual().Equal(d("70000")))
}
