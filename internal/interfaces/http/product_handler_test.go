package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-api/pkg/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memRepo repositorio en memoria para ejercitar los handlers de punta a punta
// sin PostgreSQL.
type memRepo struct {
	rows  map[int64]entity.Product
	order []int64
}

var _ repository.ProductRepository = (*memRepo)(nil)

func newMemRepo() *memRepo { return &memRepo{rows: make(map[int64]entity.Product)} }

func (m *memRepo) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if _, ok := m.rows[p.ID]; ok {
		return nil, domain.ErrDuplicate
	}
	m.rows[p.ID] = *p
	m.order = append(m.order, p.ID)
	row := m.rows[p.ID]
	return &row, nil
}

func (m *memRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *memRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := m.rows[id]
	return ok, nil
}

func (m *memRepo) List(ctx context.Context, f catalog.ListFilter) ([]*entity.Product, int, error) {
	var matched []*entity.Product
	for _, id := range m.order {
		row := m.rows[id]
		if f.FilterBy == catalog.FilterActive && row.Status != entity.StatusActive {
			continue
		}
		if f.FilterBy == catalog.FilterInactive && row.Status != entity.StatusInactive {
			continue
		}
		matched = append(matched, &row)
	}
	total := len(matched)
	offset := f.Page * f.PerPage
	if offset >= total {
		return nil, total, nil
	}
	end := offset + f.PerPage
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (m *memRepo) Update(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if _, ok := m.rows[p.ID]; !ok {
		return nil, nil
	}
	m.rows[p.ID] = *p
	row := m.rows[p.ID]
	return &row, nil
}

func (m *memRepo) SoftDelete(ctx context.Context, id int64, updatedAt int64) (int64, error) {
	row, ok := m.rows[id]
	if !ok {
		return 0, nil
	}
	row.Status = entity.StatusInactive
	row.UpdatedAt = updatedAt
	m.rows[id] = row
	return 1, nil
}

// buildTestApp construye una app Fiber con el router real sobre el repo en memoria.
func buildTestApp() *fiber.App {
	uc := usecase.NewProductUseCase(
		newMemRepo(),
		catalog.NewIDGenerator(catalog.DefaultIDConfig()),
		catalog.DefaultListConfig(),
		money.NewFormatter("en-US", "$"),
	)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{ProductUC: uc})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func crearWidget(t *testing.T, app *fiber.App) dto.ProductResponse {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/products/", dto.CreateProductRequest{
		Name:       "Widget",
		Category:   1,
		PriceCents: 1299,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decode[dto.ProductResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas de producto
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateEndpoint(t *testing.T) {
	app := buildTestApp()
	out := crearWidget(t, app)

	assert.GreaterOrEqual(t, out.ID, int64(100_000_000))
	assert.Equal(t, 1, out.Status)
	assert.Equal(t, "$12.99", out.PriceFormatted)
}

func TestCreateEndpoint_ValidacionDevuelve400(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, fiber.MethodPost, "/api/products/", dto.CreateProductRequest{
		Name:       "",
		Category:   1,
		PriceCents: 1299,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.NotEmpty(t, body.Message, "todo error lleva mensaje legible")
}

func TestGetByIDEndpoint(t *testing.T) {
	app := buildTestApp()
	creado := crearWidget(t, app)

	resp := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/products/%d", creado.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, creado.ID, out.ID)
}

func TestGetByIDEndpoint_NoEncontrado(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, fiber.MethodGet, "/api/products/123456789", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestGetByIDEndpoint_IDNoNumerico(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, fiber.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListEndpoint_GatingYPaginacion(t *testing.T) {
	app := buildTestApp()
	creado := crearWidget(t, app)
	crearWidget(t, app)

	// Desactivar el primero vía update.
	inactivo := 0
	resp := doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/products/%d", creado.ID), dto.UpdateProductRequest{
		Name:       "Widget",
		Category:   1,
		PriceCents: 1299,
		Status:     &inactivo,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/products/?filter_by=active", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	actives := decode[dto.ProductListResponse](t, resp)
	assert.Equal(t, 1, actives.Total)
	assert.Equal(t, 25, actives.PerPage, "per_page por defecto")

	resp = doJSON(t, app, fiber.MethodGet, "/api/products/?filter_by=inactive", nil)
	inactives := decode[dto.ProductListResponse](t, resp)
	require.Len(t, inactives.Products, 1)
	assert.Equal(t, creado.ID, inactives.Products[0].ID)
}

func TestUpdateEndpoint_StatusOmitidoDevuelve400(t *testing.T) {
	app := buildTestApp()
	creado := crearWidget(t, app)

	// Body sin status: la ausencia no puede interpretarse como 0 (inactivo).
	resp := doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/products/%d", creado.ID), map[string]any{
		"name":        "Widget v2",
		"category":    1,
		"price_cents": 1299,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", decode[dto.ErrorResponse](t, resp).Code)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/products/%d", creado.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[dto.ProductResponse](t, resp).Status, "el producto sigue activo")
}

func TestListEndpoint_SortColumnProhibida(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, fiber.MethodGet, "/api/products/?sort_column=price", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", decode[dto.ErrorResponse](t, resp).Code)
}

func TestDeleteEndpoint_EsLogico(t *testing.T) {
	app := buildTestApp()
	creado := crearWidget(t, app)

	resp := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/products/%d", creado.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.DeleteProductResponse](t, resp)
	assert.True(t, out.Success)
	assert.Equal(t, creado.ID, out.ID)

	// La fila sigue disponible en el detalle, inactiva.
	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/products/%d", creado.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decode[dto.ProductResponse](t, resp).Status)
}

func TestDeleteEndpoint_NoEncontrado(t *testing.T) {
	app := buildTestApp()
	resp := doJSON(t, app, fiber.MethodDelete, "/api/products/123456789", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
