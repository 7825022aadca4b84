package catalog

import (
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CreateInput entrada validada para crear un producto. El ID y el estado no
// se aceptan del cliente: el sistema asigna el ID y fuerza estado activo.
type CreateInput struct {
	Name        string
	Category    entity.Category
	PriceCents  int64
	Description *string
}

// UpdateInput entrada validada para actualizar un producto. Todo campo es
// mutable salvo ID y CreatedAt.
type UpdateInput struct {
	ID          int64
	Name        string
	Category    entity.Category
	PriceCents  int64
	Description *string
	Status      entity.Status
}

// StatusFilter filtro de visibilidad del listado (enum cerrado: es la única
// fuente permitida de contenido dinámico en el WHERE).
type StatusFilter string

const (
	FilterActive   StatusFilter = "active"
	FilterInactive StatusFilter = "inactive"
	FilterAll      StatusFilter = "all"
)

// Órdenes de sort permitidos.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// allowedSortColumns columnas ordenables (allow-list). Nótese que price_cents
// no es ordenable: cualquier otro valor se rechaza, nunca se interpola.
var allowedSortColumns = map[string]bool{
	"name":       true,
	"category":   true,
	"status":     true,
	"created_at": true,
	"updated_at": true,
}

// ListFilter filtro de listado ya normalizado.
type ListFilter struct {
	PerPage    int
	Page       int
	FilterBy   StatusFilter
	SortColumn string
	SortOrder  string
}

// ListConfig defaults y límites de paginación (inyectados desde config).
type ListConfig struct {
	DefaultPerPage int
	MaxPerPage     int
}

// DefaultListConfig valores por defecto del catálogo.
func DefaultListConfig() ListConfig {
	return ListConfig{DefaultPerPage: 25, MaxPerPage: 100}
}

// ValidateCreateInput aplica las reglas del esquema a la entrada de creación.
func ValidateCreateInput(in CreateInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Validationf("name es requerido")
	}
	if !in.Category.Valid() {
		return domain.Validationf("category %d fuera del enum {1,2,3}", in.Category)
	}
	if in.PriceCents <= 0 {
		return domain.Validationf("price_cents debe ser un entero positivo, recibido %d", in.PriceCents)
	}
	return nil
}

// ValidateUpdateInput aplica las reglas de creación más ID y estado.
func ValidateUpdateInput(in UpdateInput) error {
	if in.ID <= 0 {
		return domain.Validationf("id debe ser un entero positivo")
	}
	if err := ValidateCreateInput(CreateInput{
		Name:        in.Name,
		Category:    in.Category,
		PriceCents:  in.PriceCents,
		Description: in.Description,
	}); err != nil {
		return err
	}
	if !in.Status.Valid() {
		return domain.Validationf("status %d fuera del enum {0,1}", in.Status)
	}
	return nil
}

// ValidateListFilter normaliza el filtro aplicando defaults a los campos
// vacíos y rechaza todo valor fuera de rango o fuera de allow-list.
// Política adoptada: una columna de sort desconocida se rechaza con error de
// validación, no se sustituye en silencio (el fallback enmascara bugs del
// cliente).
func ValidateListFilter(raw ListFilter, cfg ListConfig) (ListFilter, error) {
	f := raw

	if f.PerPage == 0 {
		f.PerPage = cfg.DefaultPerPage
	}
	if f.PerPage < 1 || f.PerPage > cfg.MaxPerPage {
		return ListFilter{}, domain.Validationf("per_page debe estar entre 1 y %d", cfg.MaxPerPage)
	}
	if f.Page < 0 {
		return ListFilter{}, domain.Validationf("page debe ser ≥ 0")
	}

	if f.FilterBy == "" {
		f.FilterBy = FilterActive
	}
	switch f.FilterBy {
	case FilterActive, FilterInactive, FilterAll:
	default:
		return ListFilter{}, domain.Validationf("filter_by %q fuera del enum {active, inactive, all}", f.FilterBy)
	}

	if f.SortColumn == "" {
		f.SortColumn = "created_at"
	}
	if !allowedSortColumns[f.SortColumn] {
		return ListFilter{}, domain.Validationf("sort_column %q no está permitida", f.SortColumn)
	}

	if f.SortOrder == "" {
		f.SortOrder = SortDesc
	}
	if f.SortOrder != SortAsc && f.SortOrder != SortDesc {
		return ListFilter{}, domain.Validationf("sort_order %q fuera del enum {ASC, DESC}", f.SortOrder)
	}

	return f, nil
}

// ValidateStoredRecord es la frontera defensiva de lectura: toda fila que
// vuelve del store pasa por aquí antes de llegar a un caller, para detectar
// drift de esquema o enums corruptos. Independiente de la validación de
// escritura.
func ValidateStoredRecord(p entity.Product) error {
	if p.ID <= 0 {
		return domain.Validationf("fila con id no positivo: %d", p.ID)
	}
	if p.Name == "" {
		return domain.Validationf("fila %d con name vacío", p.ID)
	}
	if !p.Category.Valid() {
		return domain.Validationf("fila %d con category corrupta: %d", p.ID, p.Category)
	}
	if p.PriceCents <= 0 {
		return domain.Validationf("fila %d con price_cents no positivo: %d", p.ID, p.PriceCents)
	}
	if !p.Status.Valid() {
		return domain.Validationf("fila %d con status corrupto: %d", p.ID, p.Status)
	}
	if p.CreatedAt <= 0 || p.UpdatedAt <= 0 {
		return domain.Validationf("fila %d con timestamps inválidos", p.ID)
	}
	return nil
}
