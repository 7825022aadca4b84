package dto

// CreateProductRequest entrada para crear un producto. El ID lo asigna el
// sistema y el estado inicial siempre es activo, por eso no se aceptan aquí.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Category    int     `json:"category" validate:"required,min=1,max=3"`
	PriceCents  int64   `json:"price_cents" validate:"required,gt=0"`
	Description *string `json:"description"`
}

// UpdateProductRequest entrada para actualizar un producto (el ID va en la
// ruta). Todos los campos son requeridos: la actualización es de fila completa.
// Status es puntero para distinguir "omitido" de 0 (inactivo); un body sin
// status se rechaza en vez de desactivar el producto por accidente.
type UpdateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Category    int     `json:"category" validate:"required,min=1,max=3"`
	PriceCents  int64   `json:"price_cents" validate:"required,gt=0"`
	Description *string `json:"description"`
	Status      *int    `json:"status" validate:"required,min=0,max=1"`
}

// ListProductsRequest filtro de listado; los campos vacíos toman defaults.
type ListProductsRequest struct {
	PerPage    int    `query:"per_page" validate:"omitempty,min=1,max=100"`
	Page       int    `query:"page" validate:"omitempty,min=0"`
	FilterBy   string `query:"filter_by"`
	SortColumn string `query:"sort_column"`
	SortOrder  string `query:"sort_order"`
}

// ProductResponse salida de un producto. PriceFormatted es la representación
// localizada del precio ("$12.99"); price_cents sigue siendo el valor canónico.
type ProductResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Category       int     `json:"category"`
	CategoryName   string  `json:"category_name"`
	PriceCents     int64   `json:"price_cents"`
	PriceFormatted string  `json:"price_formatted"`
	Description    *string `json:"description"`
	Status         int     `json:"status"`
	StatusName     string  `json:"status_name"`
	CreatedAt      int64   `json:"created_at"`
	UpdatedAt      int64   `json:"updated_at"`
}

// ProductListResponse página de productos con metadatos de paginación.
type ProductListResponse struct {
	Products    []ProductResponse `json:"products"`
	Total       int               `json:"total"`
	HasMore     bool              `json:"hasMore"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
	PerPage     int               `json:"perPage"`
}

// DeleteProductResponse confirmación del borrado lógico.
type DeleteProductResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
