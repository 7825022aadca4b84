package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/money"
)

// createMaxRetries reintentos de INSERT cuando el constraint de unicidad
// rechaza un ID (la carrera check-then-insert del §generador).
const createMaxRetries = 3

// ProductUseCase casos de uso CRUD del catálogo. Orquesta validación,
// generación de ID, persistencia y re-validación de lo que devuelve el store.
type ProductUseCase struct {
	repo      repository.ProductRepository
	idGen     *catalog.IDGenerator
	listCfg   catalog.ListConfig
	formatter *money.Formatter
	now       func() int64
}

// NewProductUseCase construye el caso de uso con su configuración inmutable.
func NewProductUseCase(
	repo repository.ProductRepository,
	idGen *catalog.IDGenerator,
	listCfg catalog.ListConfig,
	formatter *money.Formatter,
) *ProductUseCase {
	return &ProductUseCase{
		repo:      repo,
		idGen:     idGen,
		listCfg:   listCfg,
		formatter: formatter,
		now:       func() int64 { return time.Now().Unix() },
	}
}

// Create valida la entrada, genera un ID libre de 9 dígitos e inserta con
// estado activo y created_at = updated_at = ahora. La fila que devuelve el
// store se re-valida antes de entregarse. Si el constraint de unicidad
// rechaza el ID (carrera con otro create) se reintenta con uno fresco.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	input := catalog.CreateInput{
		Name:        in.Name,
		Category:    entity.Category(in.Category),
		PriceCents:  in.PriceCents,
		Description: in.Description,
	}
	if err := catalog.ValidateCreateInput(input); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < createMaxRetries; attempt++ {
		id, err := uc.idGen.Generate(ctx, uc.repo.ExistsByID)
		if err != nil {
			return nil, err
		}

		now := uc.now()
		created, err := uc.repo.Create(ctx, &entity.Product{
			ID:          id,
			Name:        input.Name,
			Category:    input.Category,
			PriceCents:  input.PriceCents,
			Description: input.Description,
			Status:      entity.StatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if errors.Is(err, domain.ErrDuplicate) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrDatabase, err)
		}
		if created == nil {
			return nil, fmt.Errorf("%w: el insert no devolvió fila", domain.ErrDatabase)
		}
		// La fila ya quedó persistida: una falla aquí se reporta igual,
		// nunca se finge éxito.
		if err := catalog.ValidateStoredRecord(*created); err != nil {
			return nil, err
		}
		return uc.toResponse(created), nil
	}
	return nil, fmt.Errorf("%w: unicidad de ID rechazada tras %d reintentos", domain.ErrDatabase, createMaxRetries)
}

// GetByID devuelve el producto sin filtrar por estado: el detalle y la
// edición necesitan también los inactivos.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, domain.Validationf("id debe ser un entero positivo")
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabase, err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	if err := catalog.ValidateStoredRecord(*product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// GetAll valida el filtro, ejecuta count + página y re-valida cada fila.
// Cualquier fila corrupta invalida la respuesta completa: jamás se devuelven
// datos parcialmente validados.
func (uc *ProductUseCase) GetAll(ctx context.Context, in dto.ListProductsRequest) (*dto.ProductListResponse, error) {
	filter, err := catalog.ValidateListFilter(catalog.ListFilter{
		PerPage:    in.PerPage,
		Page:       in.Page,
		FilterBy:   catalog.StatusFilter(in.FilterBy),
		SortColumn: in.SortColumn,
		SortOrder:  in.SortOrder,
	}, uc.listCfg)
	if err != nil {
		return nil, err
	}

	list, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabase, err)
	}

	products := make([]dto.ProductResponse, 0, len(list))
	var corrupt []string
	for _, p := range list {
		if err := catalog.ValidateStoredRecord(*p); err != nil {
			corrupt = append(corrupt, err.Error())
			continue
		}
		products = append(products, *uc.toResponse(p))
	}
	if len(corrupt) > 0 {
		return nil, domain.Validationf("filas corruptas en el listado: %s", strings.Join(corrupt, "; "))
	}

	offset := filter.Page * filter.PerPage
	return &dto.ProductListResponse{
		Products:    products,
		Total:       total,
		HasMore:     offset+filter.PerPage < total,
		CurrentPage: filter.Page,
		TotalPages:  (total + filter.PerPage - 1) / filter.PerPage,
		PerPage:     filter.PerPage,
	}, nil
}

// Update valida la entrada, exige que la fila exista y persiste todos los
// campos mutables con updated_at refrescado. ID y created_at son inmutables.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	// Sin status explícito el JSON decodificaría 0 (inactivo) y el update
	// desactivaría el producto en silencio.
	if in.Status == nil {
		return nil, domain.Validationf("status es requerido")
	}
	input := catalog.UpdateInput{
		ID:          id,
		Name:        in.Name,
		Category:    entity.Category(in.Category),
		PriceCents:  in.PriceCents,
		Description: in.Description,
		Status:      entity.Status(*in.Status),
	}
	if err := catalog.ValidateUpdateInput(input); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabase, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}

	updated, err := uc.repo.Update(ctx, &entity.Product{
		ID:          id,
		Name:        input.Name,
		Category:    input.Category,
		PriceCents:  input.PriceCents,
		Description: input.Description,
		Status:      input.Status,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   uc.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabase, err)
	}
	if updated == nil {
		// Desapareció entre el precheck y el UPDATE.
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	if err := catalog.ValidateStoredRecord(*updated); err != nil {
		return nil, err
	}
	return uc.toResponse(updated), nil
}

// Delete borra lógicamente: status -> inactivo con updated_at refrescado.
// Repetir el delete de una fila ya inactiva es un no-op de estado, pero la
// fila debe existir.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (*dto.DeleteProductResponse, error) {
	if id <= 0 {
		return nil, domain.Validationf("id debe ser un entero positivo")
	}
	exists, err := uc.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabase, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}

	affected, err := uc.repo.SoftDelete(ctx, id, uc.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabase, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: el soft delete no afectó filas", domain.ErrDatabase)
	}
	return &dto.DeleteProductResponse{Success: true, ID: id}, nil
}

func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       int(p.Category),
		CategoryName:   p.Category.Name(),
		PriceCents:     p.PriceCents,
		PriceFormatted: uc.formatter.Format(p.PriceCents),
		Description:    p.Description,
		Status:         int(p.Status),
		StatusName:     p.Status.Name(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
