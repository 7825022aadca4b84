package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserta el producto y devuelve la fila persistida (RETURNING).
// Una violación del constraint de unicidad del ID se traduce a ErrDuplicate
// para que el caso de uso reintente con un ID fresco.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := fmt.Sprintf(`
		INSERT INTO products (id, name, category, price_cents, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`, productColumns)
	row := r.q.QueryRow(ctx, query,
		product.ID, product.Name, product.Category, product.PriceCents,
		product.Description, product.Status, product.CreatedAt, product.UpdatedAt,
	)
	created, err := scanProduct(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return created, nil
}

// GetByID obtiene un producto por ID sin filtrar por estado: las vistas de
// detalle y edición necesitan también los inactivos.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ExistsByID verifica si el ID ya está en la tabla (incluye filas inactivas:
// un ID jamás se reutiliza).
func (r *ProductRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.q.QueryRow(ctx, `SELECT id FROM products WHERE id = $1 LIMIT 1`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists product: %w", err)
	}
	return true, nil
}

// List ejecuta count y página del listado a partir del filtro validado.
func (r *ProductRepo) List(ctx context.Context, filter catalog.ListFilter) ([]*entity.Product, int, error) {
	countSQL, pageSQL, args := buildListQuery(filter)

	var total int
	if err := r.q.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	rows, err := r.q.Query(ctx, pageSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Update persiste todos los campos mutables (id y created_at quedan intactos)
// y devuelve la fila actualizada. (nil, nil) si el ID no existe.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := fmt.Sprintf(`
		UPDATE products
		SET name = $2, category = $3, price_cents = $4, description = $5, status = $6, updated_at = $7
		WHERE id = $1
		RETURNING %s`, productColumns)
	updated, err := scanProduct(r.q.QueryRow(ctx, query,
		product.ID, product.Name, product.Category, product.PriceCents,
		product.Description, product.Status, product.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return updated, nil
}

// SoftDelete transición status -> 0 con updated_at refrescado. No borra filas.
func (r *ProductRepo) SoftDelete(ctx context.Context, id int64, updatedAt int64) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET status = 0, updated_at = $2 WHERE id = $1`,
		id, updatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("soft delete product: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// scanProduct mapea una fila (en el orden de productColumns) a la entidad.
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.PriceCents,
		&p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
