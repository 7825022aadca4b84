package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven (nil, nil) cuando no hay fila; Create y Update
// devuelven la fila tal como quedó persistida (RETURNING), para que el caso
// de uso la re-valide antes de entregarla.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// List devuelve la página solicitada y el total de filas que satisfacen
	// el filtro (dos consultas: count + página).
	List(ctx context.Context, filter catalog.ListFilter) ([]*entity.Product, int, error)
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	// SoftDelete marca la fila como inactiva y refresca updated_at; jamás
	// ejecuta un DELETE. Devuelve el número de filas afectadas.
	SoftDelete(ctx context.Context, id int64, updatedAt int64) (int64, error)
}
