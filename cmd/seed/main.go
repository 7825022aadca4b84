// seed inserta productos de ejemplo en el catálogo para desarrollo local.
// Pasa por el caso de uso real (validación + generación de ID), no por SQL
// crudo, así los datos sembrados cumplen las mismas reglas que producción.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/money"
)

func ptr(s string) *string { return &s }

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if err := postgres.RunMigrations(cfg.DB); err != nil {
		fmt.Fprintf(os.Stderr, "migraciones: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := usecase.NewProductUseCase(
		postgres.NewProductRepository(pool),
		catalog.NewIDGenerator(catalog.DefaultIDConfig()),
		catalog.DefaultListConfig(),
		money.NewFormatter(cfg.Catalog.Locale, cfg.Catalog.CurrencySymbol),
	)

	seeds := []dto.CreateProductRequest{
		{Name: "Caja corrugada 30x30", Category: 1, PriceCents: 1299, Description: ptr("Caja de cartón corrugado, paquete x25")},
		{Name: "Etiqueta adhesiva 5x5", Category: 2, PriceCents: 450, Description: ptr("Rollo de 500 etiquetas")},
		{Name: "Cinta de embalaje", Category: 1, PriceCents: 899},
		{Name: "Marcador industrial", Category: 3, PriceCents: 350, Description: ptr("Tinta permanente")},
		{Name: "Etiqueta térmica 10x15", Category: 2, PriceCents: 1550},
	}

	for _, in := range seeds {
		out, err := uc.Create(ctx, in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sembrar %q: %v\n", in.Name, err)
			os.Exit(1)
		}
		fmt.Printf("creado %d  %-28s %s\n", out.ID, out.Name, out.PriceFormatted)
	}
}
