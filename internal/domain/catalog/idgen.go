package catalog

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// IDConfig rango y reintentos del generador de IDs. Valor inmutable que se
// inyecta en la construcción (nada de estado global).
type IDConfig struct {
	Min         int64 // 100000000: mínimo de 9 dígitos
	Max         int64 // 999999999: máximo de 9 dígitos
	MaxAttempts int   // colisiones consecutivas toleradas antes de fallar
}

// DefaultIDConfig valores por defecto del catálogo.
func DefaultIDConfig() IDConfig {
	return IDConfig{Min: 100_000_000, Max: 999_999_999, MaxAttempts: 10}
}

// ExistsFunc consulta si un ID ya está persistido (una lectura por intento).
type ExistsFunc func(ctx context.Context, id int64) (bool, error)

// IDGenerator produce IDs numéricos aleatorios de 9 dígitos con verificación
// de colisión. El chequeo previo es una optimización: la garantía real de
// unicidad es el constraint de la tabla, contra el que Create reintenta.
type IDGenerator struct {
	cfg IDConfig
}

// NewIDGenerator construye el generador.
func NewIDGenerator(cfg IDConfig) *IDGenerator {
	return &IDGenerator{cfg: cfg}
}

// Candidate devuelve un ID aleatorio uniforme en [Min, Max], con fuente
// criptográfica.
func (g *IDGenerator) Candidate() (int64, error) {
	span := big.NewInt(g.cfg.Max - g.cfg.Min + 1)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, fmt.Errorf("%w: fuente aleatoria: %v", domain.ErrDatabase, err)
	}
	return g.cfg.Min + n.Int64(), nil
}

// Generate devuelve el primer candidato que no existe según exists. Tras
// MaxAttempts colisiones consecutivas falla con ErrIDGenerationExhausted.
func (g *IDGenerator) Generate(ctx context.Context, exists ExistsFunc) (int64, error) {
	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		id, err := g.Candidate()
		if err != nil {
			return 0, err
		}
		taken, err := exists(ctx, id)
		if err != nil {
			return 0, fmt.Errorf("%w: verificar existencia de ID: %v", domain.ErrDatabase, err)
		}
		if !taken {
			return id, nil
		}
	}
	return 0, domain.ErrIDGenerationExhausted
}
