package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── Carga desde entorno ─────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Catalog.DefaultPerPage)
	assert.Equal(t, 100, cfg.Catalog.MaxPerPage)
	assert.Equal(t, int64(100_000_000), cfg.Catalog.IDMin)
	assert.Equal(t, int64(999_999_999), cfg.Catalog.IDMax)
	assert.Equal(t, 10, cfg.Catalog.IDMaxAttempts)
}

func TestLoad_EnvNumericoValido(t *testing.T) {
	t.Setenv("CATALOG_PER_PAGE", "50")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Catalog.DefaultPerPage)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_EnvNumericoInvalidoConservaDefault(t *testing.T) {
	// Un env var corrupto no puede dejar la paginación en cero: eso
	// invalidaría todas las peticiones de listado.
	t.Setenv("CATALOG_PER_PAGE", "abc")
	t.Setenv("DB_PORT", "cinco-mil")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Catalog.DefaultPerPage, "valor ilegible debe caer al default")
	assert.Equal(t, 5432, cfg.DB.Port)
}

func TestLoad_EnvNumericoConEspacios(t *testing.T) {
	t.Setenv("CATALOG_MAX_PER_PAGE", " 80 ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Catalog.MaxPerPage)
}

// ─── DSN ─────────────────────────────────────────────────────────────────────

func TestDSN_EscapaCredenciales(t *testing.T) {
	db := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "catalogo",
		Password: "p@ss/word",
		DBName:   "catalogo",
		SSLMode:  "disable",
	}

	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fword", "la contraseña debe ir con URL encoding")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := DBConfig{
		DatabaseURL: "postgres://u:p@db:5432/catalogo?sslmode=require",
		Host:        "ignorado",
	}

	assert.Equal(t, "postgres://u:p@db:5432/catalogo?sslmode=require", db.ConnectionString())
}
