// Package money convierte entre unidades mayores (dólares) y centavos.
// El catálogo persiste siempre centavos enteros; estas funciones son el único
// punto de conversión, para que el drift de punto flotante (0.1+0.2) nunca
// llegue a la base de datos.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ToCents convierte un monto en unidades mayores a centavos, redondeando
// mitad hacia arriba. Pasa por decimal para que el valor flotante más cercano
// a "12.995" redondee a 1300 y no a 1299.
func ToCents(major float64) int64 {
	return decimal.NewFromFloat(major).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// FromCents convierte centavos a unidades mayores para presentación.
func FromCents(cents int64) float64 {
	f, _ := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).Float64()
	return f
}

// ParseCents interpreta la entrada del usuario ("12.99") como centavos.
func ParseCents(input string) (int64, error) {
	d, err := decimal.NewFromString(input)
	if err != nil {
		return 0, fmt.Errorf("monto inválido %q: %w", input, err)
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// IsValidCents indica si un valor en centavos es almacenable (entero ≥ 0).
// En Go el tipo ya garantiza entero; queda el chequeo de signo.
func IsValidCents(cents int64) bool {
	return cents >= 0
}

// Formatter renderiza centavos como moneda localizada (agrupación de miles
// según el locale). Inmutable tras construcción; se inyecta desde config.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter construye el formateador. Si el locale no parsea se usa en-US.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{symbol: symbol, printer: message.NewPrinter(tag)}
}

// Format renderiza centavos, ej. 1299 -> "$12.99", 999999 -> "$9,999.99".
func (f *Formatter) Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	major := f.printer.Sprintf("%d", cents/100)
	return fmt.Sprintf("%s%s%s.%02d", sign, f.symbol, major, cents%100)
}
