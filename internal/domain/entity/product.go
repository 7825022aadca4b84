package entity

// Category clasificación del producto en el catálogo.
type Category int

// Categorías permitidas (enum cerrado).
const (
	CategoryPackaging Category = 1
	CategoryLabel     Category = 2
	CategoryOther     Category = 3
)

// Valid indica si la categoría pertenece al enum.
func (c Category) Valid() bool {
	return c == CategoryPackaging || c == CategoryLabel || c == CategoryOther
}

// Name nombre legible de la categoría (para UI y reportes).
func (c Category) Name() string {
	switch c {
	case CategoryPackaging:
		return "Packaging"
	case CategoryLabel:
		return "Label"
	case CategoryOther:
		return "Other"
	}
	return "Unknown"
}

// Status estado de visibilidad del producto. El borrado es lógico:
// una transición a StatusInactive, nunca un DELETE físico.
type Status int

const (
	StatusInactive Status = 0
	StatusActive   Status = 1
)

// Valid indica si el estado pertenece al enum.
func (s Status) Valid() bool {
	return s == StatusInactive || s == StatusActive
}

// Name nombre legible del estado.
func (s Status) Name() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	}
	return "Unknown"
}

// Product representa un producto del catálogo.
// ID es asignado por el sistema (9 dígitos, nunca lo aporta el cliente) e
// inmutable una vez creado. PriceCents guarda el precio en centavos: jamás
// se persiste un valor en unidades mayores (dólares).
type Product struct {
	ID          int64
	Name        string
	Category    Category
	PriceCents  int64
	Description *string
	Status      Status
	CreatedAt   int64 // Unix seconds, fijado una sola vez en el insert
	UpdatedAt   int64 // Unix seconds, refrescado en cada mutación exitosa
}
