package tenedores

import (
	"context"
	"errors"
)

// ErrNotFound lo retorna Update cuando no hay un tenedor activo con ese id.
// Las búsquedas modelan la ausencia como nil, no como error.
var ErrNotFound = errors.New("tenedor no encontrado")

type Repository interface {
	// Create inserta el tenedor como activo y retorna el id generado.
	Create(ctx context.Context, t Tenedor) (int64, error)
	// GetByID retorna el tenedor activo con ese id, o nil si no existe.
	GetByID(ctx context.Context, id int64) (*Tenedor, error)
	// GetByRUT retorna el tenedor activo con ese RUT normalizado, o nil.
	GetByRUT(ctx context.Context, rut string) (*Tenedor, error)
	// ListActive lista tenedores activos ordenados por apellidos, nombres.
	ListActive(ctx context.Context) ([]Tenedor, error)
	// Update modifica los datos de un tenedor activo (el RUT no se toca).
	Update(ctx context.Context, t Tenedor) error
	// Deactivate aplica eliminación lógica; es un no-op silencioso si el id
	// no existe o ya estaba inactivo.
	Deactivate(ctx context.Context, id int64) error
}
