package personal

import "context"

type Repository interface {
	Create(ctx context.Context, p Personal) (int64, error)
	// GetByID retorna el personal activo con ese id, o nil si no existe.
	GetByID(ctx context.Context, id int64) (*Personal, error)
	GetByRUT(ctx context.Context, rut string) (*Personal, error)
	// ListActive ordena por apellidos, nombres.
	ListActive(ctx context.Context) ([]Personal, error)
	Deactivate(ctx context.Context, id int64) error
}
