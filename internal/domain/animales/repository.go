package animales

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) (int64, error)
	// GetByID retorna el animal activo con ese id, o nil.
	GetByID(ctx context.Context, id int64) (*Animal, error)
	// GetByMicrochip retorna el animal activo con ese número, o nil.
	GetByMicrochip(ctx context.Context, microchip string) (*Animal, error)
	// ListActive ordena por nombre.
	ListActive(ctx context.Context) ([]Animal, error)
	// ListByTenedor lista los animales activos de un tenedor, por nombre.
	ListByTenedor(ctx context.Context, idTenedor int64) ([]Animal, error)
	Deactivate(ctx context.Context, id int64) error
}
