package atenciones

import "context"

type Repository interface {
	Create(ctx context.Context, a Atencion) (int64, error)
	GetByID(ctx context.Context, id int64) (*Atencion, error)
	// ListByAnimal lista las atenciones activas de un animal, de la más
	// reciente a la más antigua (fechaAtencion DESC, id DESC).
	ListByAnimal(ctx context.Context, idAnimal int64) ([]Atencion, error)
	// ListByFecha lista las atenciones activas de una fecha exacta YYYY-MM-DD.
	ListByFecha(ctx context.Context, fecha string) ([]Atencion, error)
	Deactivate(ctx context.Context, id int64) error
}
