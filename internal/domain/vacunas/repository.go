package vacunas

import "context"

type TipoRepository interface {
	Create(ctx context.Context, t TipoVacuna) (int64, error)
	GetByID(ctx context.Context, id int64) (*TipoVacuna, error)
	// GetByNombre busca sin distinguir mayúsculas entre los tipos activos.
	GetByNombre(ctx context.Context, nombre string) (*TipoVacuna, error)
	// ListActive ordena por nombreVacuna.
	ListActive(ctx context.Context) ([]TipoVacuna, error)
	// ListByEspecie lista tipos activos acotados a la especie o sin especie.
	ListByEspecie(ctx context.Context, idEspecie int64) ([]TipoVacuna, error)
	Deactivate(ctx context.Context, id int64) error
}

type AplicadaRepository interface {
	Create(ctx context.Context, v VacunaAplicada) (int64, error)
	GetByID(ctx context.Context, id int64) (*VacunaAplicada, error)
	// ListByAtencion ordena por fechaAplicacion DESC, id DESC.
	ListByAtencion(ctx context.Context, idAtencion int64) ([]VacunaAplicada, error)
	// ListAllActive lista todas las aplicaciones activas, más recientes primero.
	ListAllActive(ctx context.Context) ([]VacunaAplicada, error)
	Deactivate(ctx context.Context, id int64) error
}
