package desparasitaciones

import "context"

type TipoRepository interface {
	Create(ctx context.Context, t TipoDesparasitacion) (int64, error)
	GetByID(ctx context.Context, id int64) (*TipoDesparasitacion, error)
	// GetByNombre busca sin distinguir mayúsculas entre los tipos activos.
	GetByNombre(ctx context.Context, nombre string) (*TipoDesparasitacion, error)
	// ListActive ordena por nombreDesparasitacion.
	ListActive(ctx context.Context) ([]TipoDesparasitacion, error)
	Deactivate(ctx context.Context, id int64) error
}

type AplicadaRepository interface {
	Create(ctx context.Context, d DesparasitacionAplicada) (int64, error)
	GetByID(ctx context.Context, id int64) (*DesparasitacionAplicada, error)
	// ListByAtencion ordena por fechaAplicacion DESC, id DESC.
	ListByAtencion(ctx context.Context, idAtencion int64) ([]DesparasitacionAplicada, error)
	Deactivate(ctx context.Context, id int64) error
}
