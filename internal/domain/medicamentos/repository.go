package medicamentos

import "context"

type TipoRepository interface {
	Create(ctx context.Context, t TipoMedicamento) (int64, error)
	GetByID(ctx context.Context, id int64) (*TipoMedicamento, error)
	// GetByNombre busca sin distinguir mayúsculas entre los tipos activos.
	GetByNombre(ctx context.Context, nombre string) (*TipoMedicamento, error)
	// ListActive ordena por categoria, nombreMedicamento.
	ListActive(ctx context.Context) ([]TipoMedicamento, error)
	// ListByCategoria ordena por nombreMedicamento.
	ListByCategoria(ctx context.Context, categoria Categoria) ([]TipoMedicamento, error)
	Deactivate(ctx context.Context, id int64) error
}

type AplicadoRepository interface {
	Create(ctx context.Context, m MedicamentoAplicado) (int64, error)
	GetByID(ctx context.Context, id int64) (*MedicamentoAplicado, error)
	// ListByAtencion ordena por fechaAplicacion DESC, id DESC.
	ListByAtencion(ctx context.Context, idAtencion int64) ([]MedicamentoAplicado, error)
	Deactivate(ctx context.Context, id int64) error
}
