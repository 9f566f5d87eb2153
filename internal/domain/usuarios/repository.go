package usuarios

import "context"

type Repository interface {
	Create(ctx context.Context, u Usuario) (int64, error)
	// GetByUsername retorna el usuario activo con ese nombre, o nil.
	GetByUsername(ctx context.Context, nombreUsuario string) (*Usuario, error)
	// ExistsActiveAdminSistema indica si hay al menos un admin_sistema activo.
	ExistsActiveAdminSistema(ctx context.Context) (bool, error)
	// ListActive ordena por nombreUsuario.
	ListActive(ctx context.Context) ([]Usuario, error)
	Deactivate(ctx context.Context, id int64) error
}
