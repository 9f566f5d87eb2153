package sqlite

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/usuarios"
)

type UsuariosRepo struct {
	db *sql.DB
}

func NewUsuariosRepo(db *sql.DB) *UsuariosRepo {
	return &UsuariosRepo{db: db}
}

const usuarioColumns = `idUsuario, idPersonal, nombreUsuario, claveEncriptada, rol`

func (r *UsuariosRepo) Create(ctx context.Context, u usuarios.Usuario) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO usuario_sistema
		(idPersonal, nombreUsuario, claveEncriptada, rol, estadoRegistro)
		VALUES (?, ?, ?, ?, 1)
	`,
		toNullInt64(u.IDPersonal),
		u.NombreUsuario,
		u.ClaveEncriptada,
		string(u.Rol),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *UsuariosRepo) GetByUsername(ctx context.Context, nombreUsuario string) (*usuarios.Usuario, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+usuarioColumns+`
		FROM usuario_sistema
		WHERE nombreUsuario = ? AND estadoRegistro = 1
	`, nombreUsuario)
	u, err := scanUsuarioRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsuariosRepo) ExistsActiveAdminSistema(ctx context.Context) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
		SELECT 1
		FROM usuario_sistema
		WHERE rol = 'admin_sistema' AND estadoRegistro = 1
		LIMIT 1
	`).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *UsuariosRepo) ListActive(ctx context.Context) ([]usuarios.Usuario, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+usuarioColumns+`
		FROM usuario_sistema
		WHERE estadoRegistro = 1
		ORDER BY nombreUsuario
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]usuarios.Usuario, 0)
	for rows.Next() {
		u, err := scanUsuarioRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsuariosRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE usuario_sistema SET estadoRegistro = 0 WHERE idUsuario = ?
	`, id)
	return err
}

func scanUsuarioRow(s rowScanner) (usuarios.Usuario, error) {
	var u usuarios.Usuario
	var idPersonal sql.NullInt64
	var rol string
	if err := s.Scan(&u.ID, &idPersonal, &u.NombreUsuario, &u.ClaveEncriptada, &rol); err != nil {
		return usuarios.Usuario{}, err
	}
	u.IDPersonal = fromNullInt64(idPersonal)
	u.Rol = usuarios.Rol(rol)
	return u, nil
}
