package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/especies"
	"vet-clinic-records/internal/domain/motivos"
	"vet-clinic-records/internal/domain/razas"
)

type EspeciesRepo struct {
	db *sql.DB
}

func NewEspeciesRepo(db *sql.DB) *EspeciesRepo {
	return &EspeciesRepo{db: db}
}

func (r *EspeciesRepo) Create(ctx context.Context, e especies.Especie) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO especie (nombreEspecie, estadoRegistro)
		VALUES ($1, 1)
		RETURNING idEspecie
	`, e.Nombre).Scan(&id)
	return id, err
}

func (r *EspeciesRepo) GetByID(ctx context.Context, id int64) (*especies.Especie, error) {
	return r.getEspecie(ctx, `
		SELECT idEspecie, nombreEspecie
		FROM especie
		WHERE idEspecie = $1 AND estadoRegistro = 1
	`, id)
}

func (r *EspeciesRepo) GetByNombre(ctx context.Context, nombre string) (*especies.Especie, error) {
	return r.getEspecie(ctx, `
		SELECT idEspecie, nombreEspecie
		FROM especie
		WHERE nombreEspecie = $1 AND estadoRegistro = 1
	`, nombre)
}

func (r *EspeciesRepo) getEspecie(ctx context.Context, query string, arg any) (*especies.Especie, error) {
	var e especies.Especie
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&e.ID, &e.Nombre)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EspeciesRepo) ListActive(ctx context.Context) ([]especies.Especie, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT idEspecie, nombreEspecie
		FROM especie
		WHERE estadoRegistro = 1
		ORDER BY nombreEspecie
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]especies.Especie, 0)
	for rows.Next() {
		var e especies.Especie
		if err := rows.Scan(&e.ID, &e.Nombre); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EspeciesRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE especie SET estadoRegistro = 0 WHERE idEspecie = $1
	`, id)
	return err
}

type RazasRepo struct {
	db *sql.DB
}

func NewRazasRepo(db *sql.DB) *RazasRepo {
	return &RazasRepo{db: db}
}

func (r *RazasRepo) Create(ctx context.Context, rz razas.Raza) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO raza (idEspecie, nombreRaza, estadoRegistro)
		VALUES ($1, $2, 1)
		RETURNING idRaza
	`, rz.IDEspecie, rz.Nombre).Scan(&id)
	return id, err
}

func (r *RazasRepo) GetByID(ctx context.Context, id int64) (*razas.Raza, error) {
	return r.getRaza(ctx, `
		SELECT idRaza, idEspecie, nombreRaza
		FROM raza
		WHERE idRaza = $1 AND estadoRegistro = 1
	`, id)
}

func (r *RazasRepo) GetByNombreEnEspecie(ctx context.Context, idEspecie int64, nombre string) (*razas.Raza, error) {
	return r.getRaza(ctx, `
		SELECT idRaza, idEspecie, nombreRaza
		FROM raza
		WHERE idEspecie = $1 AND nombreRaza = $2 AND estadoRegistro = 1
	`, idEspecie, nombre)
}

func (r *RazasRepo) getRaza(ctx context.Context, query string, args ...any) (*razas.Raza, error) {
	var rz razas.Raza
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&rz.ID, &rz.IDEspecie, &rz.Nombre)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rz, nil
}

func (r *RazasRepo) ListActive(ctx context.Context) ([]razas.Raza, error) {
	return r.listRazas(ctx, `
		SELECT idRaza, idEspecie, nombreRaza
		FROM raza
		WHERE estadoRegistro = 1
		ORDER BY idEspecie, nombreRaza
	`)
}

func (r *RazasRepo) ListByEspecie(ctx context.Context, idEspecie int64) ([]razas.Raza, error) {
	return r.listRazas(ctx, `
		SELECT idRaza, idEspecie, nombreRaza
		FROM raza
		WHERE idEspecie = $1 AND estadoRegistro = 1
		ORDER BY nombreRaza
	`, idEspecie)
}

func (r *RazasRepo) listRazas(ctx context.Context, query string, args ...any) ([]razas.Raza, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]razas.Raza, 0)
	for rows.Next() {
		var rz razas.Raza
		if err := rows.Scan(&rz.ID, &rz.IDEspecie, &rz.Nombre); err != nil {
			return nil, err
		}
		out = append(out, rz)
	}
	return out, rows.Err()
}

func (r *RazasRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE raza SET estadoRegistro = 0 WHERE idRaza = $1
	`, id)
	return err
}

type MotivosRepo struct {
	db *sql.DB
}

func NewMotivosRepo(db *sql.DB) *MotivosRepo {
	return &MotivosRepo{db: db}
}

func (r *MotivosRepo) Create(ctx context.Context, m motivos.Motivo) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO motivo_consulta (nombreMotivo, descripcion, estadoRegistro)
		VALUES ($1, $2, 1)
		RETURNING idMotivoConsulta
	`, m.Nombre, toNullString(m.Descripcion)).Scan(&id)
	return id, err
}

func (r *MotivosRepo) GetByID(ctx context.Context, id int64) (*motivos.Motivo, error) {
	return r.getMotivo(ctx, `
		SELECT idMotivoConsulta, nombreMotivo, descripcion
		FROM motivo_consulta
		WHERE idMotivoConsulta = $1 AND estadoRegistro = 1
	`, id)
}

func (r *MotivosRepo) GetByNombre(ctx context.Context, nombre string) (*motivos.Motivo, error) {
	return r.getMotivo(ctx, `
		SELECT idMotivoConsulta, nombreMotivo, descripcion
		FROM motivo_consulta
		WHERE nombreMotivo = $1 AND estadoRegistro = 1
	`, nombre)
}

func (r *MotivosRepo) getMotivo(ctx context.Context, query string, arg any) (*motivos.Motivo, error) {
	var m motivos.Motivo
	var desc sql.NullString
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&m.ID, &m.Nombre, &desc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m.Descripcion = fromNullString(desc)
	return &m, nil
}

func (r *MotivosRepo) ListActive(ctx context.Context) ([]motivos.Motivo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT idMotivoConsulta, nombreMotivo, descripcion
		FROM motivo_consulta
		WHERE estadoRegistro = 1
		ORDER BY nombreMotivo
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]motivos.Motivo, 0)
	for rows.Next() {
		var m motivos.Motivo
		var desc sql.NullString
		if err := rows.Scan(&m.ID, &m.Nombre, &desc); err != nil {
			return nil, err
		}
		m.Descripcion = fromNullString(desc)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MotivosRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE motivo_consulta SET estadoRegistro = 0 WHERE idMotivoConsulta = $1
	`, id)
	return err
}
