package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/desparasitaciones"
)

type TiposDesparasitacionRepo struct {
	db *sql.DB
}

func NewTiposDesparasitacionRepo(db *sql.DB) *TiposDesparasitacionRepo {
	return &TiposDesparasitacionRepo{db: db}
}

const tipoDesparasitacionColumns = `idTipoDesparasitacion, nombreDesparasitacion, tipo, idEspecie, intervaloRecMeses`

func (r *TiposDesparasitacionRepo) Create(ctx context.Context, t desparasitaciones.TipoDesparasitacion) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO tipo_desparasitacion
		(nombreDesparasitacion, tipo, idEspecie, intervaloRecMeses, estadoRegistro)
		VALUES ($1, $2, $3, $4, 1)
		RETURNING idTipoDesparasitacion
	`,
		t.Nombre,
		string(t.Tipo),
		toNullInt64(t.IDEspecie),
		toNullInt(t.IntervaloRecMeses),
	).Scan(&id)
	return id, err
}

func (r *TiposDesparasitacionRepo) GetByID(ctx context.Context, id int64) (*desparasitaciones.TipoDesparasitacion, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+tipoDesparasitacionColumns+`
		FROM tipo_desparasitacion
		WHERE idTipoDesparasitacion = $1 AND estadoRegistro = 1
	`, id)
	return scanTipoDesparasitacion(row)
}

func (r *TiposDesparasitacionRepo) GetByNombre(ctx context.Context, nombre string) (*desparasitaciones.TipoDesparasitacion, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+tipoDesparasitacionColumns+`
		FROM tipo_desparasitacion
		WHERE lower(nombreDesparasitacion) = lower($1) AND estadoRegistro = 1
	`, nombre)
	return scanTipoDesparasitacion(row)
}

func (r *TiposDesparasitacionRepo) ListActive(ctx context.Context) ([]desparasitaciones.TipoDesparasitacion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+tipoDesparasitacionColumns+`
		FROM tipo_desparasitacion
		WHERE estadoRegistro = 1
		ORDER BY nombreDesparasitacion
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]desparasitaciones.TipoDesparasitacion, 0)
	for rows.Next() {
		t, err := scanTipoDesparasitacionRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TiposDesparasitacionRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tipo_desparasitacion SET estadoRegistro = 0 WHERE idTipoDesparasitacion = $1
	`, id)
	return err
}

func scanTipoDesparasitacion(row *sql.Row) (*desparasitaciones.TipoDesparasitacion, error) {
	t, err := scanTipoDesparasitacionRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTipoDesparasitacionRow(s rowScanner) (desparasitaciones.TipoDesparasitacion, error) {
	var t desparasitaciones.TipoDesparasitacion
	var tipo string
	var idEspecie, intervalo sql.NullInt64
	if err := s.Scan(&t.ID, &t.Nombre, &tipo, &idEspecie, &intervalo); err != nil {
		return desparasitaciones.TipoDesparasitacion{}, err
	}
	t.Tipo = desparasitaciones.Tipo(tipo)
	t.IDEspecie = fromNullInt64(idEspecie)
	t.IntervaloRecMeses = fromNullInt(intervalo)
	return t, nil
}

type DesparasitacionesAplicadasRepo struct {
	db *sql.DB
}

func NewDesparasitacionesAplicadasRepo(db *sql.DB) *DesparasitacionesAplicadasRepo {
	return &DesparasitacionesAplicadasRepo{db: db}
}

const desparasitacionAplicadaColumns = `idDesparasitacion, idAtencion, idTipoDesparasitacion,
	fechaAplicacion, fechaProximaDosis, dosis, lote, observaciones`

func (r *DesparasitacionesAplicadasRepo) Create(ctx context.Context, d desparasitaciones.DesparasitacionAplicada) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO desparasitacion_aplicada
		(idAtencion, idTipoDesparasitacion, fechaAplicacion, fechaProximaDosis, dosis, lote, observaciones, estadoRegistro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1)
		RETURNING idDesparasitacion
	`,
		d.IDAtencion,
		d.IDTipoDesparasitacion,
		d.FechaAplicacion,
		toNullString(d.FechaProximaDosis),
		toNullString(d.Dosis),
		toNullString(d.Lote),
		toNullString(d.Observaciones),
	).Scan(&id)
	return id, err
}

func (r *DesparasitacionesAplicadasRepo) GetByID(ctx context.Context, id int64) (*desparasitaciones.DesparasitacionAplicada, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+desparasitacionAplicadaColumns+`
		FROM desparasitacion_aplicada
		WHERE idDesparasitacion = $1 AND estadoRegistro = 1
	`, id)
	d, err := scanDesparasitacionAplicadaRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DesparasitacionesAplicadasRepo) ListByAtencion(ctx context.Context, idAtencion int64) ([]desparasitaciones.DesparasitacionAplicada, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+desparasitacionAplicadaColumns+`
		FROM desparasitacion_aplicada
		WHERE idAtencion = $1 AND estadoRegistro = 1
		ORDER BY fechaAplicacion DESC, idDesparasitacion DESC
	`, idAtencion)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]desparasitaciones.DesparasitacionAplicada, 0)
	for rows.Next() {
		d, err := scanDesparasitacionAplicadaRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DesparasitacionesAplicadasRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE desparasitacion_aplicada SET estadoRegistro = 0 WHERE idDesparasitacion = $1
	`, id)
	return err
}

func scanDesparasitacionAplicadaRow(s rowScanner) (desparasitaciones.DesparasitacionAplicada, error) {
	var d desparasitaciones.DesparasitacionAplicada
	var proxima, dosis, lote, obs sql.NullString
	err := s.Scan(
		&d.ID,
		&d.IDAtencion,
		&d.IDTipoDesparasitacion,
		&d.FechaAplicacion,
		&proxima,
		&dosis,
		&lote,
		&obs,
	)
	if err != nil {
		return desparasitaciones.DesparasitacionAplicada{}, err
	}
	d.FechaProximaDosis = fromNullString(proxima)
	d.Dosis = fromNullString(dosis)
	d.Lote = fromNullString(lote)
	d.Observaciones = fromNullString(obs)
	return d, nil
}
