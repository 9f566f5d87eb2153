package sqlite

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/vacunas"
)

type TiposVacunaRepo struct {
	db *sql.DB
}

func NewTiposVacunaRepo(db *sql.DB) *TiposVacunaRepo {
	return &TiposVacunaRepo{db: db}
}

const tipoVacunaColumns = `idTipoVacuna, nombreVacuna, descripcion, idEspecie, intervaloRecMeses`

func (r *TiposVacunaRepo) Create(ctx context.Context, t vacunas.TipoVacuna) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tipo_vacuna
		(nombreVacuna, descripcion, idEspecie, intervaloRecMeses, estadoRegistro)
		VALUES (?, ?, ?, ?, 1)
	`,
		t.Nombre,
		toNullString(t.Descripcion),
		toNullInt64(t.IDEspecie),
		toNullInt(t.IntervaloRecMeses),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *TiposVacunaRepo) GetByID(ctx context.Context, id int64) (*vacunas.TipoVacuna, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+tipoVacunaColumns+`
		FROM tipo_vacuna
		WHERE idTipoVacuna = ? AND estadoRegistro = 1
	`, id)
	return scanTipoVacuna(row)
}

func (r *TiposVacunaRepo) GetByNombre(ctx context.Context, nombre string) (*vacunas.TipoVacuna, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+tipoVacunaColumns+`
		FROM tipo_vacuna
		WHERE nombreVacuna = ? COLLATE NOCASE AND estadoRegistro = 1
	`, nombre)
	return scanTipoVacuna(row)
}

func (r *TiposVacunaRepo) ListActive(ctx context.Context) ([]vacunas.TipoVacuna, error) {
	return r.listTipos(ctx, `
		SELECT `+tipoVacunaColumns+`
		FROM tipo_vacuna
		WHERE estadoRegistro = 1
		ORDER BY nombreVacuna
	`)
}

func (r *TiposVacunaRepo) ListByEspecie(ctx context.Context, idEspecie int64) ([]vacunas.TipoVacuna, error) {
	return r.listTipos(ctx, `
		SELECT `+tipoVacunaColumns+`
		FROM tipo_vacuna
		WHERE (idEspecie = ? OR idEspecie IS NULL) AND estadoRegistro = 1
		ORDER BY nombreVacuna
	`, idEspecie)
}

func (r *TiposVacunaRepo) listTipos(ctx context.Context, query string, args ...any) ([]vacunas.TipoVacuna, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vacunas.TipoVacuna, 0)
	for rows.Next() {
		t, err := scanTipoVacunaRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TiposVacunaRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tipo_vacuna SET estadoRegistro = 0 WHERE idTipoVacuna = ?
	`, id)
	return err
}

func scanTipoVacuna(row *sql.Row) (*vacunas.TipoVacuna, error) {
	t, err := scanTipoVacunaRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTipoVacunaRow(s rowScanner) (vacunas.TipoVacuna, error) {
	var t vacunas.TipoVacuna
	var desc sql.NullString
	var idEspecie, intervalo sql.NullInt64
	if err := s.Scan(&t.ID, &t.Nombre, &desc, &idEspecie, &intervalo); err != nil {
		return vacunas.TipoVacuna{}, err
	}
	t.Descripcion = fromNullString(desc)
	t.IDEspecie = fromNullInt64(idEspecie)
	t.IntervaloRecMeses = fromNullInt(intervalo)
	return t, nil
}

type VacunasAplicadasRepo struct {
	db *sql.DB
}

func NewVacunasAplicadasRepo(db *sql.DB) *VacunasAplicadasRepo {
	return &VacunasAplicadasRepo{db: db}
}

const vacunaAplicadaColumns = `idVacunaAplicada, idAtencion, idTipoVacuna, fechaAplicacion,
	fechaProximaDosis, dosis, lote, observaciones`

func (r *VacunasAplicadasRepo) Create(ctx context.Context, v vacunas.VacunaAplicada) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO vacuna_aplicada
		(idAtencion, idTipoVacuna, fechaAplicacion, fechaProximaDosis, dosis, lote, observaciones, estadoRegistro)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1)
	`,
		v.IDAtencion,
		v.IDTipoVacuna,
		v.FechaAplicacion,
		toNullString(v.FechaProximaDosis),
		toNullString(v.Dosis),
		toNullString(v.Lote),
		toNullString(v.Observaciones),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *VacunasAplicadasRepo) GetByID(ctx context.Context, id int64) (*vacunas.VacunaAplicada, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+vacunaAplicadaColumns+`
		FROM vacuna_aplicada
		WHERE idVacunaAplicada = ? AND estadoRegistro = 1
	`, id)
	v, err := scanVacunaAplicadaRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VacunasAplicadasRepo) ListByAtencion(ctx context.Context, idAtencion int64) ([]vacunas.VacunaAplicada, error) {
	return r.listAplicadas(ctx, `
		SELECT `+vacunaAplicadaColumns+`
		FROM vacuna_aplicada
		WHERE idAtencion = ? AND estadoRegistro = 1
		ORDER BY fechaAplicacion DESC, idVacunaAplicada DESC
	`, idAtencion)
}

func (r *VacunasAplicadasRepo) ListAllActive(ctx context.Context) ([]vacunas.VacunaAplicada, error) {
	return r.listAplicadas(ctx, `
		SELECT `+vacunaAplicadaColumns+`
		FROM vacuna_aplicada
		WHERE estadoRegistro = 1
		ORDER BY fechaAplicacion DESC, idVacunaAplicada DESC
	`)
}

func (r *VacunasAplicadasRepo) listAplicadas(ctx context.Context, query string, args ...any) ([]vacunas.VacunaAplicada, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vacunas.VacunaAplicada, 0)
	for rows.Next() {
		v, err := scanVacunaAplicadaRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VacunasAplicadasRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE vacuna_aplicada SET estadoRegistro = 0 WHERE idVacunaAplicada = ?
	`, id)
	return err
}

func scanVacunaAplicadaRow(s rowScanner) (vacunas.VacunaAplicada, error) {
	var v vacunas.VacunaAplicada
	var proxima, dosis, lote, obs sql.NullString
	err := s.Scan(
		&v.ID,
		&v.IDAtencion,
		&v.IDTipoVacuna,
		&v.FechaAplicacion,
		&proxima,
		&dosis,
		&lote,
		&obs,
	)
	if err != nil {
		return vacunas.VacunaAplicada{}, err
	}
	v.FechaProximaDosis = fromNullString(proxima)
	v.Dosis = fromNullString(dosis)
	v.Lote = fromNullString(lote)
	v.Observaciones = fromNullString(obs)
	return v, nil
}
