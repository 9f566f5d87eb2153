package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/atenciones"
)

type AtencionesRepo struct {
	db *sql.DB
}

func NewAtencionesRepo(db *sql.DB) *AtencionesRepo {
	return &AtencionesRepo{db: db}
}

const atencionColumns = `idAtencion, idAnimal, idPersonal, idMotivoConsulta, fechaAtencion,
	sintomas, pesoKg, diagnostico, tratamiento, observaciones, fechaControlSugerida, lugarAtencion`

func (r *AtencionesRepo) Create(ctx context.Context, a atenciones.Atencion) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO atencion_clinica
		(idAnimal, idPersonal, idMotivoConsulta, fechaAtencion, sintomas, pesoKg,
		 diagnostico, tratamiento, observaciones, fechaControlSugerida, lugarAtencion, estadoRegistro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1)
		RETURNING idAtencion
	`,
		a.IDAnimal,
		a.IDPersonal,
		a.IDMotivoConsulta,
		a.FechaAtencion,
		toNullString(a.Sintomas),
		toNullFloat(a.PesoKg),
		toNullString(a.Diagnostico),
		toNullString(a.Tratamiento),
		toNullString(a.Observaciones),
		toNullString(a.FechaControlSugerida),
		string(a.Lugar),
	).Scan(&id)
	return id, err
}

func (r *AtencionesRepo) GetByID(ctx context.Context, id int64) (*atenciones.Atencion, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+atencionColumns+`
		FROM atencion_clinica
		WHERE idAtencion = $1 AND estadoRegistro = 1
	`, id)
	a, err := scanAtencionRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AtencionesRepo) ListByAnimal(ctx context.Context, idAnimal int64) ([]atenciones.Atencion, error) {
	return r.listAtenciones(ctx, `
		SELECT `+atencionColumns+`
		FROM atencion_clinica
		WHERE idAnimal = $1 AND estadoRegistro = 1
		ORDER BY fechaAtencion DESC, idAtencion DESC
	`, idAnimal)
}

func (r *AtencionesRepo) ListByFecha(ctx context.Context, fecha string) ([]atenciones.Atencion, error) {
	return r.listAtenciones(ctx, `
		SELECT `+atencionColumns+`
		FROM atencion_clinica
		WHERE fechaAtencion = $1 AND estadoRegistro = 1
		ORDER BY idAtencion DESC
	`, fecha)
}

func (r *AtencionesRepo) listAtenciones(ctx context.Context, query string, args ...any) ([]atenciones.Atencion, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]atenciones.Atencion, 0)
	for rows.Next() {
		a, err := scanAtencionRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AtencionesRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE atencion_clinica
		SET estadoRegistro = 0
		WHERE idAtencion = $1
	`, id)
	return err
}

func scanAtencionRow(s rowScanner) (atenciones.Atencion, error) {
	var a atenciones.Atencion
	var peso sql.NullFloat64
	var sintomas, diag, trat, obs, control sql.NullString
	var lugar string
	err := s.Scan(
		&a.ID,
		&a.IDAnimal,
		&a.IDPersonal,
		&a.IDMotivoConsulta,
		&a.FechaAtencion,
		&sintomas,
		&peso,
		&diag,
		&trat,
		&obs,
		&control,
		&lugar,
	)
	if err != nil {
		return atenciones.Atencion{}, err
	}
	a.Sintomas = fromNullString(sintomas)
	a.PesoKg = fromNullFloat(peso)
	a.Diagnostico = fromNullString(diag)
	a.Tratamiento = fromNullString(trat)
	a.Observaciones = fromNullString(obs)
	a.FechaControlSugerida = fromNullString(control)
	a.Lugar = atenciones.Lugar(lugar)
	return a, nil
}
