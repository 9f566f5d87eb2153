package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/personal"
)

type PersonalRepo struct {
	db *sql.DB
}

func NewPersonalRepo(db *sql.DB) *PersonalRepo {
	return &PersonalRepo{db: db}
}

const personalColumns = `idPersonal, rut, nombres, apellidos, cargo, areaTrabajo, telefono, correo, fechaIngreso, fechaNacimiento, observaciones`

func (r *PersonalRepo) Create(ctx context.Context, p personal.Personal) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO personal_veterinario
		(rut, nombres, apellidos, cargo, areaTrabajo, telefono, correo,
		 fechaIngreso, fechaNacimiento, observaciones, estadoRegistro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1)
		RETURNING idPersonal
	`,
		p.RUT,
		p.Nombres,
		p.Apellidos,
		p.Cargo,
		toNullString(p.AreaTrabajo),
		toNullString(p.Telefono),
		toNullString(p.Correo),
		toNullString(p.FechaIngreso),
		toNullString(p.FechaNacimiento),
		toNullString(p.Observaciones),
	).Scan(&id)
	return id, err
}

func (r *PersonalRepo) GetByID(ctx context.Context, id int64) (*personal.Personal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+personalColumns+`
		FROM personal_veterinario
		WHERE idPersonal = $1 AND estadoRegistro = 1
	`, id)
	return scanPersonal(row)
}

func (r *PersonalRepo) GetByRUT(ctx context.Context, rut string) (*personal.Personal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+personalColumns+`
		FROM personal_veterinario
		WHERE rut = $1 AND estadoRegistro = 1
	`, rut)
	return scanPersonal(row)
}

func (r *PersonalRepo) ListActive(ctx context.Context) ([]personal.Personal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+personalColumns+`
		FROM personal_veterinario
		WHERE estadoRegistro = 1
		ORDER BY apellidos, nombres
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]personal.Personal, 0)
	for rows.Next() {
		p, err := scanPersonalRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PersonalRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE personal_veterinario
		SET estadoRegistro = 0
		WHERE idPersonal = $1
	`, id)
	return err
}

func scanPersonal(row *sql.Row) (*personal.Personal, error) {
	p, err := scanPersonalRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPersonalRow(s rowScanner) (personal.Personal, error) {
	var p personal.Personal
	var area, tel, correo, ingreso, nacimiento, obs sql.NullString
	err := s.Scan(
		&p.ID,
		&p.RUT,
		&p.Nombres,
		&p.Apellidos,
		&p.Cargo,
		&area,
		&tel,
		&correo,
		&ingreso,
		&nacimiento,
		&obs,
	)
	if err != nil {
		return personal.Personal{}, err
	}
	p.AreaTrabajo = fromNullString(area)
	p.Telefono = fromNullString(tel)
	p.Correo = fromNullString(correo)
	p.FechaIngreso = fromNullString(ingreso)
	p.FechaNacimiento = fromNullString(nacimiento)
	p.Observaciones = fromNullString(obs)
	return p, nil
}
