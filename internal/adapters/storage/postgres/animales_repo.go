package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/animales"
)

type AnimalesRepo struct {
	db *sql.DB
}

func NewAnimalesRepo(db *sql.DB) *AnimalesRepo {
	return &AnimalesRepo{db: db}
}

const animalColumns = `idAnimal, idTenedor, idEspecie, idRaza, nombre, sexo,
	fechaNacimientoEst, edadEstimadaMeses, color, estadoReproductivo,
	numeroMicrochip, viveDentroCasa, conviveConOtros, observaciones`

func (r *AnimalesRepo) Create(ctx context.Context, a animales.Animal) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO animal
		(idTenedor, idEspecie, idRaza, nombre, sexo, fechaNacimientoEst, edadEstimadaMeses,
		 color, estadoReproductivo, numeroMicrochip, viveDentroCasa, conviveConOtros,
		 observaciones, estadoRegistro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 1)
		RETURNING idAnimal
	`,
		a.IDTenedor,
		a.IDEspecie,
		toNullInt64(a.IDRaza),
		a.Nombre,
		string(a.Sexo),
		toNullString(a.FechaNacimientoEst),
		toNullInt(a.EdadEstimadaMeses),
		toNullString(a.Color),
		toNullString(a.EstadoReproductivo),
		toNullString(a.NumeroMicrochip),
		toNullBool(a.ViveDentroCasa),
		toNullString(a.ConviveConOtros),
		toNullString(a.Observaciones),
	).Scan(&id)
	return id, err
}

func (r *AnimalesRepo) GetByID(ctx context.Context, id int64) (*animales.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+animalColumns+`
		FROM animal
		WHERE idAnimal = $1 AND estadoRegistro = 1
	`, id)
	return scanAnimal(row)
}

func (r *AnimalesRepo) GetByMicrochip(ctx context.Context, microchip string) (*animales.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+animalColumns+`
		FROM animal
		WHERE numeroMicrochip = $1 AND estadoRegistro = 1
	`, microchip)
	return scanAnimal(row)
}

func (r *AnimalesRepo) ListActive(ctx context.Context) ([]animales.Animal, error) {
	return r.listAnimales(ctx, `
		SELECT `+animalColumns+`
		FROM animal
		WHERE estadoRegistro = 1
		ORDER BY nombre
	`)
}

func (r *AnimalesRepo) ListByTenedor(ctx context.Context, idTenedor int64) ([]animales.Animal, error) {
	return r.listAnimales(ctx, `
		SELECT `+animalColumns+`
		FROM animal
		WHERE idTenedor = $1 AND estadoRegistro = 1
		ORDER BY nombre
	`, idTenedor)
}

func (r *AnimalesRepo) listAnimales(ctx context.Context, query string, args ...any) ([]animales.Animal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animales.Animal, 0)
	for rows.Next() {
		a, err := scanAnimalRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalesRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE animal
		SET estadoRegistro = 0
		WHERE idAnimal = $1
	`, id)
	return err
}

func scanAnimal(row *sql.Row) (*animales.Animal, error) {
	a, err := scanAnimalRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanAnimalRow(s rowScanner) (animales.Animal, error) {
	var a animales.Animal
	var idRaza sql.NullInt64
	var edad sql.NullInt64
	var vive sql.NullBool
	var fechaNac, color, estRepro, chip, convive, obs sql.NullString
	var sexo string
	err := s.Scan(
		&a.ID,
		&a.IDTenedor,
		&a.IDEspecie,
		&idRaza,
		&a.Nombre,
		&sexo,
		&fechaNac,
		&edad,
		&color,
		&estRepro,
		&chip,
		&vive,
		&convive,
		&obs,
	)
	if err != nil {
		return animales.Animal{}, err
	}
	a.IDRaza = fromNullInt64(idRaza)
	a.Sexo = animales.Sexo(sexo)
	a.FechaNacimientoEst = fromNullString(fechaNac)
	a.EdadEstimadaMeses = fromNullInt(edad)
	a.Color = fromNullString(color)
	a.EstadoReproductivo = fromNullString(estRepro)
	a.NumeroMicrochip = fromNullString(chip)
	a.ViveDentroCasa = fromNullBool(vive)
	a.ConviveConOtros = fromNullString(convive)
	a.Observaciones = fromNullString(obs)
	return a, nil
}
