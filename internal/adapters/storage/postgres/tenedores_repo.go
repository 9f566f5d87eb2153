package postgres

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/tenedores"
)

type TenedoresRepo struct {
	db *sql.DB
}

func NewTenedoresRepo(db *sql.DB) *TenedoresRepo {
	return &TenedoresRepo{db: db}
}

const tenedorColumns = `idTenedor, rut, nombres, apellidos, telefono, correo, direccion, sector, observaciones`

func (r *TenedoresRepo) Create(ctx context.Context, t tenedores.Tenedor) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO tenedor_responsable
		(rut, nombres, apellidos, telefono, correo, direccion, sector, observaciones, estadoRegistro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1)
		RETURNING idTenedor
	`,
		t.RUT,
		t.Nombres,
		t.Apellidos,
		t.Telefono,
		toNullString(t.Correo),
		toNullString(t.Direccion),
		t.Sector,
		toNullString(t.Observaciones),
	).Scan(&id)
	return id, err
}

func (r *TenedoresRepo) GetByID(ctx context.Context, id int64) (*tenedores.Tenedor, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+tenedorColumns+`
		FROM tenedor_responsable
		WHERE idTenedor = $1 AND estadoRegistro = 1
	`, id)
	return scanTenedor(row)
}

func (r *TenedoresRepo) GetByRUT(ctx context.Context, rut string) (*tenedores.Tenedor, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+tenedorColumns+`
		FROM tenedor_responsable
		WHERE rut = $1 AND estadoRegistro = 1
	`, rut)
	return scanTenedor(row)
}

func (r *TenedoresRepo) ListActive(ctx context.Context) ([]tenedores.Tenedor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+tenedorColumns+`
		FROM tenedor_responsable
		WHERE estadoRegistro = 1
		ORDER BY apellidos, nombres
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tenedores.Tenedor, 0)
	for rows.Next() {
		t, err := scanTenedorRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TenedoresRepo) Update(ctx context.Context, t tenedores.Tenedor) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tenedor_responsable
		SET nombres = $2, apellidos = $3, telefono = $4, correo = $5,
			direccion = $6, sector = $7, observaciones = $8
		WHERE idTenedor = $1 AND estadoRegistro = 1
	`,
		t.ID,
		t.Nombres,
		t.Apellidos,
		t.Telefono,
		toNullString(t.Correo),
		toNullString(t.Direccion),
		t.Sector,
		toNullString(t.Observaciones),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return tenedores.ErrNotFound
	}
	return nil
}

func (r *TenedoresRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tenedor_responsable
		SET estadoRegistro = 0
		WHERE idTenedor = $1
	`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTenedor(row *sql.Row) (*tenedores.Tenedor, error) {
	t, err := scanTenedorRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTenedorRow(s rowScanner) (tenedores.Tenedor, error) {
	var t tenedores.Tenedor
	var correo, direccion, obs sql.NullString
	err := s.Scan(
		&t.ID,
		&t.RUT,
		&t.Nombres,
		&t.Apellidos,
		&t.Telefono,
		&correo,
		&direccion,
		&t.Sector,
		&obs,
	)
	if err != nil {
		return tenedores.Tenedor{}, err
	}
	t.Correo = fromNullString(correo)
	t.Direccion = fromNullString(direccion)
	t.Observaciones = fromNullString(obs)
	return t, nil
}
