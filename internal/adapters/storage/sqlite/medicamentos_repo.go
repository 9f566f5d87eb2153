package sqlite

import (
	"context"
	"database/sql"

	"vet-clinic-records/internal/domain/medicamentos"
)

type TiposMedicamentoRepo struct {
	db *sql.DB
}

func NewTiposMedicamentoRepo(db *sql.DB) *TiposMedicamentoRepo {
	return &TiposMedicamentoRepo{db: db}
}

const tipoMedicamentoColumns = `idTipoMedicamento, nombreMedicamento, categoria, descripcion`

func (r *TiposMedicamentoRepo) Create(ctx context.Context, t medicamentos.TipoMedicamento) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tipo_medicamento
		(nombreMedicamento, categoria, descripcion, estadoRegistro)
		VALUES (?, ?, ?, 1)
	`,
		t.Nombre,
		string(t.Categoria),
		toNullString(t.Descripcion),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *TiposMedicamentoRepo) GetByID(ctx context.Context, id int64) (*medicamentos.TipoMedicamento, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+tipoMedicamentoColumns+`
		FROM tipo_medicamento
		WHERE idTipoMedicamento = ? AND estadoRegistro = 1
	`, id)
	return scanTipoMedicamento(row)
}

func (r *TiposMedicamentoRepo) GetByNombre(ctx context.Context, nombre string) (*medicamentos.TipoMedicamento, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+tipoMedicamentoColumns+`
		FROM tipo_medicamento
		WHERE nombreMedicamento = ? COLLATE NOCASE AND estadoRegistro = 1
	`, nombre)
	return scanTipoMedicamento(row)
}

func (r *TiposMedicamentoRepo) ListActive(ctx context.Context) ([]medicamentos.TipoMedicamento, error) {
	return r.listTipos(ctx, `
		SELECT `+tipoMedicamentoColumns+`
		FROM tipo_medicamento
		WHERE estadoRegistro = 1
		ORDER BY categoria, nombreMedicamento
	`)
}

func (r *TiposMedicamentoRepo) ListByCategoria(ctx context.Context, categoria medicamentos.Categoria) ([]medicamentos.TipoMedicamento, error) {
	return r.listTipos(ctx, `
		SELECT `+tipoMedicamentoColumns+`
		FROM tipo_medicamento
		WHERE categoria = ? AND estadoRegistro = 1
		ORDER BY nombreMedicamento
	`, string(categoria))
}

func (r *TiposMedicamentoRepo) listTipos(ctx context.Context, query string, args ...any) ([]medicamentos.TipoMedicamento, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medicamentos.TipoMedicamento, 0)
	for rows.Next() {
		t, err := scanTipoMedicamentoRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TiposMedicamentoRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tipo_medicamento SET estadoRegistro = 0 WHERE idTipoMedicamento = ?
	`, id)
	return err
}

func scanTipoMedicamento(row *sql.Row) (*medicamentos.TipoMedicamento, error) {
	t, err := scanTipoMedicamentoRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTipoMedicamentoRow(s rowScanner) (medicamentos.TipoMedicamento, error) {
	var t medicamentos.TipoMedicamento
	var categoria string
	var desc sql.NullString
	if err := s.Scan(&t.ID, &t.Nombre, &categoria, &desc); err != nil {
		return medicamentos.TipoMedicamento{}, err
	}
	t.Categoria = medicamentos.Categoria(categoria)
	t.Descripcion = fromNullString(desc)
	return t, nil
}

type MedicamentosAplicadosRepo struct {
	db *sql.DB
}

func NewMedicamentosAplicadosRepo(db *sql.DB) *MedicamentosAplicadosRepo {
	return &MedicamentosAplicadosRepo{db: db}
}

const medicamentoAplicadoColumns = `idMedicamentoAplicado, idAtencion, idTipoMedicamento,
	fechaAplicacion, dosis, via, observaciones`

func (r *MedicamentosAplicadosRepo) Create(ctx context.Context, m medicamentos.MedicamentoAplicado) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO medicamento_aplicado
		(idAtencion, idTipoMedicamento, fechaAplicacion, dosis, via, observaciones, estadoRegistro)
		VALUES (?, ?, ?, ?, ?, ?, 1)
	`,
		m.IDAtencion,
		m.IDTipoMedicamento,
		m.FechaAplicacion,
		toNullString(m.Dosis),
		toNullString(string(m.Via)),
		toNullString(m.Observaciones),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *MedicamentosAplicadosRepo) GetByID(ctx context.Context, id int64) (*medicamentos.MedicamentoAplicado, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+medicamentoAplicadoColumns+`
		FROM medicamento_aplicado
		WHERE idMedicamentoAplicado = ? AND estadoRegistro = 1
	`, id)
	m, err := scanMedicamentoAplicadoRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MedicamentosAplicadosRepo) ListByAtencion(ctx context.Context, idAtencion int64) ([]medicamentos.MedicamentoAplicado, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+medicamentoAplicadoColumns+`
		FROM medicamento_aplicado
		WHERE idAtencion = ? AND estadoRegistro = 1
		ORDER BY fechaAplicacion DESC, idMedicamentoAplicado DESC
	`, idAtencion)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medicamentos.MedicamentoAplicado, 0)
	for rows.Next() {
		m, err := scanMedicamentoAplicadoRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MedicamentosAplicadosRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE medicamento_aplicado SET estadoRegistro = 0 WHERE idMedicamentoAplicado = ?
	`, id)
	return err
}

func scanMedicamentoAplicadoRow(s rowScanner) (medicamentos.MedicamentoAplicado, error) {
	var m medicamentos.MedicamentoAplicado
	var dosis, via, obs sql.NullString
	err := s.Scan(
		&m.ID,
		&m.IDAtencion,
		&m.IDTipoMedicamento,
		&m.FechaAplicacion,
		&dosis,
		&via,
		&obs,
	)
	if err != nil {
		return medicamentos.MedicamentoAplicado{}, err
	}
	m.Dosis = fromNullString(dosis)
	m.Via = medicamentos.Via(fromNullString(via))
	m.Observaciones = fromNullString(obs)
	return m, nil
}
