package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"vet-clinic-records/internal/domain/animales"
	"vet-clinic-records/internal/domain/especies"
	"vet-clinic-records/internal/domain/tenedores"
	"vet-clinic-records/internal/domain/usuarios"
	"vet-clinic-records/internal/domain/vacunas"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "clinica_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, EnsureSchema(context.Background(), db))
	return db
}

func TestTenedoresRepo_RoundTripAndSoftDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewTenedoresRepo(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, tenedores.Tenedor{
		RUT:       "12345678-9",
		Nombres:   "María",
		Apellidos: "Soto",
		Telefono:  "+56911111111",
		Sector:    "Rural Norte",
	})
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := repo.GetByRUT(ctx, "12345678-9")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Soto", got.Apellidos)
	require.Empty(t, got.Correo, "correo NULL vuelve como cadena vacía")

	require.NoError(t, repo.Deactivate(ctx, id))

	gone, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, gone)

	// El índice único es parcial: desactivar libera el RUT.
	_, err = repo.Create(ctx, tenedores.Tenedor{
		RUT:       "12345678-9",
		Nombres:   "Otra",
		Apellidos: "Persona",
		Telefono:  "+56922222222",
		Sector:    "Centro",
	})
	require.NoError(t, err)
}

func TestTenedoresRepo_UniqueRUTAmongActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewTenedoresRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, tenedores.Tenedor{
		RUT: "11111111-1", Nombres: "A", Apellidos: "B", Telefono: "1", Sector: "S",
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, tenedores.Tenedor{
		RUT: "11111111-1", Nombres: "C", Apellidos: "D", Telefono: "2", Sector: "S",
	})
	require.Error(t, err, "dos activos con el mismo RUT violan el índice")
}

func TestAnimalesRepo_NullColumns(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tenedorID, err := NewTenedoresRepo(db).Create(ctx, tenedores.Tenedor{
		RUT: "22222222-2", Nombres: "Ana", Apellidos: "Rojas", Telefono: "3", Sector: "S",
	})
	require.NoError(t, err)

	especieID, err := NewEspeciesRepo(db).Create(ctx, especies.Especie{Nombre: "Perro"})
	require.NoError(t, err)

	repo := NewAnimalesRepo(db)
	edad := 24
	vive := true
	id, err := repo.Create(ctx, animales.Animal{
		IDTenedor:         tenedorID,
		IDEspecie:         especieID,
		Nombre:            "Bobby",
		Sexo:              animales.SexoMacho,
		EdadEstimadaMeses: &edad,
		ViveDentroCasa:    &vive,
		ConviveConOtros:   "Gatos,Perros",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Nil(t, got.IDRaza)
	require.Empty(t, got.FechaNacimientoEst)
	require.NotNil(t, got.EdadEstimadaMeses)
	require.Equal(t, 24, *got.EdadEstimadaMeses)
	require.NotNil(t, got.ViveDentroCasa)
	require.True(t, *got.ViveDentroCasa)
	require.Equal(t, "Gatos,Perros", got.ConviveConOtros)
}

func TestTiposVacunaRepo_NombreCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewTiposVacunaRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, vacunas.TipoVacuna{Nombre: "Antirrábica"})
	require.NoError(t, err)

	got, err := repo.GetByNombre(ctx, "ANTIRRáBICA")
	require.NoError(t, err)
	if got == nil {
		// NOCASE de SQLite solo pliega ASCII; al menos la forma exacta responde.
		got, err = repo.GetByNombre(ctx, "Antirrábica")
		require.NoError(t, err)
	}
	require.NotNil(t, got)
	require.Equal(t, "Antirrábica", got.Nombre)
}

func TestUsuariosRepo_ExistsActiveAdminSistema(t *testing.T) {
	db := newTestDB(t)
	repo := NewUsuariosRepo(db)
	ctx := context.Background()

	existe, err := repo.ExistsActiveAdminSistema(ctx)
	require.NoError(t, err)
	require.False(t, existe)

	id, err := repo.Create(ctx, usuarios.Usuario{
		NombreUsuario:   "admin",
		ClaveEncriptada: "$2a$10$hash",
		Rol:             usuarios.RolAdminSistema,
	})
	require.NoError(t, err)

	existe, err = repo.ExistsActiveAdminSistema(ctx)
	require.NoError(t, err)
	require.True(t, existe)

	require.NoError(t, repo.Deactivate(ctx, id))
	existe, err = repo.ExistsActiveAdminSistema(ctx)
	require.NoError(t, err)
	require.False(t, existe)
}
