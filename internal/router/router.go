package router

import (
	"database/sql"
	"net/http"

	pg "vet-clinic-records/internal/adapters/storage/postgres"
	"vet-clinic-records/internal/adapters/storage/sqlite"
	"vet-clinic-records/internal/domain/animales"
	"vet-clinic-records/internal/domain/atenciones"
	"vet-clinic-records/internal/domain/desparasitaciones"
	"vet-clinic-records/internal/domain/especies"
	"vet-clinic-records/internal/domain/medicamentos"
	"vet-clinic-records/internal/domain/motivos"
	"vet-clinic-records/internal/domain/personal"
	"vet-clinic-records/internal/domain/razas"
	"vet-clinic-records/internal/domain/tenedores"
	"vet-clinic-records/internal/domain/usuarios"
	"vet-clinic-records/internal/domain/vacunas"
	"vet-clinic-records/internal/middleware"
	"vet-clinic-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Options struct {
	// DB ya abierta y con el esquema aplicado.
	DB *sql.DB
	// Driver decide qué adaptador envuelve la DB. Default: sqlite.
	Driver string

	Log logger.Logger // puede ser nil
}

// Repos agrupa los repositorios de todos los módulos sobre una misma DB.
type Repos struct {
	Tenedores tenedores.Repository
	Personal  personal.Repository
	Especies  especies.Repository
	Razas     razas.Repository
	Motivos   motivos.Repository
	Animales  animales.Repository

	Atenciones atenciones.Repository

	TiposVacuna      vacunas.TipoRepository
	VacunasAplicadas vacunas.AplicadaRepository

	TiposMedicamento      medicamentos.TipoRepository
	MedicamentosAplicados medicamentos.AplicadoRepository

	TiposDesparasitacion       desparasitaciones.TipoRepository
	DesparasitacionesAplicadas desparasitaciones.AplicadaRepository

	Usuarios usuarios.Repository
}

// NewRepos elige el adaptador según driver.
func NewRepos(db *sql.DB, driver string) Repos {
	if driver == DriverPostgres {
		return Repos{
			Tenedores:  pg.NewTenedoresRepo(db),
			Personal:   pg.NewPersonalRepo(db),
			Especies:   pg.NewEspeciesRepo(db),
			Razas:      pg.NewRazasRepo(db),
			Motivos:    pg.NewMotivosRepo(db),
			Animales:   pg.NewAnimalesRepo(db),
			Atenciones: pg.NewAtencionesRepo(db),

			TiposVacuna:      pg.NewTiposVacunaRepo(db),
			VacunasAplicadas: pg.NewVacunasAplicadasRepo(db),

			TiposMedicamento:      pg.NewTiposMedicamentoRepo(db),
			MedicamentosAplicados: pg.NewMedicamentosAplicadosRepo(db),

			TiposDesparasitacion:       pg.NewTiposDesparasitacionRepo(db),
			DesparasitacionesAplicadas: pg.NewDesparasitacionesAplicadasRepo(db),

			Usuarios: pg.NewUsuariosRepo(db),
		}
	}

	return Repos{
		Tenedores:  sqlite.NewTenedoresRepo(db),
		Personal:   sqlite.NewPersonalRepo(db),
		Especies:   sqlite.NewEspeciesRepo(db),
		Razas:      sqlite.NewRazasRepo(db),
		Motivos:    sqlite.NewMotivosRepo(db),
		Animales:   sqlite.NewAnimalesRepo(db),
		Atenciones: sqlite.NewAtencionesRepo(db),

		TiposVacuna:      sqlite.NewTiposVacunaRepo(db),
		VacunasAplicadas: sqlite.NewVacunasAplicadasRepo(db),

		TiposMedicamento:      sqlite.NewTiposMedicamentoRepo(db),
		MedicamentosAplicados: sqlite.NewMedicamentosAplicadosRepo(db),

		TiposDesparasitacion:       sqlite.NewTiposDesparasitacionRepo(db),
		DesparasitacionesAplicadas: sqlite.NewDesparasitacionesAplicadasRepo(db),

		Usuarios: sqlite.NewUsuariosRepo(db),
	}
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if opts.Log != nil {
		r.Use(middleware.RequestLogger(opts.Log))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	repos := NewRepos(opts.DB, opts.Driver)

	// Services por módulo. Los repos cumplen directamente las interfaces
	// resolver de los módulos que validan referencias cruzadas.
	tenedoresSvc := tenedores.NewService(repos.Tenedores)
	personalSvc := personal.NewService(repos.Personal)
	especiesSvc := especies.NewService(repos.Especies)
	razasSvc := razas.NewService(repos.Razas, repos.Especies)
	motivosSvc := motivos.NewService(repos.Motivos)
	animalesSvc := animales.NewService(repos.Animales)
	atencionesSvc := atenciones.NewService(repos.Atenciones, repos.Animales, repos.Personal, repos.Motivos)

	tiposVacunaSvc := vacunas.NewTipoService(repos.TiposVacuna, repos.Especies)
	vacunasAplicadasSvc := vacunas.NewAplicadaService(repos.VacunasAplicadas)

	tiposMedicamentoSvc := medicamentos.NewTipoService(repos.TiposMedicamento)
	medicamentosAplicadosSvc := medicamentos.NewAplicadoService(
		repos.MedicamentosAplicados, repos.Atenciones, repos.TiposMedicamento)

	tiposDesparasitacionSvc := desparasitaciones.NewTipoService(repos.TiposDesparasitacion, repos.Especies)
	desparasitacionesAplicadasSvc := desparasitaciones.NewAplicadaService(repos.DesparasitacionesAplicadas)

	usuariosSvc := usuarios.NewService(repos.Usuarios)

	// Rutas por módulo
	tenedores.RegisterRoutes(r, tenedoresSvc)
	personal.RegisterRoutes(r, personalSvc)
	especies.RegisterRoutes(r, especiesSvc)
	razas.RegisterRoutes(r, razasSvc)
	motivos.RegisterRoutes(r, motivosSvc)
	animales.RegisterRoutes(r, animalesSvc)
	atenciones.RegisterRoutes(r, atencionesSvc)
	vacunas.RegisterRoutes(r, tiposVacunaSvc, vacunasAplicadasSvc)
	medicamentos.RegisterRoutes(r, tiposMedicamentoSvc, medicamentosAplicadosSvc)
	desparasitaciones.RegisterRoutes(r, tiposDesparasitacionSvc, desparasitacionesAplicadasSvc)
	usuarios.RegisterRoutes(r, usuariosSvc)

	return r
}
