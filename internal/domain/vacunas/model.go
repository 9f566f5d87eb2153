package vacunas

// TipoVacuna es la entrada del catálogo de vacunas. El nombre es único entre
// los tipos activos sin distinguir mayúsculas.
type TipoVacuna struct {
	ID          int64
	Nombre      string
	Descripcion string

	// IDEspecie acota la vacuna a una especie; nil si sirve para cualquiera.
	IDEspecie *int64

	// IntervaloRecMeses es el intervalo recomendado hasta la próxima dosis.
	IntervaloRecMeses *int
}

// VacunaAplicada registra una dosis puesta durante una atención.
type VacunaAplicada struct {
	ID           int64
	IDAtencion   int64
	IDTipoVacuna int64

	FechaAplicacion   string
	FechaProximaDosis string
	Dosis             string
	Lote              string
	Observaciones     string
}
