package desparasitaciones

// Tipo de desparasitación según el parásito que cubre.
// @Enum Interna, Externa, Mixta
type Tipo string

const (
	TipoInterna Tipo = "Interna"
	TipoExterna Tipo = "Externa"
	TipoMixta   Tipo = "Mixta"
)

// TipoDesparasitacion es la entrada del catálogo de desparasitantes. El
// nombre es único entre los tipos activos sin distinguir mayúsculas.
type TipoDesparasitacion struct {
	ID     int64
	Nombre string
	Tipo   Tipo

	// IDEspecie acota el producto a una especie; nil si sirve para cualquiera.
	IDEspecie *int64

	// IntervaloRecMeses es el intervalo recomendado hasta la próxima dosis.
	IntervaloRecMeses *int
}

// DesparasitacionAplicada registra una dosis puesta durante una atención.
type DesparasitacionAplicada struct {
	ID                    int64
	IDAtencion            int64
	IDTipoDesparasitacion int64

	FechaAplicacion   string
	FechaProximaDosis string
	Dosis             string
	Lote              string
	Observaciones     string
}
