package atenciones

// Lugar donde se realizó la atención.
// @Enum Consulta, Operativo, Domicilio
type Lugar string

const (
	LugarConsulta  Lugar = "Consulta"
	LugarOperativo Lugar = "Operativo"
	LugarDomicilio Lugar = "Domicilio"
)

// Atencion es una atención clínica: referencia a un animal, al personal que
// atendió y al motivo de consulta, todos activos al momento de crearla.
type Atencion struct {
	ID               int64
	IDAnimal         int64
	IDPersonal       int64
	IDMotivoConsulta int64

	FechaAtencion string

	Sintomas    string
	PesoKg      *float64
	Diagnostico string
	Tratamiento string

	Observaciones        string
	FechaControlSugerida string
	Lugar                Lugar
}
