package medicamentos

// Categoria del medicamento, en minúsculas.
// @Enum antibiotico, antiinflamatorio, analgesico, vitaminas, fluidoterapia, gastroprotector, otro
type Categoria string

const (
	CategoriaAntibiotico      Categoria = "antibiotico"
	CategoriaAntiinflamatorio Categoria = "antiinflamatorio"
	CategoriaAnalgesico       Categoria = "analgesico"
	CategoriaVitaminas        Categoria = "vitaminas"
	CategoriaFluidoterapia    Categoria = "fluidoterapia"
	CategoriaGastroprotector  Categoria = "gastroprotector"
	CategoriaOtro             Categoria = "otro"
)

// Via de administración del medicamento.
// @Enum IM, IV, VO, SC, Topica, Otra
type Via string

const (
	ViaIM     Via = "IM"
	ViaIV     Via = "IV"
	ViaVO     Via = "VO"
	ViaSC     Via = "SC"
	ViaTopica Via = "Topica"
	ViaOtra   Via = "Otra"
)

// TipoMedicamento es la entrada del catálogo de medicamentos. El nombre es
// único entre los tipos activos sin distinguir mayúsculas.
type TipoMedicamento struct {
	ID          int64
	Nombre      string
	Categoria   Categoria
	Descripcion string
}

// MedicamentoAplicado registra un medicamento administrado en una atención.
type MedicamentoAplicado struct {
	ID                int64
	IDAtencion        int64
	IDTipoMedicamento int64

	FechaAplicacion string
	Dosis           string
	Via             Via // vacío cuando no se informó
	Observaciones   string
}
