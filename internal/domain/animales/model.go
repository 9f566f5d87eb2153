package animales

// Sexo del animal.
// @Enum M, H, Desconocido
type Sexo string

const (
	SexoMacho       Sexo = "M"
	SexoHembra      Sexo = "H"
	SexoDesconocido Sexo = "Desconocido"
)

// Animal representa a un animal registrado, siempre asociado a un tenedor.
// Lleva a lo más uno entre fechaNacimientoEst y edadEstimadaMeses.
type Animal struct {
	ID        int64
	IDTenedor int64
	IDEspecie int64
	IDRaza    *int64

	Nombre string
	Sexo   Sexo

	FechaNacimientoEst string
	EdadEstimadaMeses  *int

	Color              string
	EstadoReproductivo string

	// NumeroMicrochip es opcional pero único entre animales activos.
	NumeroMicrochip string

	ViveDentroCasa *bool

	// ConviveConOtros se guarda como lista normalizada unida por comas
	// ("Gatos,Perros"), o vacío cuando no aplica.
	ConviveConOtros string

	Observaciones string
}
