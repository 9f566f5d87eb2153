package tenedores

// Tenedor representa al tenedor responsable de uno o más animales.
// El RUT se guarda normalizado (12345678-9) y es único entre los activos.
type Tenedor struct {
	ID        int64
	RUT       string
	Nombres   string
	Apellidos string
	Telefono  string
	Correo    string
	Direccion string
	Sector    string

	Observaciones string
}
