package personal

// Personal representa a un integrante del equipo de la clínica.
// Las fechas se manejan como texto YYYY-MM-DD ya validado, igual que en el store.
type Personal struct {
	ID          int64
	RUT         string
	Nombres     string
	Apellidos   string
	Cargo       string
	AreaTrabajo string
	Telefono    string
	Correo      string

	FechaIngreso    string
	FechaNacimiento string

	Observaciones string
}
