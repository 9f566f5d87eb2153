package usuarios

// Rol del usuario dentro del sistema.
// @Enum admin_sistema, veterinario, tecnico, administrativo
type Rol string

const (
	RolAdminSistema   Rol = "admin_sistema"
	RolVeterinario    Rol = "veterinario"
	RolTecnico        Rol = "tecnico"
	RolAdministrativo Rol = "administrativo"
)

// EsClinico indica si el rol atiende pacientes.
func (r Rol) EsClinico() bool {
	return r == RolVeterinario || r == RolTecnico
}

// EsAdminNormal indica el perfil administrativo de la clínica.
func (r Rol) EsAdminNormal() bool {
	return r == RolAdministrativo
}

// EsAdminSistema indica el perfil con control total del sistema.
func (r Rol) EsAdminSistema() bool {
	return r == RolAdminSistema
}

// Usuario es una cuenta de acceso. NombreUsuario se guarda en minúsculas y
// es único entre los usuarios activos. ClaveEncriptada es el hash bcrypt y
// nunca sale hacia los clientes.
type Usuario struct {
	ID              int64
	IDPersonal      *int64
	NombreUsuario   string
	ClaveEncriptada string
	Rol             Rol
}
