package sqlite

// Los índices únicos son parciales: solo aplican a registros activos, de modo
// que desactivar un registro libera el RUT, nombre o microchip para reuso.
const schema = `
CREATE TABLE IF NOT EXISTS tenedor_responsable (
	idTenedor      INTEGER PRIMARY KEY AUTOINCREMENT,
	rut            TEXT NOT NULL,
	nombres        TEXT NOT NULL,
	apellidos      TEXT NOT NULL,
	telefono       TEXT NOT NULL,
	correo         TEXT,
	direccion      TEXT,
	sector         TEXT NOT NULL,
	observaciones  TEXT,
	estadoRegistro INTEGER NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_tenedor_rut_activo
	ON tenedor_responsable(rut) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS personal_veterinario (
	idPersonal      INTEGER PRIMARY KEY AUTOINCREMENT,
	rut             TEXT NOT NULL,
	nombres         TEXT NOT NULL,
	apellidos       TEXT NOT NULL,
	cargo           TEXT NOT NULL,
	areaTrabajo     TEXT,
	telefono        TEXT,
	correo          TEXT,
	fechaIngreso    TEXT,
	fechaNacimiento TEXT,
	observaciones   TEXT,
	estadoRegistro  INTEGER NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_personal_rut_activo
	ON personal_veterinario(rut) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS especie (
	idEspecie      INTEGER PRIMARY KEY AUTOINCREMENT,
	nombreEspecie  TEXT NOT NULL,
	estadoRegistro INTEGER NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_especie_nombre_activo
	ON especie(nombreEspecie) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS raza (
	idRaza         INTEGER PRIMARY KEY AUTOINCREMENT,
	idEspecie      INTEGER NOT NULL REFERENCES especie(idEspecie),
	nombreRaza     TEXT NOT NULL,
	estadoRegistro INTEGER NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_raza_nombre_activo
	ON raza(idEspecie, nombreRaza) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS motivo_consulta (
	idMotivoConsulta INTEGER PRIMARY KEY AUTOINCREMENT,
	nombreMotivo     TEXT NOT NULL,
	descripcion      TEXT,
	estadoRegistro   INTEGER NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_motivo_nombre_activo
	ON motivo_consulta(nombreMotivo) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS animal (
	idAnimal           INTEGER PRIMARY KEY AUTOINCREMENT,
	idTenedor          INTEGER NOT NULL REFERENCES tenedor_responsable(idTenedor),
	idEspecie          INTEGER NOT NULL REFERENCES especie(idEspecie),
	idRaza             INTEGER REFERENCES raza(idRaza),
	nombre             TEXT NOT NULL,
	sexo               TEXT NOT NULL DEFAULT 'Desconocido',
	fechaNacimientoEst TEXT,
	edadEstimadaMeses  INTEGER,
	color              TEXT,
	estadoReproductivo TEXT,
	numeroMicrochip    TEXT,
	viveDentroCasa     INTEGER,
	conviveConOtros    TEXT,
	observaciones      TEXT,
	estadoRegistro     INTEGER NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_animal_microchip_activo
	ON animal(numeroMicrochip)
	WHERE estadoRegistro = 1 AND numeroMicrochip IS NOT NULL;

CREATE TABLE IF NOT EXISTS atencion_clinica (
	idAtencion           INTEGER PRIMARY KEY AUTOINCREMENT,
	idAnimal             INTEGER NOT NULL REFERENCES animal(idAnimal),
	idPersonal           INTEGER NOT NULL REFERENCES personal_veterinario(idPersonal),
	idMotivoConsulta     INTEGER NOT NULL REFERENCES motivo_consulta(idMotivoConsulta),
	fechaAtencion        TEXT NOT NULL,
	sintomas             TEXT,
	pesoKg               REAL,
	diagnostico          TEXT,
	tratamiento          TEXT,
	observaciones        TEXT,
	fechaControlSugerida TEXT,
	lugarAtencion        TEXT NOT NULL DEFAULT 'Consulta',
	estadoRegistro       INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS ix_atencion_animal ON atencion_clinica(idAnimal);
CREATE INDEX IF NOT EXISTS ix_atencion_fecha ON atencion_clinica(fechaAtencion);

CREATE TABLE IF NOT EXISTS tipo_vacuna (
	idTipoVacuna      INTEGER PRIMARY KEY AUTOINCREMENT,
	nombreVacuna      TEXT NOT NULL,
	descripcion       TEXT,
	idEspecie         INTEGER REFERENCES especie(idEspecie),
	intervaloRecMeses INTEGER,
	estadoRegistro    INTEGER NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_tipo_vacuna_nombre_activo
	ON tipo_vacuna(nombreVacuna COLLATE NOCASE) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS vacuna_aplicada (
	idVacunaAplicada  INTEGER PRIMARY KEY AUTOINCREMENT,
	idAtencion        INTEGER NOT NULL REFERENCES atencion_clinica(idAtencion),
	idTipoVacuna      INTEGER NOT NULL REFERENCES tipo_vacuna(idTipoVacuna),
	fechaAplicacion   TEXT NOT NULL,
	fechaProximaDosis TEXT,
	dosis             TEXT,
	lote              TEXT,
	observaciones     TEXT,
	estadoRegistro    INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS ix_vacuna_aplicada_atencion ON vacuna_aplicada(idAtencion);

CREATE TABLE IF NOT EXISTS tipo_medicamento (
	idTipoMedicamento INTEGER PRIMARY KEY AUTOINCREMENT,
	nombreMedicamento TEXT NOT NULL,
	categoria         TEXT NOT NULL,
	descripcion       TEXT,
	estadoRegistro    INTEGER NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_tipo_medicamento_nombre_activo
	ON tipo_medicamento(nombreMedicamento COLLATE NOCASE) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS medicamento_aplicado (
	idMedicamentoAplicado INTEGER PRIMARY KEY AUTOINCREMENT,
	idAtencion            INTEGER NOT NULL REFERENCES atencion_clinica(idAtencion),
	idTipoMedicamento     INTEGER NOT NULL REFERENCES tipo_medicamento(idTipoMedicamento),
	fechaAplicacion       TEXT NOT NULL,
	dosis                 TEXT,
	via                   TEXT,
	observaciones         TEXT,
	estadoRegistro        INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS ix_medicamento_aplicado_atencion ON medicamento_aplicado(idAtencion);

CREATE TABLE IF NOT EXISTS tipo_desparasitacion (
	idTipoDesparasitacion INTEGER PRIMARY KEY AUTOINCREMENT,
	nombreDesparasitacion TEXT NOT NULL,
	tipo                  TEXT NOT NULL DEFAULT 'Mixta',
	idEspecie             INTEGER REFERENCES especie(idEspecie),
	intervaloRecMeses     INTEGER,
	estadoRegistro        INTEGER NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_tipo_desparasitacion_nombre_activo
	ON tipo_desparasitacion(nombreDesparasitacion COLLATE NOCASE) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS desparasitacion_aplicada (
	idDesparasitacion     INTEGER PRIMARY KEY AUTOINCREMENT,
	idAtencion            INTEGER NOT NULL REFERENCES atencion_clinica(idAtencion),
	idTipoDesparasitacion INTEGER NOT NULL REFERENCES tipo_desparasitacion(idTipoDesparasitacion),
	fechaAplicacion       TEXT NOT NULL,
	fechaProximaDosis     TEXT,
	dosis                 TEXT,
	lote                  TEXT,
	observaciones         TEXT,
	estadoRegistro        INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS ix_desparasitacion_aplicada_atencion ON desparasitacion_aplicada(idAtencion);

CREATE TABLE IF NOT EXISTS usuario_sistema (
	idUsuario       INTEGER PRIMARY KEY AUTOINCREMENT,
	idPersonal      INTEGER REFERENCES personal_veterinario(idPersonal),
	nombreUsuario   TEXT NOT NULL,
	claveEncriptada TEXT NOT NULL,
	rol             TEXT NOT NULL,
	estadoRegistro  INTEGER NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_usuario_nombre_activo
	ON usuario_sistema(nombreUsuario) WHERE estadoRegistro = 1;
`
