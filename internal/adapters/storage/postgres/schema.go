package postgres

// Mismo modelo que el adaptador sqlite, en dialecto Postgres. Los índices
// únicos parciales solo cubren registros activos.
const schema = `
CREATE TABLE IF NOT EXISTS tenedor_responsable (
	idTenedor      BIGSERIAL PRIMARY KEY,
	rut            TEXT NOT NULL,
	nombres        TEXT NOT NULL,
	apellidos      TEXT NOT NULL,
	telefono       TEXT NOT NULL,
	correo         TEXT,
	direccion      TEXT,
	sector         TEXT NOT NULL,
	observaciones  TEXT,
	estadoRegistro SMALLINT NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_tenedor_rut_activo
	ON tenedor_responsable(rut) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS personal_veterinario (
	idPersonal      BIGSERIAL PRIMARY KEY,
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
	estadoRegistro  SMALLINT NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_personal_rut_activo
	ON personal_veterinario(rut) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS especie (
	idEspecie      BIGSERIAL PRIMARY KEY,
	nombreEspecie  TEXT NOT NULL,
	estadoRegistro SMALLINT NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_especie_nombre_activo
	ON especie(nombreEspecie) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS raza (
	idRaza         BIGSERIAL PRIMARY KEY,
	idEspecie      BIGINT NOT NULL REFERENCES especie(idEspecie),
	nombreRaza     TEXT NOT NULL,
	estadoRegistro SMALLINT NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_raza_nombre_activo
	ON raza(idEspecie, nombreRaza) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS motivo_consulta (
	idMotivoConsulta BIGSERIAL PRIMARY KEY,
	nombreMotivo     TEXT NOT NULL,
	descripcion      TEXT,
	estadoRegistro   SMALLINT NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_motivo_nombre_activo
	ON motivo_consulta(nombreMotivo) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS animal (
	idAnimal           BIGSERIAL PRIMARY KEY,
	idTenedor          BIGINT NOT NULL REFERENCES tenedor_responsable(idTenedor),
	idEspecie          BIGINT NOT NULL REFERENCES especie(idEspecie),
	idRaza             BIGINT REFERENCES raza(idRaza),
	nombre             TEXT NOT NULL,
	sexo               TEXT NOT NULL DEFAULT 'Desconocido',
	fechaNacimientoEst TEXT,
	edadEstimadaMeses  INTEGER,
	color              TEXT,
	estadoReproductivo TEXT,
	numeroMicrochip    TEXT,
	viveDentroCasa     BOOLEAN,
	conviveConOtros    TEXT,
	observaciones      TEXT,
	estadoRegistro     SMALLINT NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_animal_microchip_activo
	ON animal(numeroMicrochip)
	WHERE estadoRegistro = 1 AND numeroMicrochip IS NOT NULL;

CREATE TABLE IF NOT EXISTS atencion_clinica (
	idAtencion           BIGSERIAL PRIMARY KEY,
	idAnimal             BIGINT NOT NULL REFERENCES animal(idAnimal),
	idPersonal           BIGINT NOT NULL REFERENCES personal_veterinario(idPersonal),
	idMotivoConsulta     BIGINT NOT NULL REFERENCES motivo_consulta(idMotivoConsulta),
	fechaAtencion        TEXT NOT NULL,
	sintomas             TEXT,
	pesoKg               DOUBLE PRECISION,
	diagnostico          TEXT,
	tratamiento          TEXT,
	observaciones        TEXT,
	fechaControlSugerida TEXT,
	lugarAtencion        TEXT NOT NULL DEFAULT 'Consulta',
	estadoRegistro       SMALLINT NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS ix_atencion_animal ON atencion_clinica(idAnimal);
CREATE INDEX IF NOT EXISTS ix_atencion_fecha ON atencion_clinica(fechaAtencion);

CREATE TABLE IF NOT EXISTS tipo_vacuna (
	idTipoVacuna      BIGSERIAL PRIMARY KEY,
	nombreVacuna      TEXT NOT NULL,
	descripcion       TEXT,
	idEspecie         BIGINT REFERENCES especie(idEspecie),
	intervaloRecMeses INTEGER,
	estadoRegistro    SMALLINT NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_tipo_vacuna_nombre_activo
	ON tipo_vacuna(lower(nombreVacuna)) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS vacuna_aplicada (
	idVacunaAplicada  BIGSERIAL PRIMARY KEY,
	idAtencion        BIGINT NOT NULL REFERENCES atencion_clinica(idAtencion),
	idTipoVacuna      BIGINT NOT NULL REFERENCES tipo_vacuna(idTipoVacuna),
	fechaAplicacion   TEXT NOT NULL,
	fechaProximaDosis TEXT,
	dosis             TEXT,
	lote              TEXT,
	observaciones     TEXT,
	estadoRegistro    SMALLINT NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS ix_vacuna_aplicada_atencion ON vacuna_aplicada(idAtencion);

CREATE TABLE IF NOT EXISTS tipo_medicamento (
	idTipoMedicamento BIGSERIAL PRIMARY KEY,
	nombreMedicamento TEXT NOT NULL,
	categoria         TEXT NOT NULL,
	descripcion       TEXT,
	estadoRegistro    SMALLINT NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_tipo_medicamento_nombre_activo
	ON tipo_medicamento(lower(nombreMedicamento)) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS medicamento_aplicado (
	idMedicamentoAplicado BIGSERIAL PRIMARY KEY,
	idAtencion            BIGINT NOT NULL REFERENCES atencion_clinica(idAtencion),
	idTipoMedicamento     BIGINT NOT NULL REFERENCES tipo_medicamento(idTipoMedicamento),
	fechaAplicacion       TEXT NOT NULL,
	dosis                 TEXT,
	via                   TEXT,
	observaciones         TEXT,
	estadoRegistro        SMALLINT NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS ix_medicamento_aplicado_atencion ON medicamento_aplicado(idAtencion);

CREATE TABLE IF NOT EXISTS tipo_desparasitacion (
	idTipoDesparasitacion BIGSERIAL PRIMARY KEY,
	nombreDesparasitacion TEXT NOT NULL,
	tipo                  TEXT NOT NULL DEFAULT 'Mixta',
	idEspecie             BIGINT REFERENCES especie(idEspecie),
	intervaloRecMeses     INTEGER,
	estadoRegistro        SMALLINT NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_tipo_desparasitacion_nombre_activo
	ON tipo_desparasitacion(lower(nombreDesparasitacion)) WHERE estadoRegistro = 1;

CREATE TABLE IF NOT EXISTS desparasitacion_aplicada (
	idDesparasitacion     BIGSERIAL PRIMARY KEY,
	idAtencion            BIGINT NOT NULL REFERENCES atencion_clinica(idAtencion),
	idTipoDesparasitacion BIGINT NOT NULL REFERENCES tipo_desparasitacion(idTipoDesparasitacion),
	fechaAplicacion       TEXT NOT NULL,
	fechaProximaDosis     TEXT,
	dosis                 TEXT,
	lote                  TEXT,
	observaciones         TEXT,
	estadoRegistro        SMALLINT NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS ix_desparasitacion_aplicada_atencion ON desparasitacion_aplicada(idAtencion);

CREATE TABLE IF NOT EXISTS usuario_sistema (
	idUsuario       BIGSERIAL PRIMARY KEY,
	idPersonal      BIGINT REFERENCES personal_veterinario(idPersonal),
	nombreUsuario   TEXT NOT NULL,
	claveEncriptada TEXT NOT NULL,
	rol             TEXT NOT NULL,
	estadoRegistro  SMALLINT NOT NULL DEFAULT 1
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_usuario_nombre_activo
	ON usuario_sistema(nombreUsuario) WHERE estadoRegistro = 1;
`
