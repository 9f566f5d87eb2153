package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"vet-clinic-records/internal/adapters/storage/sqlite"
	"vet-clinic-records/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "clinica.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := sqlite.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{
		DB:     db,
		Driver: router.DriverSQLite,
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_FichaClinica(t *testing.T) {
	ts := newTestServer(t)

	// 1) Tenedor
	tenedorID := createResource(t, ts.URL, "/tenedores", map[string]any{
		"rut":       "12.345.678-5",
		"nombres":   "maría josé",
		"apellidos": "pérez soto",
		"telefono":  "+56911112222",
		"sector":    "Rural Norte",
	}, "idTenedor")

	// 2) Catálogos
	especieID := createResource(t, ts.URL, "/especies", map[string]any{
		"nombreEspecie": "Canina",
	}, "idEspecie")
	razaID := createResource(t, ts.URL, "/razas", map[string]any{
		"idEspecie":  especieID,
		"nombreRaza": "Mestizo",
	}, "idRaza")
	motivoID := createResource(t, ts.URL, "/motivos", map[string]any{
		"nombreMotivo": "Control sano",
	}, "idMotivoConsulta")
	personalID := createResource(t, ts.URL, "/personal", map[string]any{
		"rut":       "9876543-2",
		"nombres":   "Carla",
		"apellidos": "Muñoz",
		"cargo":     "Veterinaria",
	}, "idPersonal")

	// 3) Animal del tenedor
	animalID := createResource(t, ts.URL, "/animales", map[string]any{
		"idTenedor": tenedorID,
		"idEspecie": especieID,
		"idRaza":    razaID,
		"nombre":    "Cachupín",
		"sexo":      "M",
	}, "idAnimal")

	// 4) Atención clínica
	atencionID := createResource(t, ts.URL, "/atenciones", map[string]any{
		"idAnimal":         animalID,
		"idPersonal":       personalID,
		"idMotivoConsulta": motivoID,
		"fechaAtencion":    "2026-08-30",
		"pesoKg":           12.5,
		"lugarAtencion":    "Operativo",
	}, "idAtencion")

	// 5) Vacuna aplicada en esa atención
	tipoVacunaID := createResource(t, ts.URL, "/tipos-vacuna", map[string]any{
		"nombreVacuna":      "Antirrábica",
		"idEspecie":         especieID,
		"intervaloRecMeses": 12,
	}, "idTipoVacuna")
	createResource(t, ts.URL, "/vacunas-aplicadas", map[string]any{
		"idAtencion":      atencionID,
		"idTipoVacuna":    tipoVacunaID,
		"fechaAplicacion": "2026-08-30",
		"dosis":           "1 ml",
	}, "idVacunaAplicada")

	// 6) La ficha del animal muestra la atención y la atención sus vacunas
	{
		st, body := doReq(t, ts.URL, "GET", "/animales/"+itoa(animalID)+"/atenciones", nil)
		if st != http.StatusOK {
			t.Fatalf("list atenciones: expected 200, got %d body=%s", st, body)
		}
		var atenciones []map[string]any
		if err := json.Unmarshal(body, &atenciones); err != nil || len(atenciones) != 1 {
			t.Fatalf("expected 1 atención, body=%s", body)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/atenciones/"+itoa(atencionID)+"/vacunas", nil)
		if st != http.StatusOK {
			t.Fatalf("list vacunas: expected 200, got %d body=%s", st, body)
		}
		var vacunas []map[string]any
		if err := json.Unmarshal(body, &vacunas); err != nil || len(vacunas) != 1 {
			t.Fatalf("expected 1 vacuna aplicada, body=%s", body)
		}
	}

	// 7) Búsqueda por RUT normalizado
	{
		st, body := doReq(t, ts.URL, "GET", "/tenedores/rut/12345678-5", nil)
		if st != http.StatusOK {
			t.Fatalf("get by rut: expected 200, got %d body=%s", st, body)
		}
	}

	// 8) Baja lógica: desaparece de las consultas y libera el RUT
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/tenedores/"+itoa(tenedorID), nil)
		if st != http.StatusNoContent {
			t.Fatalf("delete tenedor: expected 204, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/tenedores/"+itoa(tenedorID), nil)
		if st != http.StatusNotFound {
			t.Fatalf("get tenedor dado de baja: expected 404, got %d", st)
		}
	}
	createResource(t, ts.URL, "/tenedores", map[string]any{
		"rut":       "12345678-5",
		"nombres":   "Otro",
		"apellidos": "Tenedor",
		"telefono":  "+56933334444",
		"sector":    "Rural Norte",
	}, "idTenedor")
}

func TestHTTP_Login(t *testing.T) {
	ts := newTestServer(t)

	createResource(t, ts.URL, "/usuarios", map[string]any{
		"nombreUsuario": "cmunoz",
		"password":      "secreta1",
		"rol":           "veterinario",
	}, "idUsuario")

	// Credenciales correctas
	{
		st, body := doReq(t, ts.URL, "POST", "/login", map[string]any{
			"nombreUsuario": "CMUNOZ",
			"password":      "secreta1",
		})
		if st != http.StatusOK {
			t.Fatalf("login: expected 200, got %d body=%s", st, body)
		}
		if bytes.Contains(body, []byte("clave")) {
			t.Fatalf("login response must not expose the hash: %s", body)
		}
	}

	// Contraseña incorrecta
	{
		st, _ := doReq(t, ts.URL, "POST", "/login", map[string]any{
			"nombreUsuario": "cmunoz",
			"password":      "otra",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("login con contraseña mala: expected 401, got %d", st)
		}
	}
}

func TestHTTP_DuplicadosYValidacion(t *testing.T) {
	ts := newTestServer(t)

	createResource(t, ts.URL, "/especies", map[string]any{
		"nombreEspecie": "Felina",
	}, "idEspecie")

	// Nombre duplicado entre activos => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/especies", map[string]any{
			"nombreEspecie": "Felina",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("especie duplicada: expected 400, got %d", st)
		}
	}

	// RUT sin guion => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/tenedores", map[string]any{
			"rut":       "123456789",
			"nombres":   "Ana",
			"apellidos": "Rojas",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("rut inválido: expected 400, got %d", st)
		}
	}
}

func createResource(t *testing.T, baseURL, path string, payload map[string]any, idField string) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("POST %s: expected 201, got %d body=%s", path, st, body)
	}

	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("POST %s: invalid json body=%s", path, body)
	}
	id, ok := resp[idField].(float64)
	if !ok || id <= 0 {
		t.Fatalf("POST %s: missing %s in body=%s", path, idField, body)
	}
	return int64(id)
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
