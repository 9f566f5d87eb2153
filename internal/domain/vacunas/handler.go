package vacunas

import (
	"net/http"
	"strconv"

	"vet-clinic-records/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, tipos *TipoService, aplicadas *AplicadaService) {
	r.Route("/tipos-vacuna", func(tr chi.Router) {
		tr.Post("/", createTipoHandler(tipos))
		tr.Get("/", listTiposHandler(tipos))
		tr.Get("/{tipoID}", getTipoHandler(tipos))
		tr.Delete("/{tipoID}", deactivateTipoHandler(tipos))
	})

	r.Route("/vacunas-aplicadas", func(vr chi.Router) {
		vr.Post("/", createAplicadaHandler(aplicadas))
		vr.Get("/", listAplicadasHandler(aplicadas))
		vr.Get("/{aplicadaID}", getAplicadaHandler(aplicadas))
		vr.Delete("/{aplicadaID}", deactivateAplicadaHandler(aplicadas))
	})

	r.Get("/especies/{especieID}/tipos-vacuna", listTiposByEspecieHandler(tipos))
	r.Get("/atenciones/{atencionID}/vacunas", listAplicadasByAtencionHandler(aplicadas))
}

type tipoRequest struct {
	Nombre            string `json:"nombreVacuna"`
	Descripcion       string `json:"descripcion"`
	IDEspecie         *int64 `json:"idEspecie"`
	IntervaloRecMeses *int   `json:"intervaloRecMeses"`
}

type tipoResponse struct {
	ID                int64  `json:"idTipoVacuna"`
	Nombre            string `json:"nombreVacuna"`
	Descripcion       string `json:"descripcion,omitempty"`
	IDEspecie         *int64 `json:"idEspecie,omitempty"`
	IntervaloRecMeses *int   `json:"intervaloRecMeses,omitempty"`
}

type aplicadaRequest struct {
	IDAtencion   int64 `json:"idAtencion"`
	IDTipoVacuna int64 `json:"idTipoVacuna"`

	FechaAplicacion   string `json:"fechaAplicacion"`
	FechaProximaDosis string `json:"fechaProximaDosis"`
	Dosis             string `json:"dosis"`
	Lote              string `json:"lote"`
	Observaciones     string `json:"observaciones"`
}

type aplicadaResponse struct {
	ID           int64 `json:"idVacunaAplicada"`
	IDAtencion   int64 `json:"idAtencion"`
	IDTipoVacuna int64 `json:"idTipoVacuna"`

	FechaAplicacion   string `json:"fechaAplicacion"`
	FechaProximaDosis string `json:"fechaProximaDosis,omitempty"`
	Dosis             string `json:"dosis,omitempty"`
	Lote              string `json:"lote,omitempty"`
	Observaciones     string `json:"observaciones,omitempty"`
}

func createTipoHandler(svc *TipoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tipoRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		t, err := svc.Create(r.Context(), CreateTipoInput(req))
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toTipoResponse(t))
	}
}

func listTiposHandler(svc *TipoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListActive(r.Context())
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		writeTipoList(w, items)
	}
}

func listTiposByEspecieHandler(svc *TipoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "especieID"), 10, 64)
		items, err := svc.ListByEspecie(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		writeTipoList(w, items)
	}
}

func getTipoHandler(svc *TipoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "tipoID"), 10, 64)
		t, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		if t == nil {
			http.Error(w, "tipo de vacuna no encontrado", http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toTipoResponse(*t))
	}
}

func deactivateTipoHandler(svc *TipoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "tipoID"), 10, 64)
		if err := svc.Deactivate(r.Context(), id); err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func createAplicadaHandler(svc *AplicadaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req aplicadaRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		v, err := svc.Create(r.Context(), CreateAplicadaInput(req))
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toAplicadaResponse(v))
	}
}

func listAplicadasHandler(svc *AplicadaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAllActive(r.Context())
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		writeAplicadaList(w, items)
	}
}

func listAplicadasByAtencionHandler(svc *AplicadaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "atencionID"), 10, 64)
		items, err := svc.ListByAtencion(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		writeAplicadaList(w, items)
	}
}

func getAplicadaHandler(svc *AplicadaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "aplicadaID"), 10, 64)
		v, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		if v == nil {
			http.Error(w, "vacuna aplicada no encontrada", http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAplicadaResponse(*v))
	}
}

func deactivateAplicadaHandler(svc *AplicadaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "aplicadaID"), 10, 64)
		if err := svc.Deactivate(r.Context(), id); err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeTipoList(w http.ResponseWriter, items []TipoVacuna) {
	out := make([]tipoResponse, 0, len(items))
	for _, t := range items {
		out = append(out, toTipoResponse(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func writeAplicadaList(w http.ResponseWriter, items []VacunaAplicada) {
	out := make([]aplicadaResponse, 0, len(items))
	for _, v := range items {
		out = append(out, toAplicadaResponse(v))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func toTipoResponse(t TipoVacuna) tipoResponse {
	return tipoResponse{
		ID:                t.ID,
		Nombre:            t.Nombre,
		Descripcion:       t.Descripcion,
		IDEspecie:         t.IDEspecie,
		IntervaloRecMeses: t.IntervaloRecMeses,
	}
}

func toAplicadaResponse(v VacunaAplicada) aplicadaResponse {
	return aplicadaResponse{
		ID:                v.ID,
		IDAtencion:        v.IDAtencion,
		IDTipoVacuna:      v.IDTipoVacuna,
		FechaAplicacion:   v.FechaAplicacion,
		FechaProximaDosis: v.FechaProximaDosis,
		Dosis:             v.Dosis,
		Lote:              v.Lote,
		Observaciones:     v.Observaciones,
	}
}
