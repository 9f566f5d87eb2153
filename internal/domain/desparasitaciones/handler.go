package desparasitaciones

import (
	"net/http"
	"strconv"

	"vet-clinic-records/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, tipos *TipoService, aplicadas *AplicadaService) {
	r.Route("/tipos-desparasitacion", func(tr chi.Router) {
		tr.Post("/", createTipoHandler(tipos))
		tr.Get("/", listTiposHandler(tipos))
		tr.Get("/{tipoID}", getTipoHandler(tipos))
		tr.Delete("/{tipoID}", deactivateTipoHandler(tipos))
	})

	r.Route("/desparasitaciones-aplicadas", func(dr chi.Router) {
		dr.Post("/", createAplicadaHandler(aplicadas))
		dr.Get("/{aplicadaID}", getAplicadaHandler(aplicadas))
		dr.Delete("/{aplicadaID}", deactivateAplicadaHandler(aplicadas))
	})

	r.Get("/atenciones/{atencionID}/desparasitaciones", listAplicadasByAtencionHandler(aplicadas))
}

type tipoRequest struct {
	Nombre            string `json:"nombreDesparasitacion"`
	Tipo              string `json:"tipo"`
	IDEspecie         *int64 `json:"idEspecie"`
	IntervaloRecMeses *int   `json:"intervaloRecMeses"`
}

type tipoResponse struct {
	ID                int64  `json:"idTipoDesparasitacion"`
	Nombre            string `json:"nombreDesparasitacion"`
	Tipo              Tipo   `json:"tipo"`
	IDEspecie         *int64 `json:"idEspecie,omitempty"`
	IntervaloRecMeses *int   `json:"intervaloRecMeses,omitempty"`
}

type aplicadaRequest struct {
	IDAtencion            int64 `json:"idAtencion"`
	IDTipoDesparasitacion int64 `json:"idTipoDesparasitacion"`

	FechaAplicacion   string `json:"fechaAplicacion"`
	FechaProximaDosis string `json:"fechaProximaDosis"`
	Dosis             string `json:"dosis"`
	Lote              string `json:"lote"`
	Observaciones     string `json:"observaciones"`
}

type aplicadaResponse struct {
	ID                    int64 `json:"idDesparasitacion"`
	IDAtencion            int64 `json:"idAtencion"`
	IDTipoDesparasitacion int64 `json:"idTipoDesparasitacion"`

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
		out := make([]tipoResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTipoResponse(t))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
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
			http.Error(w, "tipo de desparasitación no encontrado", http.StatusNotFound)
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
		d, err := svc.Create(r.Context(), CreateAplicadaInput(req))
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toAplicadaResponse(d))
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
		out := make([]aplicadaResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toAplicadaResponse(d))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getAplicadaHandler(svc *AplicadaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "aplicadaID"), 10, 64)
		d, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		if d == nil {
			http.Error(w, "desparasitación no encontrada", http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAplicadaResponse(*d))
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

func toTipoResponse(t TipoDesparasitacion) tipoResponse {
	return tipoResponse{
		ID:                t.ID,
		Nombre:            t.Nombre,
		Tipo:              t.Tipo,
		IDEspecie:         t.IDEspecie,
		IntervaloRecMeses: t.IntervaloRecMeses,
	}
}

func toAplicadaResponse(d DesparasitacionAplicada) aplicadaResponse {
	return aplicadaResponse{
		ID:                    d.ID,
		IDAtencion:            d.IDAtencion,
		IDTipoDesparasitacion: d.IDTipoDesparasitacion,
		FechaAplicacion:       d.FechaAplicacion,
		FechaProximaDosis:     d.FechaProximaDosis,
		Dosis:                 d.Dosis,
		Lote:                  d.Lote,
		Observaciones:         d.Observaciones,
	}
}
