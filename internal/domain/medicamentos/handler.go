package medicamentos

import (
	"net/http"
	"strconv"

	"vet-clinic-records/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, tipos *TipoService, aplicados *AplicadoService) {
	r.Route("/tipos-medicamento", func(tr chi.Router) {
		tr.Post("/", createTipoHandler(tipos))
		tr.Get("/", listTiposHandler(tipos))
		tr.Get("/{tipoID}", getTipoHandler(tipos))
		tr.Delete("/{tipoID}", deactivateTipoHandler(tipos))
	})

	r.Route("/medicamentos-aplicados", func(mr chi.Router) {
		mr.Post("/", createAplicadoHandler(aplicados))
		mr.Get("/{aplicadoID}", getAplicadoHandler(aplicados))
		mr.Delete("/{aplicadoID}", deactivateAplicadoHandler(aplicados))
	})

	r.Get("/atenciones/{atencionID}/medicamentos", listAplicadosByAtencionHandler(aplicados))
}

type tipoRequest struct {
	Nombre      string `json:"nombreMedicamento"`
	Categoria   string `json:"categoria"`
	Descripcion string `json:"descripcion"`
}

type tipoResponse struct {
	ID          int64     `json:"idTipoMedicamento"`
	Nombre      string    `json:"nombreMedicamento"`
	Categoria   Categoria `json:"categoria"`
	Descripcion string    `json:"descripcion,omitempty"`
}

type aplicadoRequest struct {
	IDAtencion        int64 `json:"idAtencion"`
	IDTipoMedicamento int64 `json:"idTipoMedicamento"`

	FechaAplicacion string `json:"fechaAplicacion"`
	Dosis           string `json:"dosis"`
	Via             string `json:"via"`
	Observaciones   string `json:"observaciones"`
}

type aplicadoResponse struct {
	ID                int64 `json:"idMedicamentoAplicado"`
	IDAtencion        int64 `json:"idAtencion"`
	IDTipoMedicamento int64 `json:"idTipoMedicamento"`

	FechaAplicacion string `json:"fechaAplicacion"`
	Dosis           string `json:"dosis,omitempty"`
	Via             Via    `json:"via,omitempty"`
	Observaciones   string `json:"observaciones,omitempty"`
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
		var (
			items []TipoMedicamento
			err   error
		)
		if cat := r.URL.Query().Get("categoria"); cat != "" {
			items, err = svc.ListByCategoria(r.Context(), cat)
		} else {
			items, err = svc.ListActive(r.Context())
		}
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
			http.Error(w, "tipo de medicamento no encontrado", http.StatusNotFound)
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

func createAplicadoHandler(svc *AplicadoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req aplicadoRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		m, err := svc.Create(r.Context(), CreateAplicadoInput(req))
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toAplicadoResponse(m))
	}
}

func listAplicadosByAtencionHandler(svc *AplicadoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "atencionID"), 10, 64)
		items, err := svc.ListByAtencion(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		out := make([]aplicadoResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toAplicadoResponse(m))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getAplicadoHandler(svc *AplicadoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "aplicadoID"), 10, 64)
		m, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		if m == nil {
			http.Error(w, "medicamento aplicado no encontrado", http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAplicadoResponse(*m))
	}
}

func deactivateAplicadoHandler(svc *AplicadoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "aplicadoID"), 10, 64)
		if err := svc.Deactivate(r.Context(), id); err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toTipoResponse(t TipoMedicamento) tipoResponse {
	return tipoResponse{
		ID:          t.ID,
		Nombre:      t.Nombre,
		Categoria:   t.Categoria,
		Descripcion: t.Descripcion,
	}
}

func toAplicadoResponse(m MedicamentoAplicado) aplicadoResponse {
	return aplicadoResponse{
		ID:                m.ID,
		IDAtencion:        m.IDAtencion,
		IDTipoMedicamento: m.IDTipoMedicamento,
		FechaAplicacion:   m.FechaAplicacion,
		Dosis:             m.Dosis,
		Via:               m.Via,
		Observaciones:     m.Observaciones,
	}
}
