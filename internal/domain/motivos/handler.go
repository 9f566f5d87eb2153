package motivos

import (
	"net/http"
	"strconv"

	"vet-clinic-records/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/motivos", func(mr chi.Router) {
		mr.Post("/", createHandler(svc))
		mr.Get("/", listHandler(svc))
		mr.Get("/{motivoID}", getHandler(svc))
		mr.Delete("/{motivoID}", deactivateHandler(svc))
	})
}

type motivoRequest struct {
	Nombre      string `json:"nombreMotivo"`
	Descripcion string `json:"descripcion"`
}

type motivoResponse struct {
	ID          int64  `json:"idMotivoConsulta"`
	Nombre      string `json:"nombreMotivo"`
	Descripcion string `json:"descripcion,omitempty"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req motivoRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		m, err := svc.Create(r.Context(), CreateInput{Nombre: req.Nombre, Descripcion: req.Descripcion})
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toResponse(m))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListActive(r.Context())
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		out := make([]motivoResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toResponse(m))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "motivoID"), 10, 64)
		m, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		if m == nil {
			http.Error(w, "motivo no encontrado", http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(*m))
	}
}

func deactivateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "motivoID"), 10, 64)
		if err := svc.Deactivate(r.Context(), id); err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toResponse(m Motivo) motivoResponse {
	return motivoResponse{ID: m.ID, Nombre: m.Nombre, Descripcion: m.Descripcion}
}
