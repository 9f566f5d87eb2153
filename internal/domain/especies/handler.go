package especies

import (
	"net/http"
	"strconv"

	"vet-clinic-records/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/especies", func(er chi.Router) {
		er.Post("/", createHandler(svc))
		er.Get("/", listHandler(svc))
		er.Get("/{especieID}", getHandler(svc))
		er.Delete("/{especieID}", deactivateHandler(svc))
	})
}

type especieRequest struct {
	Nombre string `json:"nombreEspecie"`
}

type especieResponse struct {
	ID     int64  `json:"idEspecie"`
	Nombre string `json:"nombreEspecie"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req especieRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		e, err := svc.Create(r.Context(), req.Nombre)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, especieResponse{ID: e.ID, Nombre: e.Nombre})
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListActive(r.Context())
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		out := make([]especieResponse, 0, len(items))
		for _, e := range items {
			out = append(out, especieResponse{ID: e.ID, Nombre: e.Nombre})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "especieID"), 10, 64)
		e, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		if e == nil {
			http.Error(w, "especie no encontrada", http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, especieResponse{ID: e.ID, Nombre: e.Nombre})
	}
}

func deactivateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "especieID"), 10, 64)
		if err := svc.Deactivate(r.Context(), id); err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
