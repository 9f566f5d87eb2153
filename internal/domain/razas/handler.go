package razas

import (
	"net/http"
	"strconv"

	"vet-clinic-records/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/razas", func(rr chi.Router) {
		rr.Post("/", createHandler(svc))
		rr.Get("/", listHandler(svc))
		rr.Get("/{razaID}", getHandler(svc))
		rr.Delete("/{razaID}", deactivateHandler(svc))
	})

	// Listado anidado: razas activas de una especie.
	r.Get("/especies/{especieID}/razas", listByEspecieHandler(svc))
}

type razaRequest struct {
	IDEspecie int64  `json:"idEspecie"`
	Nombre    string `json:"nombreRaza"`
}

type razaResponse struct {
	ID        int64  `json:"idRaza"`
	IDEspecie int64  `json:"idEspecie"`
	Nombre    string `json:"nombreRaza"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req razaRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		rz, err := svc.Create(r.Context(), CreateInput{IDEspecie: req.IDEspecie, Nombre: req.Nombre})
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toResponse(rz))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListActive(r.Context())
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		writeList(w, items)
	}
}

func listByEspecieHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "especieID"), 10, 64)
		items, err := svc.ListByEspecie(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		writeList(w, items)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "razaID"), 10, 64)
		rz, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		if rz == nil {
			http.Error(w, "raza no encontrada", http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(*rz))
	}
}

func deactivateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "razaID"), 10, 64)
		if err := svc.Deactivate(r.Context(), id); err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeList(w http.ResponseWriter, items []Raza) {
	out := make([]razaResponse, 0, len(items))
	for _, rz := range items {
		out = append(out, toResponse(rz))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func toResponse(rz Raza) razaResponse {
	return razaResponse{ID: rz.ID, IDEspecie: rz.IDEspecie, Nombre: rz.Nombre}
}
