package tenedores

import (
	"errors"
	"net/http"
	"strconv"

	"vet-clinic-records/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/tenedores", func(tr chi.Router) {
		tr.Post("/", createHandler(svc))
		tr.Get("/", listHandler(svc))
		tr.Get("/rut/{rut}", getByRUTHandler(svc))
		tr.Get("/{tenedorID}", getHandler(svc))
		tr.Put("/{tenedorID}", updateHandler(svc))
		tr.Delete("/{tenedorID}", deactivateHandler(svc))
	})
}

type tenedorRequest struct {
	RUT           string `json:"rut"`
	Nombres       string `json:"nombres"`
	Apellidos     string `json:"apellidos"`
	Telefono      string `json:"telefono"`
	Correo        string `json:"correo"`
	Direccion     string `json:"direccion"`
	Sector        string `json:"sector"`
	Observaciones string `json:"observaciones"`
}

type tenedorResponse struct {
	ID            int64  `json:"idTenedor"`
	RUT           string `json:"rut"`
	Nombres       string `json:"nombres"`
	Apellidos     string `json:"apellidos"`
	Telefono      string `json:"telefono"`
	Correo        string `json:"correo,omitempty"`
	Direccion     string `json:"direccion,omitempty"`
	Sector        string `json:"sector"`
	Observaciones string `json:"observaciones,omitempty"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tenedorRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Create(r.Context(), CreateInput{
			RUT:           req.RUT,
			Nombres:       req.Nombres,
			Apellidos:     req.Apellidos,
			Telefono:      req.Telefono,
			Correo:        req.Correo,
			Direccion:     req.Direccion,
			Sector:        req.Sector,
			Observaciones: req.Observaciones,
		})
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toResponse(t))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListActive(r.Context())
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}

		out := make([]tenedorResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toResponse(t))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getByRUTHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.GetByRUT(r.Context(), chi.URLParam(r, "rut"))
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		if t == nil {
			http.Error(w, "tenedor no encontrado", http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(*t))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := parseID(chi.URLParam(r, "tenedorID"))
		t, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		if t == nil {
			http.Error(w, "tenedor no encontrado", http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(*t))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tenedorRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		id := parseID(chi.URLParam(r, "tenedorID"))
		err := svc.Update(r.Context(), id, UpdateInput{
			Nombres:       req.Nombres,
			Apellidos:     req.Apellidos,
			Telefono:      req.Telefono,
			Correo:        req.Correo,
			Direccion:     req.Direccion,
			Sector:        req.Sector,
			Observaciones: req.Observaciones,
		})
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "tenedor no encontrado", http.StatusNotFound)
				return
			}
			httpx.WriteServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deactivateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Deactivate(r.Context(), parseID(chi.URLParam(r, "tenedorID"))); err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toResponse(t Tenedor) tenedorResponse {
	return tenedorResponse{
		ID:            t.ID,
		RUT:           t.RUT,
		Nombres:       t.Nombres,
		Apellidos:     t.Apellidos,
		Telefono:      t.Telefono,
		Correo:        t.Correo,
		Direccion:     t.Direccion,
		Sector:        t.Sector,
		Observaciones: t.Observaciones,
	}
}

// parseID tolera valores no numéricos devolviendo 0; el service lo rechaza
// como id inválido con mensaje de validación.
func parseID(s string) int64 {
	id, _ := strconv.ParseInt(s, 10, 64)
	return id
}
