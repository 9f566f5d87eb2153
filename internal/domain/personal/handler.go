package personal

import (
	"net/http"
	"strconv"

	"vet-clinic-records/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/personal", func(pr chi.Router) {
		pr.Post("/", createHandler(svc))
		pr.Get("/", listHandler(svc))
		pr.Get("/rut/{rut}", getByRUTHandler(svc))
		pr.Get("/{personalID}", getHandler(svc))
		pr.Delete("/{personalID}", deactivateHandler(svc))
	})
}

type personalRequest struct {
	RUT             string `json:"rut"`
	Nombres         string `json:"nombres"`
	Apellidos       string `json:"apellidos"`
	Cargo           string `json:"cargo"`
	AreaTrabajo     string `json:"areaTrabajo"`
	Telefono        string `json:"telefono"`
	Correo          string `json:"correo"`
	FechaIngreso    string `json:"fechaIngreso"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Observaciones   string `json:"observaciones"`
}

type personalResponse struct {
	ID              int64  `json:"idPersonal"`
	RUT             string `json:"rut"`
	Nombres         string `json:"nombres"`
	Apellidos       string `json:"apellidos"`
	Cargo           string `json:"cargo"`
	AreaTrabajo     string `json:"areaTrabajo,omitempty"`
	Telefono        string `json:"telefono,omitempty"`
	Correo          string `json:"correo,omitempty"`
	FechaIngreso    string `json:"fechaIngreso,omitempty"`
	FechaNacimiento string `json:"fechaNacimiento,omitempty"`
	Observaciones   string `json:"observaciones,omitempty"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req personalRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toResponse(p))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListActive(r.Context())
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		out := make([]personalResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toResponse(p))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getByRUTHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByRUT(r.Context(), chi.URLParam(r, "rut"))
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		if p == nil {
			http.Error(w, "personal no encontrado", http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(*p))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "personalID"), 10, 64)
		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		if p == nil {
			http.Error(w, "personal no encontrado", http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(*p))
	}
}

func deactivateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "personalID"), 10, 64)
		if err := svc.Deactivate(r.Context(), id); err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toResponse(p Personal) personalResponse {
	return personalResponse{
		ID:              p.ID,
		RUT:             p.RUT,
		Nombres:         p.Nombres,
		Apellidos:       p.Apellidos,
		Cargo:           p.Cargo,
		AreaTrabajo:     p.AreaTrabajo,
		Telefono:        p.Telefono,
		Correo:          p.Correo,
		FechaIngreso:    p.FechaIngreso,
		FechaNacimiento: p.FechaNacimiento,
		Observaciones:   p.Observaciones,
	}
}
