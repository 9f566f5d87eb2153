package atenciones

import (
	"net/http"
	"strconv"

	"vet-clinic-records/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/atenciones", func(ar chi.Router) {
		ar.Post("/", createHandler(svc))
		ar.Get("/", listByFechaHandler(svc)) // ?fecha=YYYY-MM-DD
		ar.Get("/{atencionID}", getHandler(svc))
		ar.Delete("/{atencionID}", deactivateHandler(svc))
	})

	// Historial clínico del animal, de lo más reciente a lo más antiguo.
	r.Get("/animales/{animalID}/atenciones", listByAnimalHandler(svc))
}

type atencionRequest struct {
	IDAnimal         int64 `json:"idAnimal"`
	IDPersonal       int64 `json:"idPersonal"`
	IDMotivoConsulta int64 `json:"idMotivoConsulta"`

	FechaAtencion string `json:"fechaAtencion"`

	Sintomas    string   `json:"sintomas"`
	PesoKg      *float64 `json:"pesoKg"`
	Diagnostico string   `json:"diagnostico"`
	Tratamiento string   `json:"tratamiento"`

	Observaciones        string `json:"observaciones"`
	FechaControlSugerida string `json:"fechaControlSugerida"`
	Lugar                string `json:"lugarAtencion"`
}

type atencionResponse struct {
	ID               int64 `json:"idAtencion"`
	IDAnimal         int64 `json:"idAnimal"`
	IDPersonal       int64 `json:"idPersonal"`
	IDMotivoConsulta int64 `json:"idMotivoConsulta"`

	FechaAtencion string `json:"fechaAtencion"`

	Sintomas    string   `json:"sintomas,omitempty"`
	PesoKg      *float64 `json:"pesoKg,omitempty"`
	Diagnostico string   `json:"diagnostico,omitempty"`
	Tratamiento string   `json:"tratamiento,omitempty"`

	Observaciones        string `json:"observaciones,omitempty"`
	FechaControlSugerida string `json:"fechaControlSugerida,omitempty"`
	Lugar                Lugar  `json:"lugarAtencion"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req atencionRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toResponse(a))
	}
}

func listByFechaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByFecha(r.Context(), r.URL.Query().Get("fecha"))
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		writeList(w, items)
	}
}

func listByAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "animalID"), 10, 64)
		items, err := svc.ListByAnimal(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		writeList(w, items)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "atencionID"), 10, 64)
		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		if a == nil {
			http.Error(w, "atención no encontrada", http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(*a))
	}
}

func deactivateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "atencionID"), 10, 64)
		if err := svc.Deactivate(r.Context(), id); err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeList(w http.ResponseWriter, items []Atencion) {
	out := make([]atencionResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func toResponse(a Atencion) atencionResponse {
	return atencionResponse{
		ID:                   a.ID,
		IDAnimal:             a.IDAnimal,
		IDPersonal:           a.IDPersonal,
		IDMotivoConsulta:     a.IDMotivoConsulta,
		FechaAtencion:        a.FechaAtencion,
		Sintomas:             a.Sintomas,
		PesoKg:               a.PesoKg,
		Diagnostico:          a.Diagnostico,
		Tratamiento:          a.Tratamiento,
		Observaciones:        a.Observaciones,
		FechaControlSugerida: a.FechaControlSugerida,
		Lugar:                a.Lugar,
	}
}
