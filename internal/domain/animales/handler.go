package animales

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"vet-clinic-records/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animales", func(ar chi.Router) {
		ar.Post("/", createHandler(svc))
		ar.Get("/", listHandler(svc))
		ar.Get("/microchip/{chip}", getByMicrochipHandler(svc))
		ar.Get("/{animalID}", getHandler(svc))
		ar.Delete("/{animalID}", deactivateHandler(svc))
	})

	// Animales activos de un tenedor.
	r.Get("/tenedores/{tenedorID}/animales", listByTenedorHandler(svc))
}

type animalRequest struct {
	IDTenedor int64  `json:"idTenedor"`
	IDEspecie int64  `json:"idEspecie"`
	IDRaza    *int64 `json:"idRaza"`

	Nombre string `json:"nombre"`
	Sexo   string `json:"sexo"`

	FechaNacimientoEst string `json:"fechaNacimientoEst"`
	EdadEstimadaMeses  *int   `json:"edadEstimadaMeses"`

	Color              string `json:"color"`
	EstadoReproductivo string `json:"estadoReproductivo"`
	NumeroMicrochip    string `json:"numeroMicrochip"`

	ViveDentroCasa *bool `json:"viveDentroCasa"`

	// Acepta "Perros,Gatos" o ["Perros","Gatos"].
	ConviveConOtros json.RawMessage `json:"conviveConOtros"`

	Observaciones string `json:"observaciones"`
}

type animalResponse struct {
	ID        int64  `json:"idAnimal"`
	IDTenedor int64  `json:"idTenedor"`
	IDEspecie int64  `json:"idEspecie"`
	IDRaza    *int64 `json:"idRaza,omitempty"`

	Nombre string `json:"nombre"`
	Sexo   Sexo   `json:"sexo"`

	FechaNacimientoEst string `json:"fechaNacimientoEst,omitempty"`
	EdadEstimadaMeses  *int   `json:"edadEstimadaMeses,omitempty"`

	Color              string `json:"color,omitempty"`
	EstadoReproductivo string `json:"estadoReproductivo,omitempty"`
	NumeroMicrochip    string `json:"numeroMicrochip,omitempty"`

	ViveDentroCasa  *bool  `json:"viveDentroCasa,omitempty"`
	ConviveConOtros string `json:"conviveConOtros,omitempty"`
	Observaciones   string `json:"observaciones,omitempty"`
}

// decodeConvive tolera las dos formas que manda la UI: string con comas
// o lista JSON de strings.
func decodeConvive(raw json.RawMessage) ([]string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, true
	}
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var items []string
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, false
		}
		return items, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	return []string{s}, true
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		convive, ok := decodeConvive(req.ConviveConOtros)
		if !ok {
			http.Error(w, "conviveConOtros debe ser texto o lista", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			IDTenedor:          req.IDTenedor,
			IDEspecie:          req.IDEspecie,
			IDRaza:             req.IDRaza,
			Nombre:             req.Nombre,
			Sexo:               req.Sexo,
			FechaNacimientoEst: req.FechaNacimientoEst,
			EdadEstimadaMeses:  req.EdadEstimadaMeses,
			Color:              req.Color,
			EstadoReproductivo: req.EstadoReproductivo,
			NumeroMicrochip:    req.NumeroMicrochip,
			ViveDentroCasa:     req.ViveDentroCasa,
			ConviveConOtros:    convive,
			Observaciones:      req.Observaciones,
		})
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toResponse(a))
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

func listByTenedorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "tenedorID"), 10, 64)
		items, err := svc.ListByTenedor(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		writeList(w, items)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "animalID"), 10, 64)
		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		if a == nil {
			http.Error(w, "animal no encontrado", http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(*a))
	}
}

func getByMicrochipHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByMicrochip(r.Context(), chi.URLParam(r, "chip"))
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		if a == nil {
			http.Error(w, "animal no encontrado", http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(*a))
	}
}

func deactivateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "animalID"), 10, 64)
		if err := svc.Deactivate(r.Context(), id); err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeList(w http.ResponseWriter, items []Animal) {
	out := make([]animalResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func toResponse(a Animal) animalResponse {
	return animalResponse{
		ID:                 a.ID,
		IDTenedor:          a.IDTenedor,
		IDEspecie:          a.IDEspecie,
		IDRaza:             a.IDRaza,
		Nombre:             a.Nombre,
		Sexo:               a.Sexo,
		FechaNacimientoEst: a.FechaNacimientoEst,
		EdadEstimadaMeses:  a.EdadEstimadaMeses,
		Color:              a.Color,
		EstadoReproductivo: a.EstadoReproductivo,
		NumeroMicrochip:    a.NumeroMicrochip,
		ViveDentroCasa:     a.ViveDentroCasa,
		ConviveConOtros:    a.ConviveConOtros,
		Observaciones:      a.Observaciones,
	}
}
