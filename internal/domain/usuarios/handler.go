package usuarios

import (
	"errors"
	"net/http"
	"strconv"

	"vet-clinic-records/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/login", loginHandler(svc))

	r.Route("/usuarios", func(ur chi.Router) {
		ur.Post("/", createHandler(svc))
		ur.Get("/", listHandler(svc))
		ur.Get("/nombre/{nombreUsuario}", getByUsernameHandler(svc))
		ur.Delete("/{usuarioID}", deactivateHandler(svc))
	})
}

type createRequest struct {
	IDPersonal    *int64 `json:"idPersonal"`
	NombreUsuario string `json:"nombreUsuario"`
	Password      string `json:"password"`
	Rol           string `json:"rol"`
}

type loginRequest struct {
	NombreUsuario string `json:"nombreUsuario"`
	Password      string `json:"password"`
}

type usuarioResponse struct {
	ID            int64  `json:"idUsuario"`
	IDPersonal    *int64 `json:"idPersonal,omitempty"`
	NombreUsuario string `json:"nombreUsuario"`
	Rol           Rol    `json:"rol"`
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		u, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toResponse(u))
	}
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpx.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		u, err := svc.Login(r.Context(), req.NombreUsuario, req.Password)
		if errors.Is(err, ErrCredenciales) {
			httpx.WriteError(w, http.StatusUnauthorized, err)
			return
		}
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(u))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListActive(r.Context())
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		out := make([]usuarioResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toResponse(u))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getByUsernameHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByUsername(r.Context(), chi.URLParam(r, "nombreUsuario"))
		if err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		if u == nil {
			http.Error(w, "usuario no encontrado", http.StatusNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(*u))
	}
}

func deactivateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "usuarioID"), 10, 64)
		if err := svc.Deactivate(r.Context(), id); err != nil {
			httpx.WriteServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toResponse(u Usuario) usuarioResponse {
	return usuarioResponse{
		ID:            u.ID,
		IDPersonal:    u.IDPersonal,
		NombreUsuario: u.NombreUsuario,
		Rol:           u.Rol,
	}
}
