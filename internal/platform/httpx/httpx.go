package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"vet-clinic-records/internal/domain/validate"
)

type errorResponse struct {
	Error string `json:"error"`
}

// WriteJSON serializa v como respuesta JSON con el status indicado.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError responde el mensaje del error tal cual (contrato del núcleo:
// mensajes estables y atribuibles por campo).
func WriteError(w http.ResponseWriter, status int, err error) {
	WriteJSON(w, status, errorResponse{Error: err.Error()})
}

// WriteServiceError mapea errores de la capa de servicio:
// validación -> 400, el resto -> 500 sin filtrar detalles internos.
func WriteServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, validate.ErrValidation) {
		WriteError(w, http.StatusBadRequest, err)
		return
	}
	WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "error interno"})
}

// Decode decodifica el body JSON hacia dst.
func Decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
