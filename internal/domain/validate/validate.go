package validate

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// ErrValidation agrupa todos los errores de validación de campos.
// Los handlers lo detectan con errors.Is para responder 400.
var ErrValidation = errors.New("datos inválidos")

// Error es un error de validación atribuible a un campo concreto.
// El mensaje va en español porque es lo que se muestra tal cual al usuario.
type Error struct {
	Field string
	Msg   string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return ErrValidation }

// Errorf construye un *Error con mensaje formateado.
func Errorf(field, format string, args ...any) *Error {
	return &Error{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// RequireText valida que un campo de texto venga con contenido.
func RequireText(value, field string) (string, error) {
	text := strings.TrimSpace(value)
	if text == "" {
		return "", Errorf(field, "El campo '%s' es obligatorio.", field)
	}
	return text, nil
}

// OptionalText normaliza texto opcional (vacío queda como "").
func OptionalText(value string) string {
	return strings.TrimSpace(value)
}

// OptionalTextMax normaliza texto opcional con largo máximo.
func OptionalTextMax(value, field string, maxLen int) (string, error) {
	text := strings.TrimSpace(value)
	if text == "" {
		return "", nil
	}
	if utf8.RuneCountInString(text) > maxLen {
		return "", Errorf(field, "El campo '%s' no puede superar %d caracteres.", field, maxLen)
	}
	return text, nil
}

// RequireID valida un identificador positivo.
func RequireID(value int64, field string) error {
	if value <= 0 {
		return Errorf(field, "El campo '%s' debe ser mayor que 0.", field)
	}
	return nil
}

// OptionalIntRange valida un entero opcional dentro de un rango.
func OptionalIntRange(value *int, field string, minV, maxV int) error {
	if value == nil {
		return nil
	}
	if *value < minV || *value > maxV {
		return Errorf(field, "El campo '%s' debe estar entre %d y %d.", field, minV, maxV)
	}
	return nil
}

const dateLayout = "2006-01-02"

// Date valida una fecha YYYY-MM-DD y la retorna normalizada.
// El vacío es válido solo cuando el campo no es obligatorio.
func Date(value, field string, required bool) (string, error) {
	text := strings.TrimSpace(value)
	if text == "" {
		if required {
			return "", Errorf(field, "El campo '%s' es obligatorio.", field)
		}
		return "", nil
	}
	t, err := time.Parse(dateLayout, text)
	if err != nil {
		return "", Errorf(field, "El campo '%s' debe tener formato YYYY-MM-DD (ej: 2020-03-15).", field)
	}
	return t.Format(dateLayout), nil
}

// BirthDate valida una fecha de nacimiento opcional: formato YYYY-MM-DD,
// sin fechas futuras y con un piso de año razonable para atajar errores de tipeo.
func BirthDate(value, field string, now time.Time) (string, error) {
	text := strings.TrimSpace(value)
	if text == "" {
		return "", nil
	}
	t, err := time.Parse(dateLayout, text)
	if err != nil {
		return "", Errorf(field, "El campo '%s' debe tener formato YYYY-MM-DD (ej: 2020-03-15).", field)
	}
	if t.After(now) {
		return "", Errorf(field, "El campo '%s' no puede ser una fecha futura.", field)
	}
	if t.Year() < 1990 {
		return "", Errorf(field, "El campo '%s' parece demasiado antiguo. Revisa el año.", field)
	}
	return t.Format(dateLayout), nil
}

// NormalizeNombre normaliza un nombre de catálogo: trim, colapsa espacios
// internos y capitaliza suave (solo la primera letra).
// Ej: "  control   sano " -> "Control sano".
func NormalizeNombre(value, field string) (string, error) {
	text := strings.Join(strings.Fields(value), " ")
	if text == "" {
		return "", Errorf(field, "El campo '%s' es obligatorio.", field)
	}
	r, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(r)) + text[size:], nil
}

// NormalizeRUT normaliza un RUT al formato 12345678-9 (sin puntos, con guion).
// Acepta entradas con puntos/espacios y fuerza K mayúscula. Solo valida la
// forma, no el dígito verificador.
func NormalizeRUT(value string) (string, error) {
	const field = "rut"

	text := strings.TrimSpace(value)
	if text == "" {
		return "", Errorf(field, "El RUT es obligatorio")
	}

	r := strings.ToUpper(strings.NewReplacer(".", "", " ", "").Replace(text))
	cuerpo, dv, ok := strings.Cut(r, "-")
	if !ok {
		return "", Errorf(field, "El RUT debe incluir guion (ej: 12345678-9)")
	}

	if cuerpo == "" || !esNumerico(cuerpo) {
		return "", Errorf(field, "El cuerpo del RUT debe ser numérico (sin puntos)")
	}
	if len(dv) != 1 || !strings.Contains("0123456789K", dv) {
		return "", Errorf(field, "El dígito verificador del RUT es inválido")
	}

	return cuerpo + "-" + dv, nil
}

func esNumerico(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// conviveOpciones es la lista controlada para 'conviveConOtros'.
var conviveOpciones = map[string]struct{}{
	"Perros":   {},
	"Gatos":    {},
	"Aves":     {},
	"Equinos":  {},
	"Bovinos":  {},
	"Porcinos": {},
	"Caprinos": {},
	"Ovinos":   {},
	"Otros":    {},
	"No sabe":  {},
	"Solo":     {},
}

// NormalizeConvive valida la lista de especies con las que convive el animal.
// Acepta elementos sueltos o con comas ("Perros,Gatos"), valida contra la
// lista controlada, deduplica y ordena para que lo guardado sea determinista.
// Retorna "" cuando no queda ningún valor.
func NormalizeConvive(values []string) (string, error) {
	const field = "conviveConOtros"

	seen := map[string]struct{}{}
	clean := make([]string, 0, len(values))

	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			if _, ok := conviveOpciones[p]; !ok {
				return "", Errorf(field, "Valor no permitido en 'conviveConOtros': '%s'.", p)
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			clean = append(clean, p)
		}
	}

	sort.Strings(clean)
	return strings.Join(clean, ","), nil
}
