package dto

import (
	"bytes"
	"strconv"
	"strings"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AckResponse reconocimiento genérico de una acción.
type AckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// FlexInt entero que acepta números JSON o strings numéricos ("5" → 5).
// Los formularios del frontend envían cantidades en cualquiera de los dos
// formatos: números y strings convertibles se aceptan; cualquier otra cosa
// queda en 0 en lugar de rechazar la petición (el backend simulado es best-effort).
type FlexInt int

// UnmarshalJSON implementa la coerción número-o-string.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(b, `"`)))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(int(n))
	return nil
}

// Int devuelve el valor como int nativo.
func (f FlexInt) Int() int { return int(f) }
