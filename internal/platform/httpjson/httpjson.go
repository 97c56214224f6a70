// Package httpjson concentra el sobre de respuesta del API.
// Todos los endpoints responden {success, mensaje, data?, error?},
// que es el contrato que espera el cliente móvil.
package httpjson

import (
	"encoding/json"
	"net/http"
)

type Envelope struct {
	Success bool   `json:"success"`
	Mensaje string `json:"mensaje"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func OK(w http.ResponseWriter, status int, mensaje string, data any) {
	Write(w, status, Envelope{Success: true, Mensaje: mensaje, Data: data})
}

func Fail(w http.ResponseWriter, status int, mensaje string) {
	Write(w, status, Envelope{Success: false, Mensaje: mensaje})
}

func FailErr(w http.ResponseWriter, status int, mensaje string, err error) {
	env := Envelope{Success: false, Mensaje: mensaje}
	if err != nil {
		env.Error = err.Error()
	}
	Write(w, status, env)
}
