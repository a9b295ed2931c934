// Package api defines the JSON wire types shared by the docsync client and server.
package api

import "time"

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Time    time.Time `json:"time"`
	Status  string    `json:"status"`
	Version string    `json:"version"`
}
