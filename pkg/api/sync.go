package api

import "time"

// Document представляет одну ревизию документа на проводе
type Document struct {
	ModifiedAt   time.Time `json:"modified_at"`
	Path         string    `json:"path"`
	Revision     string    `json:"revision"`
	BaseRevision string    `json:"base_revision"` // ревизия, от которой отталкивался узел
	NodeID       string    `json:"node_id"`
	Content      string    `json:"content"`
	Timestamp    int64     `json:"timestamp"` // Lamport timestamp сервера, 0 для новых ревизий
	Deleted      bool      `json:"deleted"`
}

// SyncRequest представляет запрос на синхронизацию от клиента
type SyncRequest struct {
	NodeID    string     `json:"node_id"`
	Documents []Document `json:"documents"` // локальные изменения, еще не принятые сервером
	Since     int64      `json:"since"`     // последний известный клиенту timestamp сервера
}

// Accepted подтверждает принятую сервером ревизию
type Accepted struct {
	Path      string `json:"path"`
	Revision  string `json:"revision"`
	Timestamp int64  `json:"timestamp"`
}

// SyncResponse представляет ответ сервера на синхронизацию
type SyncResponse struct {
	Documents        []Document `json:"documents"`         // изменения от сервера после Since
	Accepted         []Accepted `json:"accepted"`          // принятые push-ревизии
	Conflicts        []Document `json:"conflicts"`         // текущие серверные ревизии для отклоненных push
	CurrentTimestamp int64      `json:"current_timestamp"` // текущий Lamport clock сервера
}
