package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

// NodeIDKey ключ для хранения node_id аутентифицированного устройства в контексте
const NodeIDKey contextKey = "node_id"

// WithNodeID возвращает контекст с node_id устройства
func WithNodeID(ctx context.Context, nodeID string) context.Context {
	return context.WithValue(ctx, NodeIDKey, nodeID)
}

// GetNodeID извлекает node_id из контекста запроса
func GetNodeID(ctx context.Context) (string, bool) {
	nodeID, ok := ctx.Value(NodeIDKey).(string)
	return nodeID, ok && nodeID != ""
}
