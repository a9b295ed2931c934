// Package middleware содержит HTTP middleware сервера docsync.
package middleware

import (
	"context"
	"net/http"
)

// Middleware оборачивает http.Handler
type Middleware func(http.Handler) http.Handler

// Chain применяет middlewares так, что первый в списке выполняется первым
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// requestInfo заполняется внутренними middleware и читается Logging после ответа
type requestInfo struct {
	nodeID string
}

type requestInfoKey struct{}

func withRequestInfo(ctx context.Context) (context.Context, *requestInfo) {
	info := &requestInfo{}
	return context.WithValue(ctx, requestInfoKey{}, info), info
}

func requestInfoFrom(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(*requestInfo)
	return info
}
