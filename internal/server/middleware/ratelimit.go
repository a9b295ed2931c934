package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/docsync/internal/server/handlers"
)

// RateLimiter ограничивает число запросов с одного адреса в фиксированном окне
type RateLimiter struct {
	now     func() time.Time
	windows map[string]*window
	stop    chan struct{}
	rate    int
	period  time.Duration
	mu      sync.Mutex
	once    sync.Once
}

type window struct {
	start time.Time
	count int
}

// NewRateLimiter создает limiter: не более rate запросов за period на ключ.
// Неактивные ключи удаляются фоновой горутиной до вызова Stop.
func NewRateLimiter(rate int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		now:     time.Now,
		windows: make(map[string]*window),
		stop:    make(chan struct{}),
		rate:    rate,
		period:  period,
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.period * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, w := range rl.windows {
		if now.Sub(w.start) > rl.period*2 {
			delete(rl.windows, key)
		}
	}
}

// Stop останавливает фоновую очистку
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Allow учитывает запрос для key. Если лимит исчерпан, возвращает false и время до нового окна.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.period {
		w = &window{start: now}
		rl.windows[key] = w
	}

	if w.count >= rl.rate {
		return false, w.start.Add(rl.period).Sub(now)
	}

	w.count++
	return true, 0
}

// Middleware отвечает 429 с заголовком Retry-After при превышении лимита
func (rl *RateLimiter) Middleware(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			allowed, retryAfter := rl.Allow(key)
			if !allowed {
				logger.Warn("Rate limit exceeded",
					"ip", key,
					"method", r.Method,
					"path", r.URL.Path,
				)

				seconds := int(retryAfter.Round(time.Second) / time.Second)
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				handlers.WriteError(w, logger, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP извлекает IP адрес клиента, учитывая X-Forwarded-For и X-Real-IP
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
