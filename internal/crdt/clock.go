// Package crdt содержит логические часы, которыми сервер упорядочивает принятые ревизии.
package crdt

import (
	"sync"

	"github.com/google/uuid"
)

// LamportClock представляет логические часы Лампорта.
// Сервер ставит Tick на каждую принятую ревизию, клиенты запрашивают изменения после
// последнего увиденного значения.
type LamportClock struct {
	nodeID  string
	counter int64
	mu      sync.Mutex
}

// NewLamportClock создает часы со случайным идентификатором узла.
func NewLamportClock() *LamportClock {
	return NewLamportClockWithNodeID(uuid.NewString())
}

// NewLamportClockWithNodeID создает часы с заданным идентификатором узла.
func NewLamportClockWithNodeID(nodeID string) *LamportClock {
	return &LamportClock{nodeID: nodeID}
}

// Tick увеличивает счетчик и возвращает новое значение timestamp.
func (lc *LamportClock) Tick() int64 {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	lc.counter++
	return lc.counter
}

// Update учитывает удаленный timestamp: counter = max(counter, remote) + 1
func (lc *LamportClock) Update(remoteTimestamp int64) int64 {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	lc.counter = max(lc.counter, remoteTimestamp) + 1
	return lc.counter
}

// GetTimestamp возвращает текущее значение счетчика без его изменения.
func (lc *LamportClock) GetTimestamp() int64 {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	return lc.counter
}

// GetNodeID возвращает идентификатор узла.
func (lc *LamportClock) GetNodeID() string {
	return lc.nodeID
}

// Restore поднимает счетчик до timestamp после перезапуска; назад часы не идут.
func (lc *LamportClock) Restore(timestamp int64) {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	lc.counter = max(lc.counter, timestamp)
}
