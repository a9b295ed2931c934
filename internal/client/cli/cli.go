package cli

import (
	"time"

	"github.com/iudanet/docsync/internal/client/auth"
	"github.com/iudanet/docsync/internal/client/data"
	"github.com/iudanet/docsync/internal/client/iocli"
	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/client/sync"
)

// Cli реализует команды клиента поверх сервисов
type Cli struct {
	io          iocli.IO
	authService auth.Service
	dataService data.Service
	syncService sync.Service
	conflicts   storage.ConflictStorage
	now         func() time.Time
	version     string
}

// New creates command handlers
func New(
	io iocli.IO,
	authService auth.Service,
	dataService data.Service,
	syncService sync.Service,
	conflicts storage.ConflictStorage,
	version string,
) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		dataService: dataService,
		syncService: syncService,
		conflicts:   conflicts,
		version:     version,
		now:         time.Now,
	}
}
