package conflict

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/models"
)

func TestCoordinator_Open_Validation(t *testing.T) {
	c := newTestCoordinator(t, Config{})

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "empty key",
			mutate:  func(r *Request) { r.Key = "" },
			wantErr: ErrEmptyKey,
		},
		{
			name:    "empty diff",
			mutate:  func(r *Request) { r.Diff = nil },
			wantErr: ErrEmptyDiff,
		},
		{
			name: "unknown op",
			mutate: func(r *Request) {
				r.Diff = models.DiffScript{{Text: "x", Op: models.DiffOp(7)}}
			},
			wantErr: models.ErrUnknownDiffOp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest("notes/a.md")
			tt.mutate(&req)

			s, err := c.Open(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, s)
		})
	}
	assert.Equal(t, 0, c.ActiveCount())
}

func TestCoordinator_Active(t *testing.T) {
	c := newTestCoordinator(t, Config{})
	s := openSession(t, c, testRequest("notes/a.md"))

	got, ok := c.Active("notes/a.md")
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, c.ActiveCount())

	_, err := s.Resolve(models.ActionKeepLeft)
	require.NoError(t, err)

	_, ok = c.Active("notes/a.md")
	assert.False(t, ok)
	assert.Equal(t, 0, c.ActiveCount())
}

func TestCoordinator_Supersede(t *testing.T) {
	c := newTestCoordinator(t, Config{})
	s1 := openSession(t, c, testRequest("notes/b.md"))

	results := make(chan models.Outcome, 1)
	go func() {
		results <- s1.Wait(context.Background(), time.Second)
	}()

	time.Sleep(5 * time.Millisecond)
	req := testRequest("notes/b.md")
	req.Right = models.NewRevisionRef("3-c", time.Now(), false)
	s2 := openSession(t, c, req)

	// Open возвращается только после того, как S1 завершилась
	assert.Equal(t, StateSuperseded, s1.State())
	assert.Equal(t, StateOpen, s2.State())

	select {
	case out := <-results:
		assert.Equal(t, models.Cancelled(models.CauseSuperseded), out)
	case <-time.After(time.Second):
		t.Fatal("waiter of superseded session not woken")
	}

	// Запоздалый клик по S1 ничего не меняет
	applied, err := s1.Resolve(models.ActionKeepLeft)
	require.NoError(t, err)
	assert.False(t, applied)

	got, ok := c.Active("notes/b.md")
	require.True(t, ok)
	assert.Same(t, s2, got)

	applied, err = s2.Resolve(models.ActionKeepRight)
	require.NoError(t, err)
	assert.True(t, applied)

	out, _ := s2.Outcome()
	assert.Equal(t, models.KeepRight("3-c"), out)
}

func TestCoordinator_Supersede_DoesNotLeakResults(t *testing.T) {
	c := newTestCoordinator(t, Config{})
	s1 := openSession(t, c, testRequest("notes/b.md"))
	s2 := openSession(t, c, testRequest("notes/b.md"))

	// Результат S1 удерживается на том же топике, но не принадлежит S2
	out := s2.Wait(context.Background(), 30*time.Millisecond)
	assert.Equal(t, models.CauseWaitTimeout, out.Cause)

	out = s1.Wait(context.Background(), 0)
	assert.Equal(t, models.Cancelled(models.CauseSuperseded), out)
}

func TestCoordinator_KeysAreIndependent(t *testing.T) {
	c := newTestCoordinator(t, Config{})
	a := openSession(t, c, testRequest("notes/a.md"))
	b := openSession(t, c, testRequest("notes/b.md"))

	assert.Equal(t, StateOpen, a.State())
	assert.Equal(t, StateOpen, b.State())
	assert.Equal(t, 2, c.ActiveCount())
}

func TestCoordinator_NoSelfSupersede(t *testing.T) {
	c := newTestCoordinator(t, Config{})
	s := openSession(t, c, testRequest("notes/a.md"))

	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, StateOpen, s.State())
}

func TestCoordinator_ConcurrentOpen_SingleSurvivor(t *testing.T) {
	c := newTestCoordinator(t, Config{})

	const n = 20
	sessions := make([]*Session, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := c.Open(context.Background(), testRequest("notes/c.md"))
			assert.NoError(t, err)
			sessions[i] = s
		}(i)
	}
	wg.Wait()

	open := 0
	for _, s := range sessions {
		require.NotNil(t, s)
		switch s.State() {
		case StateOpen:
			open++
		case StateSuperseded:
		default:
			t.Fatalf("unexpected state %s", s.State())
		}
	}
	assert.Equal(t, 1, open)
	assert.Equal(t, 1, c.ActiveCount())
}
