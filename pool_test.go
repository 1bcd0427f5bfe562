package limitdocs

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestServicePoolAcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(2)
	defer pool.Close()

	svc1, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	svc2, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if svc1 == svc2 {
		t.Error("pool should create distinct services")
	}

	pool.Release(svc1)

	// Released service comes back on the next acquire.
	svc3, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if svc3 != svc1 {
		t.Error("Acquire() should return the released service")
	}

	pool.Release(svc2)
	pool.Release(svc3)
}

func TestServicePoolLazyCreation(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(4)
	defer pool.Close()

	if pool.created != 0 {
		t.Errorf("pool created %d services at construction, want 0", pool.created)
	}

	svc, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if pool.created != 1 {
		t.Errorf("pool created %d services after one acquire, want 1", pool.created)
	}
	pool.Release(svc)
}

func TestServicePoolAcquireErrorDoesNotLeakSlot(t *testing.T) {
	t.Parallel()

	// An unknown style makes NewService fail inside Acquire.
	pool := NewServicePool(1, WithStyle("nonexistent"))
	defer pool.Close()

	if _, err := pool.Acquire(); err == nil {
		t.Fatal("Acquire() should propagate service init error")
	}
	if pool.created != 0 {
		t.Errorf("failed acquire left created = %d, want 0", pool.created)
	}
}

func TestServicePoolMinimumSize(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(0)
	defer pool.Close()

	if pool.Size() != 1 {
		t.Errorf("Size() = %d, want 1 for n < 1", pool.Size())
	}
}

func TestServicePoolCloseIdempotent(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(1)
	if err := pool.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}

func TestServicePoolReleaseAfterClose(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(1)
	svc, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}

	// Must not panic on the closed channel.
	pool.Release(svc)
	pool.Release(nil)
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{name: "explicit workers", workers: 3, want: 3},
		{name: "explicit above cap honored", workers: 12, want: 12},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestResolvePoolSizeAutoBounds(t *testing.T) {
	t.Parallel()

	got := ResolvePoolSize(0)
	if got < MinPoolSize || got > MaxPoolSize {
		t.Errorf("ResolvePoolSize(0) = %d, want between %d and %d", got, MinPoolSize, MaxPoolSize)
	}
}
