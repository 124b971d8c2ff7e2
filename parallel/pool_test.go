package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPoolRunsEverything(t *testing.T) {
	for _, workers := range []int{1, 4} {
		pool := Start(workers)
		if pool.Size() != workers {
			t.Errorf("Size() = %d, want %d", pool.Size(), workers)
		}
		var n atomic.Int64
		for i := range 1000 {
			pool.Do(func() { n.Add(int64(i)) })
		}
		pool.Wait()
		if got := n.Load(); got != 999*1000/2 {
			t.Errorf("%d workers: sum = %d", workers, got)
		}
	}
}

func TestPoolDefaultSize(t *testing.T) {
	pool := Start(0)
	defer pool.Wait()
	if pool.Size() < 1 {
		t.Errorf("Size() = %d", pool.Size())
	}
}

func TestPoolWaitTwice(t *testing.T) {
	pool := Start(2)
	pool.Do(func() {})
	pool.Wait()
	pool.Wait()
}

func TestBands(t *testing.T) {
	tests := []struct {
		total, parts int
		want         []Band
	}{
		{0, 4, nil},
		{5, 1, []Band{{0, 5}}},
		{5, 2, []Band{{0, 3}, {3, 5}}},
		{3, 8, []Band{{0, 1}, {1, 2}, {2, 3}}},
		{10, 4, []Band{{0, 3}, {3, 6}, {6, 8}, {8, 10}}},
		{4, 0, []Band{{0, 4}}},
	}
	for _, tt := range tests {
		if d := cmp.Diff(tt.want, Bands(tt.total, tt.parts)); d != "" {
			t.Errorf("Bands(%d, %d) mismatch (-want +got):\n%s", tt.total, tt.parts, d)
		}
	}
}
