package parallel

import (
	"runtime"
	"sync"
)

// Pool runs submitted functions on a fixed number of goroutines. A pool of
// size one runs them inline in Do.
type Pool struct {
	wg    sync.WaitGroup
	work  chan func()
	size  int
	close func()
}

// Start launches a pool of numWorkers goroutines, GOMAXPROCS when
// numWorkers < 1.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		size:  numWorkers,
		close: func() {},
	}

	if numWorkers > 1 {
		pool.work = make(chan func(), numWorkers)
		for range numWorkers {
			pool.wg.Go(func() {
				for f := range pool.work {
					f()
				}
			})
		}
		pool.close = sync.OnceFunc(func() { close(pool.work) })
	}

	return pool
}

// Do runs f on the pool, blocking while all workers are busy and the queue
// is full. Do must not be called after Wait.
func (p *Pool) Do(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait stops accepting work and returns once everything submitted has run.
func (p *Pool) Wait() {
	p.close()
	p.wg.Wait()
}

func (p *Pool) Size() int {
	return p.size
}

// Band is the half-open range [Start, End).
type Band struct {
	Start, End int
}

// Bands splits [0, total) into at most parts contiguous, non-overlapping
// bands whose lengths differ by at most one.
func Bands(total, parts int) []Band {
	if total <= 0 {
		return nil
	}
	parts = min(max(parts, 1), total)

	bands := make([]Band, 0, parts)
	size, extra := total/parts, total%parts
	start := 0
	for i := range parts {
		end := start + size
		if i < extra {
			end++
		}
		bands = append(bands, Band{start, end})
		start = end
	}
	return bands
}
