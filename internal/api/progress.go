package api

import (
	"io"
	"sync"
)

// Progress is the observable completion record for a tracked transfer.
// It is created per call and never reused. The transport is the sole writer
// of the byte counters while the call is in flight; the pipeline is the sole
// writer of the terminal error. Readers (e.g. a UI goroutine) may poll it at
// any time, including after completion.
//
// All methods are safe on a nil receiver, so untracked calls can pass a nil
// *Progress through the same code paths.
type Progress struct {
	mu     sync.Mutex
	loaded int64
	total  int64
	err    error
}

// Update replaces both counters, e.g. when a transfer direction starts.
func (p *Progress) Update(loaded, total int64) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loaded = loaded
	p.total = total
}

// Add advances the loaded counter by n bytes.
func (p *Progress) Add(n int64) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loaded += n
}

// SetErr records the terminal error of a failed transfer. It equals the
// error surfaced to the caller of the failed call.
func (p *Progress) SetErr(err error) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// Loaded returns the number of bytes transferred so far.
func (p *Progress) Loaded() int64 {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// Total returns the expected transfer size, or 0 if unknown.
func (p *Progress) Total() int64 {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// Err returns the terminal error, or nil while in flight or on success.
func (p *Progress) Err() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Complete reports whether the transfer finished successfully.
func (p *Progress) Complete() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err == nil && p.total > 0 && p.loaded == p.total
}

type countingReader struct {
	r io.Reader
	p *Progress
}

func (c *countingReader) Read(buf []byte) (int, error) {
	n, err := c.r.Read(buf)
	if n > 0 {
		c.p.Add(int64(n))
	}
	return n, err
}

// ProgressReader wraps r so that every byte read advances p's loaded
// counter. If p is nil, r is returned unchanged.
func ProgressReader(r io.Reader, p *Progress) io.Reader {
	if p == nil {
		return r
	}
	return &countingReader{r: r, p: p}
}
