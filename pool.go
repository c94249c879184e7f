package textrope

import "sync"

// ChunkPool recycles capacity-reserved chunk buffers for one size profile.
// The owning tree creates and drops leaves constantly during interactive
// editing; recycling the buffers keeps GC pressure down.
//
// Use is optional: the core algorithms allocate plain chunks and never
// require a pool.
type ChunkPool struct {
	limits Limits
	pool   sync.Pool
}

// NewChunkPool creates a pool for the given profile.
func NewChunkPool(l Limits) *ChunkPool {
	p := &ChunkPool{limits: l}
	p.pool.New = func() any {
		b := make([]byte, 0, l.ChunkMax())
		return &b
	}
	return p
}

// Get returns an empty chunk with capacity reserved per the profile.
func (p *ChunkPool) Get() Chunk {
	b := p.pool.Get().(*[]byte)
	return Chunk{text: (*b)[:0]}
}

// Put recycles a dropped chunk's buffer. The chunk must not be used after
// calling Put. Buffers that were reallocated past the profile's capacity
// are kept; undersized ones are discarded.
func (p *ChunkPool) Put(c *Chunk) {
	if c == nil || cap(c.text) < p.limits.ChunkMax() {
		return
	}
	b := c.text[:0]
	c.text = nil
	p.pool.Put(&b)
}

// Limits returns the profile the pool serves.
func (p *ChunkPool) Limits() Limits {
	return p.limits
}
