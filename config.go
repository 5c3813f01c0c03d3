package depot

// DefaultChunkCapacity is the number of rows held by one storage block.
const DefaultChunkCapacity = 512

// Config holds global configuration for newly created worlds
var Config config = config{
	chunkCapacity: DefaultChunkCapacity,
}

type config struct {
	chunkCapacity    int
	maxCachedQueries int
}

// SetChunkCapacity sets the block size used by worlds created afterwards.
// Values below one are ignored.
func (c *config) SetChunkCapacity(n int) {
	if n < 1 {
		return
	}
	c.chunkCapacity = n
}

func (c *config) ChunkCapacity() int {
	return c.chunkCapacity
}

// SetMaxCachedQueries bounds the number of query descriptors each archetype index caches.
// Zero means unbounded.
func (c *config) SetMaxCachedQueries(n int) {
	if n < 0 {
		n = 0
	}
	c.maxCachedQueries = n
}

func (c *config) MaxCachedQueries() int {
	return c.maxCachedQueries
}
