package depot

// column is the type-erased view of one component's storage inside an archetype.
type column interface {
	Len() int
	// pushZero appends a zero-valued row.
	pushZero()
	// pushFrom appends a copy of src's row to the column. src must hold the same type.
	pushFrom(src column, row int)
	// swapRemove moves the last row into row and shrinks by one.
	swapRemove(row int)
}

// chunkedColumn stores values in fixed-capacity blocks. Appending past the last block allocates a
// new block; filled blocks are never reallocated, so pointers into them stay valid while the
// column grows.
type chunkedColumn[T any] struct {
	chunks   [][]T
	length   int
	chunkCap int
	spare    []T
}

var _ column = &chunkedColumn[struct{}]{}

func newChunkedColumn[T any](chunkCap int) *chunkedColumn[T] {
	if chunkCap < 1 {
		fatal("chunk capacity must be positive, got %d", chunkCap)
	}
	return &chunkedColumn[T]{chunkCap: chunkCap}
}

func (c *chunkedColumn[T]) Len() int {
	return c.length
}

func (c *chunkedColumn[T]) at(row int) *T {
	if row < 0 || row >= c.length {
		fatal("row %d out of bounds [0, %d)", row, c.length)
	}
	return &c.chunks[row/c.chunkCap][row%c.chunkCap]
}

// push appends v and returns its row.
func (c *chunkedColumn[T]) push(v T) int {
	if c.length == len(c.chunks)*c.chunkCap {
		c.grow()
	}
	last := len(c.chunks) - 1
	c.chunks[last] = append(c.chunks[last], v)
	c.length++
	return c.length - 1
}

func (c *chunkedColumn[T]) grow() {
	block := c.spare
	c.spare = nil
	if block == nil {
		block = make([]T, 0, c.chunkCap)
	}
	c.chunks = append(c.chunks, block)
}

func (c *chunkedColumn[T]) pushZero() {
	var zero T
	c.push(zero)
}

func (c *chunkedColumn[T]) pushFrom(src column, row int) {
	typed, ok := src.(*chunkedColumn[T])
	if !ok {
		fatal("column type mismatch: %T into %T", src, c)
	}
	c.push(*typed.at(row))
}

func (c *chunkedColumn[T]) swapRemove(row int) {
	target := c.at(row)
	lastRow := c.length - 1
	if row != lastRow {
		*target = *c.at(lastRow)
	}

	lastChunk := len(c.chunks) - 1
	block := c.chunks[lastChunk]
	var zero T
	block[len(block)-1] = zero
	c.chunks[lastChunk] = block[:len(block)-1]
	c.length--

	// Keep one emptied block around so oscillating at a boundary does not reallocate.
	if len(c.chunks[lastChunk]) == 0 {
		c.spare = c.chunks[lastChunk]
		c.chunks[lastChunk] = nil
		c.chunks = c.chunks[:lastChunk]
	}
}

// blocks returns the filled storage blocks in row order. Blocks of columns with equal length and
// chunk capacity line up index for index.
func (c *chunkedColumn[T]) blocks() [][]T {
	return c.chunks
}
