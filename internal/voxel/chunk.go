package voxel

const (
	// Chunk dimensions
	SizeX = 16
	SizeY = 16
	SizeZ = 16

	Volume = SizeX * SizeY * SizeZ
)

// ChunkCoord identifies a chunk on the chunk grid. World-space placement of a
// chunk's geometry is ChunkCoord * Size per axis; the chunk itself only ever
// deals in local coordinates.
type ChunkCoord struct {
	X, Y, Z int
}

// Chunk is a dense SizeX x SizeY x SizeZ grid of voxel materials. A chunk
// owns its storage exclusively and holds no reference to any mesh built from
// it; face visibility is derived by the mesher on demand, never cached here.
type Chunk struct {
	Coord  ChunkCoord
	voxels []Material
	dirty  bool
}

// NewChunk creates an all-air chunk at the given chunk coordinates.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{
		Coord:  coord,
		voxels: make([]Material, Volume),
		dirty:  true,
	}
}

// InBounds reports whether a local coordinate lies inside the chunk.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < SizeX && y >= 0 && y < SizeY && z >= 0 && z < SizeZ
}

// Index converts local coordinates to a flat storage index. Callers must
// ensure the coordinate is in bounds.
func Index(x, y, z int) int {
	return (x*SizeY+y)*SizeZ + z
}

// Get returns the material at the given local coordinates.
func (c *Chunk) Get(x, y, z int) (Material, error) {
	if !InBounds(x, y, z) {
		return Air, &OutOfBoundsError{X: x, Y: y, Z: z}
	}
	return c.voxels[Index(x, y, z)], nil
}

// Set stores the material at the given local coordinates. Only that cell is
// mutated; the dirty flag is raised when the stored value actually changes.
func (c *Chunk) Set(x, y, z int, m Material) error {
	if !InBounds(x, y, z) {
		return &OutOfBoundsError{X: x, Y: y, Z: z}
	}
	idx := Index(x, y, z)
	if c.voxels[idx] != m {
		c.voxels[idx] = m
		c.dirty = true
	}
	return nil
}

// IsSolid reports whether the cell at the given local coordinates holds a
// face-occluding material. Out-of-bounds coordinates are not solid, which is
// the answer the mesher's in-chunk visibility test needs at chunk edges.
func (c *Chunk) IsSolid(x, y, z int) bool {
	if !InBounds(x, y, z) {
		return false
	}
	return c.voxels[Index(x, y, z)].Solid()
}

// Fill sets every cell to the given material.
func (c *Chunk) Fill(m Material) {
	for i := range c.voxels {
		c.voxels[i] = m
	}
	c.dirty = true
}

// IsDirty returns whether the chunk has been modified since the last remesh.
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// SetClean marks the chunk as remeshed.
func (c *Chunk) SetClean() {
	c.dirty = false
}

// MarkDirty flags the chunk for remeshing, e.g. when an edit in a neighboring
// chunk changes face visibility along the shared border.
func (c *Chunk) MarkDirty() {
	c.dirty = true
}
