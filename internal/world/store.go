package world

import (
	"sort"
	"sync"

	"voxmesh/internal/meshing"
	"voxmesh/internal/profiling"
	"voxmesh/internal/voxel"
)

// ChunkStore manages the storage and retrieval of chunks and hands out the
// neighbor-lookup capability the mesher uses for cross-boundary culling.
type ChunkStore struct {
	chunks map[voxel.ChunkCoord]*voxel.Chunk
	mu     sync.RWMutex
}

// NewChunkStore creates an empty chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[voxel.ChunkCoord]*voxel.Chunk),
	}
}

// GetChunk returns the chunk at the given chunk coordinates. If the chunk
// doesn't exist and create is true, an empty one is created (but NOT
// populated).
func (cs *ChunkStore) GetChunk(coord voxel.ChunkCoord, create bool) *voxel.Chunk {
	cs.mu.RLock()
	chunk, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	if !exists && create {
		cs.mu.Lock()
		// Double-check: another goroutine might have created it while we
		// were waiting for the lock.
		if existing, ok := cs.chunks[coord]; ok {
			cs.mu.Unlock()
			return existing
		}
		chunk = voxel.NewChunk(coord)
		cs.chunks[coord] = chunk
		cs.mu.Unlock()
	}
	return chunk
}

// HasChunk checks whether a chunk exists without creating it.
func (cs *ChunkStore) HasChunk(coord voxel.ChunkCoord) bool {
	cs.mu.RLock()
	_, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	return exists
}

// AddChunk adds a pre-generated chunk to the store.
func (cs *ChunkStore) AddChunk(chunk *voxel.Chunk) {
	cs.mu.Lock()
	if _, ok := cs.chunks[chunk.Coord]; !ok {
		cs.chunks[chunk.Coord] = chunk
	}
	cs.mu.Unlock()
}

// chunkCoordFor returns the coordinate of the chunk containing a world-space
// voxel position.
func chunkCoordFor(x, y, z int) voxel.ChunkCoord {
	return voxel.ChunkCoord{
		X: floorDiv(x, voxel.SizeX),
		Y: floorDiv(y, voxel.SizeY),
		Z: floorDiv(z, voxel.SizeZ),
	}
}

// Material returns the material at the given world coordinates, Air when the
// containing chunk is not loaded.
func (cs *ChunkStore) Material(x, y, z int) voxel.Material {
	chunk := cs.GetChunk(chunkCoordFor(x, y, z), false)
	if chunk == nil {
		return voxel.Air
	}
	m, err := chunk.Get(mod(x, voxel.SizeX), mod(y, voxel.SizeY), mod(z, voxel.SizeZ))
	if err != nil {
		return voxel.Air
	}
	return m
}

// IsSolid reports whether the voxel at the given world coordinates occludes.
func (cs *ChunkStore) IsSolid(x, y, z int) bool {
	return cs.Material(x, y, z).Solid()
}

// SetMaterial sets the material at the given world coordinates, creating the
// containing chunk if needed. Edits on a chunk border mark the face-adjacent
// neighbor dirty as well, since the edit changes which of the neighbor's
// faces are visible.
func (cs *ChunkStore) SetMaterial(x, y, z int, m voxel.Material) error {
	chunk := cs.GetChunk(chunkCoordFor(x, y, z), true)

	localX := mod(x, voxel.SizeX)
	localY := mod(y, voxel.SizeY)
	localZ := mod(z, voxel.SizeZ)

	if err := chunk.Set(localX, localY, localZ, m); err != nil {
		return err
	}

	if localX == 0 {
		cs.markDirtyAt(x-1, y, z)
	} else if localX == voxel.SizeX-1 {
		cs.markDirtyAt(x+1, y, z)
	}
	if localY == 0 {
		cs.markDirtyAt(x, y-1, z)
	} else if localY == voxel.SizeY-1 {
		cs.markDirtyAt(x, y+1, z)
	}
	if localZ == 0 {
		cs.markDirtyAt(x, y, z-1)
	} else if localZ == voxel.SizeZ-1 {
		cs.markDirtyAt(x, y, z+1)
	}
	return nil
}

func (cs *ChunkStore) markDirtyAt(x, y, z int) {
	if nb := cs.GetChunk(chunkCoordFor(x, y, z), false); nb != nil {
		nb.MarkDirty()
	}
}

// NeighborLookup returns the meshing capability for the chunk at coord: given
// a face direction and a local coordinate that stepped outside that chunk, it
// resolves the material in the adjacent chunk, or Air when no neighbor chunk
// is loaded. It never treats "not loaded" as an error.
func (cs *ChunkStore) NeighborLookup(coord voxel.ChunkCoord) meshing.NeighborLookup {
	return func(dir meshing.FaceDirection, x, y, z int) (voxel.Material, error) {
		wx := coord.X*voxel.SizeX + x
		wy := coord.Y*voxel.SizeY + y
		wz := coord.Z*voxel.SizeZ + z
		return cs.Material(wx, wy, wz), nil
	}
}

// Coords returns the coordinates of all loaded chunks in deterministic
// (X, Y, Z) order.
func (cs *ChunkStore) Coords() []voxel.ChunkCoord {
	cs.mu.RLock()
	coords := make([]voxel.ChunkCoord, 0, len(cs.chunks))
	for coord := range cs.chunks {
		coords = append(coords, coord)
	}
	cs.mu.RUnlock()

	sort.Slice(coords, func(i, j int) bool {
		a, b := coords[i], coords[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	return coords
}

// Len returns the number of loaded chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// EvictOutsideRadius removes chunks whose XZ chunk coordinate lies outside
// the given radius around (cx, cz). Returns the number of removed chunks.
func (cs *ChunkStore) EvictOutsideRadius(cx, cz, radius int) int {
	defer profiling.Track("world.EvictOutsideRadius")()
	removed := 0
	cs.mu.Lock()
	for coord := range cs.chunks {
		dx := coord.X - cx
		dz := coord.Z - cz
		if dx*dx+dz*dz > radius*radius {
			delete(cs.chunks, coord)
			removed++
		}
	}
	cs.mu.Unlock()
	return removed
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns the non-negative remainder of a/b.
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
