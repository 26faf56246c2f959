package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxmesh/internal/meshing"
	"voxmesh/internal/voxel"
)

func TestSetGetWorldCoordinates(t *testing.T) {
	cs := NewChunkStore()

	require.NoError(t, cs.SetMaterial(5, 3, 7, voxel.Stone))
	assert.Equal(t, voxel.Stone, cs.Material(5, 3, 7))

	// Negative world coordinates wrap into the right chunk.
	require.NoError(t, cs.SetMaterial(-1, 0, -17, voxel.Dirt))
	assert.Equal(t, voxel.Dirt, cs.Material(-1, 0, -17))
	assert.True(t, cs.HasChunk(voxel.ChunkCoord{X: -1, Y: 0, Z: -2}))

	// Unloaded locations read as air.
	assert.Equal(t, voxel.Air, cs.Material(1000, 0, 1000))
	assert.False(t, cs.IsSolid(1000, 0, 1000))
}

func TestNeighborLookupAcrossBorder(t *testing.T) {
	cs := NewChunkStore()
	require.NoError(t, cs.SetMaterial(voxel.SizeX, 0, 0, voxel.Stone)) // chunk (1,0,0) local (0,0,0)

	lookup := cs.NeighborLookup(voxel.ChunkCoord{})

	m, err := lookup(meshing.East, voxel.SizeX, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, voxel.Stone, m)

	// No chunk loaded on the -X side: boundary-open, reads as air.
	m, err = lookup(meshing.West, -1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, voxel.Air, m)
}

func TestBorderEditMarksNeighborDirty(t *testing.T) {
	cs := NewChunkStore()
	a := cs.GetChunk(voxel.ChunkCoord{}, true)
	b := cs.GetChunk(voxel.ChunkCoord{X: 1}, true)
	a.SetClean()
	b.SetClean()

	// Edit on the +X border of chunk a changes face visibility in chunk b.
	require.NoError(t, cs.SetMaterial(voxel.SizeX-1, 0, 0, voxel.Stone))
	assert.True(t, a.IsDirty())
	assert.True(t, b.IsDirty())
}

func TestCrossChunkFaceCulling(t *testing.T) {
	cs := NewChunkStore()
	require.NoError(t, cs.SetMaterial(voxel.SizeX-1, 0, 0, voxel.Stone)) // chunk (0,0,0) east edge
	require.NoError(t, cs.SetMaterial(voxel.SizeX, 0, 0, voxel.Stone))   // chunk (1,0,0) west edge

	m := &meshing.Mesher{}
	for _, coord := range []voxel.ChunkCoord{{}, {X: 1}} {
		buf, err := m.Build(cs.GetChunk(coord, false), cs.NeighborLookup(coord))
		require.NoError(t, err)
		require.NoError(t, buf.Validate())
		// One of the six faces hidden by the neighbor chunk's voxel.
		assert.Equal(t, 20, buf.VertexCount(), "chunk %v", coord)
		assert.Len(t, buf.Indices, 30, "chunk %v", coord)
	}
}

func TestCoordsDeterministicOrder(t *testing.T) {
	cs := NewChunkStore()
	for _, c := range []voxel.ChunkCoord{{X: 1}, {X: -1}, {Z: 2}, {X: 1, Z: -1}} {
		cs.GetChunk(c, true)
	}
	first := cs.Coords()
	second := cs.Coords()
	assert.Equal(t, first, second)
	assert.Equal(t, voxel.ChunkCoord{X: -1}, first[0])
}

func TestEvictOutsideRadius(t *testing.T) {
	cs := NewChunkStore()
	cs.GetChunk(voxel.ChunkCoord{}, true)
	cs.GetChunk(voxel.ChunkCoord{X: 1}, true)
	cs.GetChunk(voxel.ChunkCoord{X: 10}, true)

	removed := cs.EvictOutsideRadius(0, 0, 2)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, cs.Len())
	assert.False(t, cs.HasChunk(voxel.ChunkCoord{X: 10}))
}
