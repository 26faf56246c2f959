package meshing

import (
	"errors"
	"reflect"
	"testing"

	"voxmesh/internal/voxel"
)

func mustSet(t *testing.T, c *voxel.Chunk, x, y, z int, m voxel.Material) {
	t.Helper()
	if err := c.Set(x, y, z, m); err != nil {
		t.Fatalf("set (%d, %d, %d): %v", x, y, z, err)
	}
}

func mustBuild(t *testing.T, m *Mesher, c *voxel.Chunk, neighbors NeighborLookup) *MeshBuffer {
	t.Helper()
	buf, err := m.Build(c, neighbors)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := buf.Validate(); err != nil {
		t.Fatalf("invalid buffer: %v", err)
	}
	return buf
}

func TestEmptyChunkMesh(t *testing.T) {
	c := voxel.NewChunk(voxel.ChunkCoord{})
	buf := mustBuild(t, &Mesher{}, c, nil)
	if buf.VertexCount() != 0 || len(buf.Indices) != 0 {
		t.Fatalf("all-air chunk: got %d vertices, %d indices, want 0, 0", buf.VertexCount(), len(buf.Indices))
	}
}

func TestSingleVoxelMesh(t *testing.T) {
	c := voxel.NewChunk(voxel.ChunkCoord{})
	mustSet(t, c, 0, 0, 0, voxel.Stone)
	buf := mustBuild(t, &Mesher{}, c, nil)

	if buf.VertexCount() != 24 {
		t.Fatalf("got %d vertices, want 24", buf.VertexCount())
	}
	if len(buf.Indices) != 36 {
		t.Fatalf("got %d indices, want 36", len(buf.Indices))
	}

	// Each axis unit normal appears on exactly one face, 4 vertices each.
	counts := make(map[[3]float32]int)
	for i := 0; i < buf.VertexCount(); i++ {
		counts[[3]float32{buf.Normals[3*i], buf.Normals[3*i+1], buf.Normals[3*i+2]}]++
	}
	if len(counts) != 6 {
		t.Fatalf("got %d distinct normals, want 6", len(counts))
	}
	for n, count := range counts {
		if count != 4 {
			t.Errorf("normal %v appears %d times, want 4", n, count)
		}
		if n[0]*n[0]+n[1]*n[1]+n[2]*n[2] != 1 {
			t.Errorf("normal %v is not an axis unit vector", n)
		}
	}
}

func TestAdjacentVoxelsSharedFaceCulled(t *testing.T) {
	c := voxel.NewChunk(voxel.ChunkCoord{})
	mustSet(t, c, 0, 0, 0, voxel.Stone)
	mustSet(t, c, 1, 0, 0, voxel.Stone)
	buf := mustBuild(t, &Mesher{}, c, nil)

	// 12 faces minus the interior pair = 10 faces.
	if buf.VertexCount() != 40 {
		t.Fatalf("got %d vertices, want 40", buf.VertexCount())
	}
	if len(buf.Indices) != 60 {
		t.Fatalf("got %d indices, want 60", len(buf.Indices))
	}
}

func TestFilledChunkOnlyShellRemains(t *testing.T) {
	c := voxel.NewChunk(voxel.ChunkCoord{})
	c.Fill(voxel.Stone)
	buf := mustBuild(t, &Mesher{}, c, nil)

	wantFaces := 2 * (voxel.SizeX*voxel.SizeY + voxel.SizeY*voxel.SizeZ + voxel.SizeX*voxel.SizeZ)
	if buf.VertexCount() != wantFaces*4 {
		t.Fatalf("got %d vertices, want %d", buf.VertexCount(), wantFaces*4)
	}
	if len(buf.Indices) != wantFaces*6 {
		t.Fatalf("got %d indices, want %d", len(buf.Indices), wantFaces*6)
	}
}

func TestBoundaryOpenPolicy(t *testing.T) {
	c := voxel.NewChunk(voxel.ChunkCoord{})
	mustSet(t, c, 0, 0, 0, voxel.Stone)

	// Lookup that reports every neighbor chunk as unloaded.
	unloaded := func(dir FaceDirection, x, y, z int) (voxel.Material, error) {
		return voxel.Air, nil
	}
	buf := mustBuild(t, &Mesher{}, c, unloaded)
	if buf.VertexCount() != 24 {
		t.Fatalf("unloaded neighbors: got %d vertices, want 24", buf.VertexCount())
	}

	// A solid neighbor across the -X border culls the west face.
	solidWest := func(dir FaceDirection, x, y, z int) (voxel.Material, error) {
		if dir == West {
			return voxel.Stone, nil
		}
		return voxel.Air, nil
	}
	buf = mustBuild(t, &Mesher{}, c, solidWest)
	if buf.VertexCount() != 20 {
		t.Fatalf("solid west neighbor: got %d vertices, want 20", buf.VertexCount())
	}
}

func TestNeighborLookupFailureAbortsBuild(t *testing.T) {
	c := voxel.NewChunk(voxel.ChunkCoord{})
	mustSet(t, c, 0, 0, 0, voxel.Stone)

	wantErr := errors.New("chunk load failed")
	failing := func(dir FaceDirection, x, y, z int) (voxel.Material, error) {
		return voxel.Air, wantErr
	}

	m := &Mesher{}
	buf, err := m.Build(c, failing)
	if buf != nil {
		t.Fatal("failed build returned a partial buffer")
	}
	if !errors.Is(err, wantErr) {
		t.Fatalf("got error %v, want wrapped %v", err, wantErr)
	}
}

func TestDeterminism(t *testing.T) {
	c := voxel.NewChunk(voxel.ChunkCoord{})
	mustSet(t, c, 3, 4, 5, voxel.Stone)
	mustSet(t, c, 3, 5, 5, voxel.Dirt)
	mustSet(t, c, 15, 0, 15, voxel.Grass)

	for _, greedy := range []bool{false, true} {
		m := &Mesher{Greedy: greedy}
		a := mustBuild(t, m, c, nil)
		b := mustBuild(t, m, c, nil)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("greedy=%v: two builds of an unmodified chunk differ", greedy)
		}
	}
}

func TestValidateRejectsBrokenBuffers(t *testing.T) {
	buf := &MeshBuffer{
		Positions: []float32{0, 0, 0, 1, 0, 0, 1, 1, 0},
		Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		TexCoords: []float32{0, 0, 1, 0, 1, 1},
		Indices:   []uint32{0, 1, 2},
	}
	if err := buf.Validate(); err != nil {
		t.Fatalf("valid buffer rejected: %v", err)
	}

	broken := *buf
	broken.Indices = []uint32{0, 1, 3}
	if err := broken.Validate(); err == nil {
		t.Fatal("out-of-range index accepted")
	}

	broken = *buf
	broken.Indices = []uint32{0, 1}
	if err := broken.Validate(); err == nil {
		t.Fatal("partial triangle accepted")
	}

	broken = *buf
	broken.Normals = broken.Normals[:6]
	if err := broken.Validate(); err == nil {
		t.Fatal("mismatched normal count accepted")
	}
}
