package voxel

import (
	"errors"
	"testing"
)

func TestGetSetRoundTrip(t *testing.T) {
	c := NewChunk(ChunkCoord{})
	if err := c.Set(3, 7, 11, Stone); err != nil {
		t.Fatalf("set: %v", err)
	}
	m, err := c.Get(3, 7, 11)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m != Stone {
		t.Fatalf("got %v, want %v", m, Stone)
	}
}

func TestNewChunkIsAllAir(t *testing.T) {
	c := NewChunk(ChunkCoord{X: 1, Z: -2})
	for x := 0; x < SizeX; x++ {
		for y := 0; y < SizeY; y++ {
			for z := 0; z < SizeZ; z++ {
				if c.IsSolid(x, y, z) {
					t.Fatalf("new chunk has solid voxel at (%d, %d, %d)", x, y, z)
				}
			}
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	c := NewChunk(ChunkCoord{})
	cases := [][3]int{
		{-1, 0, 0}, {SizeX, 0, 0},
		{0, -1, 0}, {0, SizeY, 0},
		{0, 0, -1}, {0, 0, SizeZ},
	}
	for _, tc := range cases {
		if _, err := c.Get(tc[0], tc[1], tc[2]); err == nil {
			t.Errorf("Get(%v): expected out-of-bounds error", tc)
		}
		if err := c.Set(tc[0], tc[1], tc[2], Stone); err == nil {
			t.Errorf("Set(%v): expected out-of-bounds error", tc)
		}
		var oob *OutOfBoundsError
		_, err := c.Get(tc[0], tc[1], tc[2])
		if !errors.As(err, &oob) {
			t.Errorf("Get(%v): error %v is not *OutOfBoundsError", tc, err)
		}
		if c.IsSolid(tc[0], tc[1], tc[2]) {
			t.Errorf("IsSolid(%v): out-of-bounds must not be solid", tc)
		}
	}
}

func TestDirtyFlag(t *testing.T) {
	c := NewChunk(ChunkCoord{})
	c.SetClean()
	// Writing the value already present must not dirty the chunk.
	if err := c.Set(0, 0, 0, Air); err != nil {
		t.Fatalf("set: %v", err)
	}
	if c.IsDirty() {
		t.Fatal("no-op set marked chunk dirty")
	}
	if err := c.Set(0, 0, 0, Grass); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !c.IsDirty() {
		t.Fatal("material change did not mark chunk dirty")
	}
}

func TestFill(t *testing.T) {
	c := NewChunk(ChunkCoord{})
	c.Fill(Dirt)
	m, err := c.Get(SizeX-1, SizeY-1, SizeZ-1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m != Dirt {
		t.Fatalf("got %v, want %v", m, Dirt)
	}
}
