package meshing

import "fmt"

// MeshBuffer is an indexed triangle mesh: parallel per-vertex position,
// normal and texture-coordinate arrays plus a triangle index list. Positions
// are chunk-local; the rendering collaborator translates by chunk coordinate
// times chunk size at draw time, so an unedited chunk's mesh survives being
// moved. Each Build call produces a fresh buffer owned by the caller.
type MeshBuffer struct {
	Positions []float32 // 3 floats per vertex
	Normals   []float32 // 3 floats per vertex, unit length, outward
	TexCoords []float32 // 2 floats per vertex, in [0,1]
	Indices   []uint32  // 3 indices per triangle, CCW viewed from outside
}

// VertexCount returns the number of vertices in the buffer.
func (b *MeshBuffer) VertexCount() int {
	return len(b.Positions) / 3
}

// TriangleCount returns the number of triangles in the buffer.
func (b *MeshBuffer) TriangleCount() int {
	return len(b.Indices) / 3
}

// Validate checks the buffer's structural invariants: parallel attribute
// arrays, whole triangles, and every index referencing an existing vertex.
func (b *MeshBuffer) Validate() error {
	if len(b.Positions)%3 != 0 {
		return fmt.Errorf("meshing: positions length %d is not a multiple of 3", len(b.Positions))
	}
	if len(b.Normals) != len(b.Positions) {
		return fmt.Errorf("meshing: %d normal floats for %d position floats", len(b.Normals), len(b.Positions))
	}
	vertexCount := len(b.Positions) / 3
	if len(b.TexCoords) != vertexCount*2 {
		return fmt.Errorf("meshing: %d texcoord floats for %d vertices", len(b.TexCoords), vertexCount)
	}
	if len(b.Indices)%3 != 0 {
		return fmt.Errorf("meshing: index count %d is not a multiple of 3", len(b.Indices))
	}
	for i, idx := range b.Indices {
		if int(idx) >= vertexCount {
			return fmt.Errorf("meshing: index %d at position %d out of range (%d vertices)", idx, i, vertexCount)
		}
	}
	return nil
}

// appendQuad appends four vertices sharing the direction's normal and two CCW
// triangles referencing them. Corner order must already be wound CCW viewed
// from outside.
func (b *MeshBuffer) appendQuad(dir FaceDirection, corners [4][3]float32) {
	base := uint32(b.VertexCount())
	n := dir.Normal()
	for i := 0; i < 4; i++ {
		b.Positions = append(b.Positions, corners[i][0], corners[i][1], corners[i][2])
		b.Normals = append(b.Normals, n[0], n[1], n[2])
		b.TexCoords = append(b.TexCoords, faceTexCoords[i][0], faceTexCoords[i][1])
	}
	b.Indices = append(b.Indices, base, base+1, base+2, base+2, base+3, base)
}
