package meshing

import (
	"fmt"

	"voxmesh/internal/voxel"
)

// NeighborLookup resolves the material of a voxel that lies one step outside
// the chunk being meshed. It receives the face direction that was crossed and
// the stepped-out local coordinate; the capability wraps the coordinate into
// the adjacent chunk itself. When no neighbor chunk is loaded it returns Air
// (boundary-open policy: an unloaded neighbor never occludes), and a non-nil
// error only for genuine lookup faults such as a failed chunk load.
type NeighborLookup func(dir FaceDirection, x, y, z int) (voxel.Material, error)

// Mesher converts a chunk into a MeshBuffer containing only the faces not
// occluded by a solid neighbor. It is stateless apart from its options:
// concurrent Build calls on different chunks are safe as long as the caller
// keeps each chunk and its neighbor data unmodified for the duration.
type Mesher struct {
	// Greedy merges coplanar same-material faces into larger quads. Off by
	// default; per-voxel quads are already correct, merging only shrinks the
	// buffer.
	Greedy bool
}

// Build scans the chunk and emits one quad (4 vertices, 6 indices) per
// visible face. A face is visible iff the cell across it is not solid;
// in-chunk neighbors are read directly, stepped-out neighbors go through the
// lookup capability. A nil lookup means no neighbor chunks are loaded. Build
// is all-or-nothing: a lookup error aborts with no partial buffer, and
// identical inputs always produce bit-identical buffers.
func (m *Mesher) Build(c *voxel.Chunk, neighbors NeighborLookup) (*MeshBuffer, error) {
	if m.Greedy {
		return m.buildGreedy(c, neighbors)
	}

	buf := &MeshBuffer{}
	for x := 0; x < voxel.SizeX; x++ {
		for y := 0; y < voxel.SizeY; y++ {
			for z := 0; z < voxel.SizeZ; z++ {
				if !c.IsSolid(x, y, z) {
					continue
				}
				for _, dir := range Directions() {
					visible, err := faceVisible(c, neighbors, dir, x, y, z)
					if err != nil {
						return nil, err
					}
					if visible {
						buf.appendQuad(dir, voxelFaceCorners(dir, x, y, z))
					}
				}
			}
		}
	}
	return buf, nil
}

// faceVisible decides whether the face of the voxel at (x, y, z) pointing in
// dir is unoccluded.
func faceVisible(c *voxel.Chunk, neighbors NeighborLookup, dir FaceDirection, x, y, z int) (bool, error) {
	dx, dy, dz := dir.Offset()
	nx, ny, nz := x+dx, y+dy, z+dz

	if voxel.InBounds(nx, ny, nz) {
		return !c.IsSolid(nx, ny, nz), nil
	}
	if neighbors == nil {
		// No neighbor chunk loaded anywhere: edge faces are always drawn.
		return true, nil
	}
	mat, err := neighbors(dir, nx, ny, nz)
	if err != nil {
		return false, fmt.Errorf("meshing: neighbor lookup %s at (%d, %d, %d): %w", dir, nx, ny, nz, err)
	}
	return !mat.Solid(), nil
}

// voxelFaceCorners places the unit-cube face corners at the voxel's local
// position.
func voxelFaceCorners(dir FaceDirection, x, y, z int) [4][3]float32 {
	fx, fy, fz := float32(x), float32(y), float32(z)
	var corners [4][3]float32
	for i, c := range faceCorners[dir] {
		corners[i] = [3]float32{fx + c[0], fy + c[1], fz + c[2]}
	}
	return corners
}
