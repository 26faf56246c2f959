package meshing

import (
	"voxmesh/internal/voxel"
)

// dirSpec maps a face direction onto the axis it is perpendicular to and the
// two in-plane axes swept during greedy merging.
type dirSpec struct {
	dir        FaceDirection
	perp, u, v int // axis indices: 0=x, 1=y, 2=z
	sign       int // +1 faces along +perp, -1 along -perp
}

var greedyDirs = [FaceCount]dirSpec{
	{Down, 1, 0, 2, -1},
	{Up, 1, 0, 2, +1},
	{North, 2, 0, 1, +1},
	{South, 2, 0, 1, -1},
	{East, 0, 1, 2, +1},
	{West, 0, 1, 2, -1},
}

// buildGreedy emits the same visible-face set as the per-voxel path, but
// merges maximal rectangles of coplanar same-material faces into single
// quads. Directions, layers and mask cells are all iterated in fixed order,
// so the output stays deterministic.
func (m *Mesher) buildGreedy(c *voxel.Chunk, neighbors NeighborLookup) (*MeshBuffer, error) {
	buf := &MeshBuffer{}
	for _, ds := range greedyDirs {
		if err := greedyDirection(buf, c, neighbors, ds); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// greedyDirection sweeps the layers perpendicular to one face direction,
// building a material mask of visible faces per layer and merging it into
// quads.
func greedyDirection(buf *MeshBuffer, c *voxel.Chunk, neighbors NeighborLookup, ds dirSpec) error {
	dims := [3]int{voxel.SizeX, voxel.SizeY, voxel.SizeZ}
	nu, nv := dims[ds.u], dims[ds.v]

	for s := 0; s < dims[ds.perp]; s++ {
		mask := make([]voxel.Material, nu*nv)
		for a := 0; a < nu; a++ {
			for b := 0; b < nv; b++ {
				var pos [3]int
				pos[ds.perp], pos[ds.u], pos[ds.v] = s, a, b
				if !c.IsSolid(pos[0], pos[1], pos[2]) {
					continue
				}
				visible, err := faceVisible(c, neighbors, ds.dir, pos[0], pos[1], pos[2])
				if err != nil {
					return err
				}
				if visible {
					mat, _ := c.Get(pos[0], pos[1], pos[2])
					mask[a*nv+b] = mat
				}
			}
		}

		// Merge maximal same-material rectangles: grow width along v first,
		// then height along u, then clear the consumed region.
		for i := 0; i < nu*nv; i++ {
			mat := mask[i]
			if mat == voxel.Air {
				continue
			}
			a0, b0 := i/nv, i%nv
			width := 1
			for b1 := b0 + 1; b1 < nv && mask[a0*nv+b1] == mat; b1++ {
				width++
			}
			height := 1
		grow:
			for a1 := a0 + 1; a1 < nu; a1++ {
				for b1 := b0; b1 < b0+width; b1++ {
					if mask[a1*nv+b1] != mat {
						break grow
					}
				}
				height++
			}
			appendGreedyQuad(buf, ds, s, a0, b0, width, height)
			for aa := a0; aa < a0+height; aa++ {
				for bb := b0; bb < b0+width; bb++ {
					mask[aa*nv+bb] = voxel.Air
				}
			}
		}
	}
	return nil
}

// appendGreedyQuad emits one merged quad covering height cells along the u
// axis and width cells along the v axis of the layer plane.
func appendGreedyQuad(buf *MeshBuffer, ds dirSpec, s, a0, b0, width, height int) {
	var base [3]float32
	base[ds.perp] = float32(s)
	if ds.sign > 0 {
		base[ds.perp]++
	}
	base[ds.u] = float32(a0)
	base[ds.v] = float32(b0)

	var du, dv [3]float32
	du[ds.u] = float32(height)
	dv[ds.v] = float32(width)

	corners := [4][3]float32{
		base,
		add3(base, du),
		add3(add3(base, du), dv),
		add3(base, dv),
	}
	// Keep winding CCW viewed from outside: negative-facing planes reverse,
	// and the Y planes reverse again because their in-plane axes (x, z) wind
	// opposite to the x-y and y-z planes.
	if (ds.sign < 0) != (ds.perp == 1) {
		corners[1], corners[3] = corners[3], corners[1]
	}
	buf.appendQuad(ds.dir, corners)
}

func add3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}
