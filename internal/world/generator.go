package world

import (
	"github.com/aquilax/go-perlin"

	"voxmesh/internal/profiling"
	"voxmesh/internal/voxel"
)

// GeneratorParams tunes the heightmap noise.
type GeneratorParams struct {
	Alpha      float64 // noise smoothing
	Beta       float64 // noise frequency
	Octaves    int32
	Scale      float64 // world units per noise unit, as 1/scale
	BaseHeight int     // surface height at noise value 0.5
	Amplitude  float64 // surface height swing in blocks
}

// DefaultGeneratorParams keeps the whole surface inside a single chunk layer.
func DefaultGeneratorParams() GeneratorParams {
	return GeneratorParams{
		Alpha:      2.0,
		Beta:       2.0,
		Octaves:    3,
		Scale:      1.0 / 48.0,
		BaseHeight: 6,
		Amplitude:  6,
	}
}

// Generator fills chunks from a Perlin heightmap. Deterministic per seed.
type Generator struct {
	noise  *perlin.Perlin
	params GeneratorParams
}

// NewGenerator creates a generator for the given seed.
func NewGenerator(seed int64, params GeneratorParams) *Generator {
	return &Generator{
		noise:  perlin.NewPerlin(params.Alpha, params.Beta, params.Octaves, seed),
		params: params,
	}
}

// HeightAt computes the surface height (world Y of the top solid block) at
// world X, Z.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	x := float64(worldX) * g.params.Scale
	z := float64(worldZ) * g.params.Scale
	// Noise2D returns roughly [-1, 1]; normalize to [0, 1].
	n := (g.noise.Noise2D(x, z) + 1.0) / 2.0
	height := float64(g.params.BaseHeight) + (n-0.5)*2.0*g.params.Amplitude
	if height < 0 {
		height = 0
	}
	return int(height)
}

// PopulateChunk fills a chunk column by column: bedrock at world Y 0, stone
// in the deep, dirt below a grass top.
func (g *Generator) PopulateChunk(c *voxel.Chunk) {
	defer profiling.Track("world.PopulateChunk")()

	baseY := c.Coord.Y * voxel.SizeY
	for lx := 0; lx < voxel.SizeX; lx++ {
		for lz := 0; lz < voxel.SizeZ; lz++ {
			worldX := c.Coord.X*voxel.SizeX + lx
			worldZ := c.Coord.Z*voxel.SizeZ + lz
			height := g.HeightAt(worldX, worldZ)

			for ly := 0; ly < voxel.SizeY; ly++ {
				worldY := baseY + ly
				if worldY > height {
					break
				}
				var m voxel.Material
				switch {
				case worldY == 0:
					m = voxel.Bedrock
				case worldY == height:
					m = voxel.Grass
				case worldY >= height-3:
					m = voxel.Dirt
				default:
					m = voxel.Stone
				}
				// Local coordinates are in range by construction.
				_ = c.Set(lx, ly, lz, m)
			}
		}
	}
}
