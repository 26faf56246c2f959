package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"voxmesh/internal/config"
	"voxmesh/internal/meshing"
	"voxmesh/internal/profiling"
	"voxmesh/internal/voxel"
	"voxmesh/internal/world"
	"voxmesh/pkg/objexport"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	output := flag.String("out", "", "output OBJ file (overrides config)")
	seed := flag.Int64("seed", 0, "world seed (overrides config)")
	radius := flag.Int("radius", -1, "chunk radius around origin (overrides config)")
	greedy := flag.Bool("greedy", false, "greedy face merging (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Output = *output
		case "seed":
			cfg.Seed = *seed
		case "radius":
			cfg.Radius = *radius
		case "greedy":
			cfg.Greedy = *greedy
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	start := time.Now()

	store := world.NewChunkStore()
	gen := world.NewGenerator(cfg.Seed, world.GeneratorParams{
		Alpha:      cfg.Noise.Alpha,
		Beta:       cfg.Noise.Beta,
		Octaves:    cfg.Noise.Octaves,
		Scale:      cfg.Noise.Scale,
		BaseHeight: cfg.Noise.BaseHeight,
		Amplitude:  cfg.Noise.Amplitude,
	})

	for cx := -cfg.Radius; cx <= cfg.Radius; cx++ {
		for cz := -cfg.Radius; cz <= cfg.Radius; cz++ {
			chunk := store.GetChunk(voxel.ChunkCoord{X: cx, Z: cz}, true)
			gen.PopulateChunk(chunk)
		}
	}
	coords := store.Coords()
	log.Printf("generated %d chunks (seed %d, radius %d)", len(coords), cfg.Seed, cfg.Radius)

	pool := meshing.NewWorkerPool(meshing.Mesher{Greedy: cfg.Greedy}, cfg.Workers, len(coords))
	results := make(chan meshing.MeshResult, len(coords))
	for _, coord := range coords {
		pool.SubmitBlocking(meshing.MeshJob{
			Chunk:      store.GetChunk(coord, false),
			Neighbors:  store.NeighborLookup(coord),
			Coord:      coord,
			ResultChan: results,
		})
	}

	buffers := make(map[voxel.ChunkCoord]*meshing.MeshBuffer, len(coords))
	for range coords {
		res := <-results
		if res.Err != nil {
			pool.Shutdown()
			log.Fatalf("mesh chunk (%d, %d, %d): %v", res.Coord.X, res.Coord.Y, res.Coord.Z, res.Err)
		}
		buffers[res.Coord] = res.Buffer
		store.GetChunk(res.Coord, false).SetClean()
	}
	pool.Shutdown()

	vertices, triangles := 0, 0
	for _, buf := range buffers {
		vertices += buf.VertexCount()
		triangles += buf.TriangleCount()
	}

	if err := writeOBJ(cfg.Output, coords, buffers); err != nil {
		log.Fatalf("write %s: %v", cfg.Output, err)
	}

	log.Printf("meshed %d chunks: %d vertices, %d triangles in %v", len(coords), vertices, triangles, time.Since(start))
	log.Printf("timing: %s", profiling.TopN(3))
}

func writeOBJ(path string, coords []voxel.ChunkCoord, buffers map[voxel.ChunkCoord]*meshing.MeshBuffer) error {
	mtlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".mtl"
	mtlFile, err := os.Create(mtlPath)
	if err != nil {
		return err
	}
	if err := objexport.WriteMTL(mtlFile); err != nil {
		mtlFile.Close()
		return err
	}
	if err := mtlFile.Close(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := objexport.NewWriter(f)
	if err := w.WriteHeader(filepath.Base(mtlPath)); err != nil {
		return err
	}
	for _, coord := range coords {
		if err := w.WriteMesh(coord, buffers[coord]); err != nil {
			return err
		}
	}
	return w.Flush()
}
