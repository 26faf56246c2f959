package meshing

import (
	"context"
	"sync"

	"voxmesh/internal/profiling"
	"voxmesh/internal/voxel"
)

// MeshJob is one chunk build request. The caller must keep the chunk and its
// neighbor data unmodified until the result arrives.
type MeshJob struct {
	Chunk     *voxel.Chunk
	Neighbors NeighborLookup
	Coord     voxel.ChunkCoord
	// Result channel - will be sent the result when done
	ResultChan chan MeshResult
}

// MeshResult contains the result of a meshing job.
type MeshResult struct {
	Coord  voxel.ChunkCoord
	Buffer *MeshBuffer
	Err    error
}

// WorkerPool meshes chunks in parallel across a fixed set of goroutines.
// Builds are independent per chunk, so the only coordination needed is the
// job queue itself.
type WorkerPool struct {
	mesher   Mesher
	jobQueue chan MeshJob
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool starts workers goroutines sharing a buffered job queue.
func NewWorkerPool(mesher Mesher, workers, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool{
		mesher:   mesher,
		jobQueue: make(chan MeshJob, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}

	return pool
}

// Submit queues a job without blocking. Returns false when the queue is full.
func (p *WorkerPool) Submit(job MeshJob) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitBlocking queues a job, waiting for space if necessary.
func (p *WorkerPool) SubmitBlocking(job MeshJob) {
	select {
	case p.jobQueue <- job:
	case <-p.ctx.Done():
	}
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			stop := profiling.Track("meshing.Build")
			buf, err := p.mesher.Build(job.Chunk, job.Neighbors)
			stop()

			select {
			case job.ResultChan <- MeshResult{Coord: job.Coord, Buffer: buf, Err: err}:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops accepting jobs and waits for in-flight builds to finish.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()
}

// QueueLen returns the current number of queued jobs.
func (p *WorkerPool) QueueLen() int {
	return len(p.jobQueue)
}
