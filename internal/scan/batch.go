package scan

import (
	"path/filepath"
	"runtime"
	"sync"

	"doc-scanner/internal/border"
	"doc-scanner/internal/raster"
)

// WorkerPool runs jobs on a fixed set of goroutines. The scan pipeline is
// single-threaded per image; the pool parallelizes across images.
type WorkerPool struct {
	workers  int
	jobQueue chan func()
	wg       sync.WaitGroup
	once     sync.Once
}

// NewWorkerPool creates a pool with the specified number of workers,
// defaulting to the CPU count when workers <= 0.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &WorkerPool{
		workers:  workers,
		jobQueue: make(chan func(), workers*2),
	}
}

// Start launches the workers. Safe to call more than once.
func (wp *WorkerPool) Start() {
	wp.once.Do(func() {
		for i := 0; i < wp.workers; i++ {
			go wp.worker()
		}
	})
}

func (wp *WorkerPool) worker() {
	for job := range wp.jobQueue {
		job()
	}
}

// Submit queues a job for execution.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.jobQueue <- func() {
		defer wp.wg.Done()
		job()
	}
}

// Wait blocks until all submitted jobs have finished.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Close shuts the pool down. Submit must not be called afterwards.
func (wp *WorkerPool) Close() {
	close(wp.jobQueue)
}

// BatchResult reports the outcome for one input file.
type BatchResult struct {
	Path    string
	OutPath string
	Corners *border.DetectedCorners
	Err     error
}

// ProcessBatch scans every input file concurrently and writes the cropped
// output into outDir under the input's base name. An empty outDir skips
// writing (detection only). Results are returned in input order; per-file
// failures are recorded, not fatal.
func (s *Scanner) ProcessBatch(paths []string, outDir string, workers int) []BatchResult {
	results := make([]BatchResult, len(paths))

	pool := NewWorkerPool(workers)
	pool.Start()
	defer pool.Close()

	for i, path := range paths {
		i, path := i, path
		pool.Submit(func() {
			results[i] = s.processOne(path, outDir)
		})
	}
	pool.Wait()

	return results
}

func (s *Scanner) processOne(path, outDir string) BatchResult {
	res := BatchResult{Path: path}

	img, err := raster.Load(path)
	if err != nil {
		res.Err = err
		return res
	}

	cropped, corners, err := s.ScanDocument(img)
	if err != nil {
		res.Err = err
		return res
	}
	res.Corners = corners

	if outDir != "" {
		res.OutPath = filepath.Join(outDir, filepath.Base(path))
		if err := raster.Save(cropped, res.OutPath); err != nil {
			res.Err = err
		}
	}
	return res
}
