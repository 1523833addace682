package concurrent

import (
	"sync"
)

type JobFunc[J any, R any] func(job J) R

// WorkerPool runs JobFunc on a fixed number of goroutines. Usage: Start, AddJob for every job,
// Close, then drain CollectResults while or after calling Wait.
type WorkerPool[J any, R any] struct {
	numWorkers int
	jobQueue   chan J
	results    chan R
	wg         sync.WaitGroup
}

// NewWorkerPool. jobQueueSize also sizes the result channel, so Wait never blocks when at most
// jobQueueSize jobs are added.
func NewWorkerPool[J any, R any](numWorkers, jobQueueSize int) *WorkerPool[J, R] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[J, R]{
		numWorkers: numWorkers,
		jobQueue:   make(chan J, jobQueueSize),
		results:    make(chan R, jobQueueSize),
	}
}

func (wp *WorkerPool[J, R]) worker(jobFunc JobFunc[J, R]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(job)
	}
}

func (wp *WorkerPool[J, R]) Start(jobFunc JobFunc[J, R]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// Wait blocks until every worker returned, then closes the result channel.
func (wp *WorkerPool[J, R]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[J, R]) AddJob(job J) {
	wp.jobQueue <- job
}

func (wp *WorkerPool[J, R]) CollectResults() <-chan R {
	return wp.results
}

// Close tells the workers no more jobs will be added.
func (wp *WorkerPool[J, R]) Close() {
	close(wp.jobQueue)
}

func (wp *WorkerPool[J, R]) NumWorkers() int {
	return wp.numWorkers
}
