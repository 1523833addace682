package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	testCases := []struct {
		name       string
		numWorkers int
		jobs       []int
	}{
		{name: "single worker", numWorkers: 1, jobs: []int{1, 2, 3}},
		{name: "more workers than jobs", numWorkers: 8, jobs: []int{4, 5}},
		{name: "no jobs", numWorkers: 2, jobs: []int{}},
		{name: "non-positive workers", numWorkers: 0, jobs: []int{7}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool[int, int](tt.numWorkers, len(tt.jobs))
			assert.Equal(t, max(tt.numWorkers, 1), wp.NumWorkers())
			wp.Start(func(job int) int {
				return job * job
			})
			for _, j := range tt.jobs {
				wp.AddJob(j)
			}
			wp.Close()
			wp.Wait()

			got := make([]int, 0, len(tt.jobs))
			for r := range wp.CollectResults() {
				got = append(got, r)
			}
			sort.Ints(got)

			expected := make([]int, 0, len(tt.jobs))
			for _, j := range tt.jobs {
				expected = append(expected, j*j)
			}
			sort.Ints(expected)
			assert.Equal(t, expected, got)
		})
	}
}
