package discovery

import (
	"fmt"
	"sync"
	"time"

	"github.com/aimanifest/aimanifest/models"
)

// DefaultConcurrency is the batch group size when the caller supplies none.
const DefaultConcurrency = 5

// groupPause spaces out groups to reduce burst load on target hosts. The
// pause sits between groups, never inside one.
const groupPause = 500 * time.Millisecond

// BatchOptions configures a BatchCheck run.
type BatchOptions struct {
	// Concurrency is the group size; URLs within a group are checked in
	// parallel, groups run one after another.
	Concurrency int
	// OnProgress, when set, is invoked after each individual URL completes
	// with the running completed count and the total.
	OnProgress func(completed, total int)
}

// BatchCheck runs the discovery pipeline for every URL and returns a result
// keyed by input URL. Every input URL appears exactly once; a URL whose
// check panics is converted into a found=false result carrying the message
// and never aborts the batch. Map iteration order carries no meaning.
func (c *Checker) BatchCheck(urls []string, opts BatchOptions) map[string]*models.CheckResult {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make(map[string]*models.CheckResult, len(urls))
	var mu sync.Mutex
	completed := 0
	total := len(urls)

	for start := 0; start < len(urls); start += concurrency {
		end := min(start+concurrency, len(urls))

		var wg sync.WaitGroup
		for _, rawURL := range urls[start:end] {
			wg.Add(1)
			go func(rawURL string) {
				defer wg.Done()
				result := c.safeCheck(rawURL)

				mu.Lock()
				results[rawURL] = result
				completed++
				done := completed
				mu.Unlock()

				// Invoked outside the lock so a slow callback cannot stall
				// the rest of the group.
				if opts.OnProgress != nil {
					opts.OnProgress(done, total)
				}
			}(rawURL)
		}
		wg.Wait()

		if end < len(urls) {
			time.Sleep(groupPause)
		}
	}

	return results
}

// safeCheck shields the batch from a panicking check.
func (c *Checker) safeCheck(rawURL string) (result *models.CheckResult) {
	defer func() {
		if r := recover(); r != nil {
			result = &models.CheckResult{
				URL:    rawURL,
				Errors: []string{fmt.Sprintf("check failed: %v", r)},
			}
		}
	}()
	return c.CheckWebsite(rawURL)
}
