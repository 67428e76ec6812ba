package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/inovacc/cvehunt/internal/model"
)

// PageError reports the failure of a single page
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// FetchPages requests pages 1..pages of query concurrently, perPage results
// each, and waits for all of them. Records of successful pages are merged in
// completion order. Failed pages are passed to onError (when set) as they
// happen and contribute nothing; the returned error aggregates them while
// the merged records are still returned.
func FetchPages(ctx context.Context, s Searcher, query string, pages, perPage int, onError func(page int, err error)) ([]model.Repository, error) {
	if pages < 1 {
		pages = 1
	}

	var (
		mu    sync.Mutex
		repos []model.Repository
		errs  *multierror.Error
		wg    sync.WaitGroup
	)

	for page := 1; page <= pages; page++ {
		wg.Go(func() {
			found, err := s.Fetch(ctx, query, Page{Number: page, Size: perPage})
			if err != nil {
				if onError != nil {
					onError(page, err)
				}

				mu.Lock()
				errs = multierror.Append(errs, &PageError{Page: page, Err: err})
				mu.Unlock()

				return
			}

			mu.Lock()
			repos = append(repos, found...)
			mu.Unlock()
		})
	}

	wg.Wait()

	return repos, errs.ErrorOrNil()
}
