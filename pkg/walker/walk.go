package walker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
)

type Config[R any, A any] struct {
	Max       int
	Semaphore chan struct{}
	Skipper   func(path string) bool
	Do        func(Args[A]) (R, error)
	Args      A
}

type Args[A any] struct {
	Context context.Context
	Root    string
	Path    string
	Args    A
}

// WalkDir traverses the folder rooted at "root" and runs config.Do for every
// file not skipped, with at most cap(config.Semaphore) running at once
// (runtime.NumCPU by default). Results are sent on results, which is closed
// on return. Every failed file is reported in the returned error.
func WalkDir[R any, A any](ctx context.Context, root string, results chan<- R, config Config[R, A]) error {
	if results == nil {
		return errors.New("results must not be nil")
	}

	defer close(results)

	if config.Do == nil {
		return errors.New("do function must not be nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if config.Semaphore == nil {
		config.Semaphore = make(chan struct{}, runtime.NumCPU())
	}

	var (
		count int
		wg    sync.WaitGroup
		mu    sync.Mutex
		errs  []error
	)
	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fail(fmt.Errorf("error accessing %s: %w", path, err))
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if config.Skipper != nil && config.Skipper(path) {
			return nil
		}
		if config.Max > 0 && count >= config.Max {
			return filepath.SkipAll
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		count++
		wg.Add(1)

		config.Semaphore <- struct{}{}
		go func(path string) {
			defer func() { <-config.Semaphore; wg.Done() }()
			result, err := config.Do(Args[A]{
				Context: ctx,
				Root:    root,
				Path:    path,
				Args:    config.Args,
			})
			if err != nil {
				log.Warn("Failed", "path", path, "err", err)
				fail(fmt.Errorf("%s: %w", path, err))
				return
			}
			results <- result
			log.Debugf("Finished %s %#v", path, result)
		}(path)

		return nil
	})
	wg.Wait()
	if err != nil {
		fail(fmt.Errorf("error walking the path %s: %w", root, err))
	}
	return errors.Join(errs...)
}

func Skippers(skippers ...func(path string) bool) func(path string) bool {
	return func(path string) bool {
		for _, skipper := range skippers {
			if skipper == nil {
				continue
			}
			if skipper(path) {
				return true
			}
		}
		return false
	}
}
