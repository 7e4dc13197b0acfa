package filesystem

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sophialabs/gatecheck/internal/infrastructure/ports"
)

// Watcher watches an input artifact for changes and triggers a re-run
// callback. The artifact may be a single report file or a whole benchmark
// result tree.
type Watcher struct {
	path     string
	isDir    bool
	debounce time.Duration
	logger   ports.Logger
	watcher  *fsnotify.Watcher
	onChange func()
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher for the given artifact path. For a file, the
// containing directory is watched so replace-by-rename writes still fire.
func NewWatcher(path string, debounce time.Duration, logger ports.Logger, onChange func()) (*Watcher, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     path,
		isDir:    info.IsDir(),
		debounce: debounce,
		logger:   logger,
		watcher:  fsWatcher,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	if w.isDir {
		err = w.addRecursive(path)
	} else {
		err = fsWatcher.Add(filepath.Dir(path))
	}
	if err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}

	return w, nil
}

// Start begins watching for changes in a goroutine.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.loop()
}

// Stop terminates the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.watcher.Close()
	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !w.relevant(event.Name) {
				// The benchmarking harness creates new result directories
				// as benchmarks are added.
				if w.isDir && event.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = w.addRecursive(event.Name)
					}
				}
				continue
			}

			w.logger.Debug("artifact change detected", "file", event.Name, "op", event.Op.String())

			// Debounce: reset timer on each event.
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			timerC = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)

		case <-timerC:
			w.logger.Info("re-running gate after artifact change")
			w.onChange()
			timerC = nil
		}
	}
}

func (w *Watcher) relevant(name string) bool {
	if !w.isDir {
		return filepath.Clean(name) == filepath.Clean(w.path)
	}
	ext := filepath.Ext(name)
	return ext == ".json" || ext == ".xml"
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}
