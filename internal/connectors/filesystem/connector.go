package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/parley-labs/parley-cli/internal/core/domain"
)

// DefaultMaxFileSize is the largest file the connector will read.
const DefaultMaxFileSize = 2 << 20 // 2 MiB

// FileInfo describes a candidate document file.
type FileInfo struct {
	// Path is the absolute or caller-relative location on disk.
	Path string

	// Name is the base file name.
	Name string

	// Size is the file size in bytes.
	Size int64
}

// Event reports a created or written candidate file under a watched
// directory.
type Event struct {
	// Path is the location reported by the watcher.
	Path string

	// Name is the base file name.
	Name string
}

// Connector reads documents from the local filesystem. It filters by
// file extension, skips hidden files, and enforces a size ceiling.
type Connector struct {
	extensions  map[string]struct{}
	maxFileSize int64

	mu      sync.Mutex
	closed  bool
	watcher *fsnotify.Watcher
}

// Option configures a Connector.
type Option func(*Connector)

// WithExtensions sets the file extensions (dot included) the connector
// accepts. Matching is case-insensitive.
func WithExtensions(exts []string) Option {
	return func(c *Connector) {
		c.extensions = make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			c.extensions[strings.ToLower(ext)] = struct{}{}
		}
	}
}

// WithMaxFileSize sets the largest file size in bytes the connector
// will read. Non-positive values are ignored.
func WithMaxFileSize(n int64) Option {
	return func(c *Connector) {
		if n > 0 {
			c.maxFileSize = n
		}
	}
}

// New creates a filesystem connector. By default it accepts .txt, .md
// and .log files up to DefaultMaxFileSize.
func New(opts ...Option) *Connector {
	c := &Connector{
		extensions: map[string]struct{}{
			".txt": {},
			".md":  {},
			".log": {},
		},
		maxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListFiles enumerates candidate files directly under dir. Hidden
// files, subdirectories, unsupported extensions and oversized files are
// skipped. Entries come back in name order.
func (c *Connector) ListFiles(ctx context.Context, dir string) ([]FileInfo, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory %s does not exist: %w", dir, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory: %w", dir, domain.ErrInvalidInput)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !c.Eligible(entry.Name()) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue // vanished between ReadDir and stat
		}
		if fi.Size() > c.maxFileSize {
			continue
		}
		files = append(files, FileInfo{
			Path: filepath.Join(dir, entry.Name()),
			Name: entry.Name(),
			Size: fi.Size(),
		})
	}
	return files, nil
}

// ReadFile reads a single file, enforcing the size ceiling.
func (c *Connector) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file %s does not exist: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("checking file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, domain.ErrInvalidInput)
	}
	if info.Size() > c.maxFileSize {
		return nil, fmt.Errorf("file %s exceeds %d bytes: %w", path, c.maxFileSize, domain.ErrInvalidInput)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

// Eligible reports whether a file name is a candidate document: not
// hidden and carrying a supported extension.
func (c *Connector) Eligible(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	_, ok := c.extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Watch monitors dir for created or written candidate files and
// delivers one Event per change. The channel closes when ctx is
// cancelled or the underlying watcher fails.
func (c *Connector) Watch(ctx context.Context, dir string) (<-chan Event, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, fmt.Errorf("connector is closed")
	}
	c.mu.Unlock()

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch path error: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch path error: %s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	c.mu.Lock()
	c.watcher = watcher
	c.mu.Unlock()

	events := make(chan Event)
	go func() {
		defer close(events)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
					continue
				}
				name := filepath.Base(ev.Name)
				if !c.Eligible(name) {
					continue
				}
				select {
				case events <- Event{Path: ev.Name, Name: name}:
				case <-ctx.Done():
					return
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return events, nil
}

// Close stops any active watcher. It is safe to call multiple times.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if c.watcher != nil {
		_ = c.watcher.Close()
		c.watcher = nil
	}
	return nil
}
