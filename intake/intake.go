// Package intake receives files dropped onto the viewer and reads them
// asynchronously.
//
// A drop delivers only its first file. Delivery and reading happen off
// the event goroutine; there is no cancellation, so a consumer that is no
// longer interested simply stops receiving and ignores late values.
package intake

import (
	"io/fs"
	"log/slog"
	"sort"
	"sync"
)

// File is one dropped file.
type File interface {
	Name() string
	// ReadAll returns the whole file. It may block.
	ReadAll() ([]byte, error)
}

// Option configures an Intake.
type Option func(*Intake)

// WithLogger sets the logger drops are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(in *Intake) { in.log = l }
}

// WithBuffer sets the capacity of the Files channel. Drops beyond it are
// queued and forwarded in order by a single goroutine.
func WithBuffer(n int) Option {
	return func(in *Intake) { in.buffer = n }
}

// Intake is a drop sink. Files dropped on it come out of Files.
type Intake struct {
	files  chan File
	buffer int
	log    *slog.Logger

	mu         sync.Mutex
	pending    []File
	forwarding bool
}

// New returns an intake.
func New(opts ...Option) *Intake {
	in := &Intake{buffer: 4, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(in)
	}
	in.files = make(chan File, in.buffer)
	return in
}

// Files returns the channel dropped files are delivered on.
func (in *Intake) Files() <-chan File { return in.files }

// Drop handles one drop event. The first file, if any, is delivered; the
// rest are ignored. Drop never blocks, and files come out of Files in the
// order their drops happened.
func (in *Intake) Drop(files []File) {
	in.log.Info("dropping files", "count", len(files))
	if len(files) == 0 {
		return
	}
	f := files[0]

	in.mu.Lock()
	defer in.mu.Unlock()
	if !in.forwarding {
		select {
		case in.files <- f:
			return
		default:
		}
		in.forwarding = true
		go in.forward()
	}
	in.pending = append(in.pending, f)
}

// forward drains pending into files until it is empty.
func (in *Intake) forward() {
	for {
		in.mu.Lock()
		if len(in.pending) == 0 {
			in.forwarding = false
			in.mu.Unlock()
			return
		}
		f := in.pending[0]
		in.pending[0] = nil
		in.pending = in.pending[1:]
		in.mu.Unlock()

		in.files <- f
	}
}

type fsFile struct {
	fsys fs.FS
	name string
}

func (f fsFile) Name() string             { return f.name }
func (f fsFile) ReadAll() ([]byte, error) { return fs.ReadFile(f.fsys, f.name) }

// FilesFromFS lists the regular files at the root of fsys, sorted by name.
// Desktop drops arrive as such a file system.
func FilesFromFS(fsys fs.FS) ([]File, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	files := make([]File, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		files = append(files, fsFile{fsys: fsys, name: e.Name()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })
	return files, nil
}
