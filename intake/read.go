package intake

import (
	"fmt"
	"mime"
	"path"

	"github.com/h2non/filetype"
)

// Contents is the result of reading a dropped file.
type Contents struct {
	Name string
	Data []byte
	// Type is the MIME type sniffed from Data, or guessed from the name.
	Type string
	Err  error
}

const unknownType = "application/octet-stream"

// ReadFile reads f on its own goroutine. The channel yields exactly one
// Contents and is then closed. A failed read is reported once in Err.
func ReadFile(f File) <-chan Contents {
	out := make(chan Contents, 1)
	go func() {
		defer close(out)
		data, err := f.ReadAll()
		if err != nil {
			out <- Contents{Name: f.Name(), Err: fmt.Errorf("intake: read %s: %w", f.Name(), err)}
			return
		}
		out <- Contents{Name: f.Name(), Data: data, Type: Sniff(f.Name(), data)}
	}()
	return out
}

// Sniff returns the MIME type of data. Content signatures win over the
// file extension.
func Sniff(name string, data []byte) string {
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return unknownType
}
