package intake

import (
	"bytes"
	"errors"
	"log/slog"
	"strconv"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memFile struct {
	name string
	data []byte
	err  error
}

func (f memFile) Name() string             { return f.name }
func (f memFile) ReadAll() ([]byte, error) { return f.data, f.err }

func recv[T any](t *testing.T, c <-chan T) T {
	t.Helper()
	select {
	case v := <-c:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}

func TestDropDeliversFirstFileOnly(t *testing.T) {
	in := New()
	in.Drop([]File{memFile{name: "a"}, memFile{name: "b"}})

	assert.Equal(t, "a", recv(t, in.Files()).Name())
	select {
	case f := <-in.Files():
		t.Fatalf("unexpected second file %q", f.Name())
	default:
	}
}

func TestDropEmptyDeliversNothing(t *testing.T) {
	var logs bytes.Buffer
	in := New(WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	in.Drop(nil)

	assert.Empty(t, in.Files())
	assert.Contains(t, logs.String(), "count=0")
}

func TestDropDoesNotBlockWhenFull(t *testing.T) {
	in := New(WithBuffer(1))
	done := make(chan struct{})
	go func() {
		in.Drop([]File{memFile{name: "1"}})
		in.Drop([]File{memFile{name: "2"}})
		in.Drop([]File{memFile{name: "3"}})
		close(done)
	}()
	recv(t, done)

	var got []string
	for range 3 {
		got = append(got, recv(t, in.Files()).Name())
	}
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestDropKeepsEventOrder(t *testing.T) {
	for trial := range 50 {
		in := New(WithBuffer(1))
		var want []string
		for i := range 8 {
			name := strconv.Itoa(i)
			want = append(want, name)
			in.Drop([]File{memFile{name: name}})
		}

		var got []string
		for range want {
			got = append(got, recv(t, in.Files()).Name())
		}
		require.Equal(t, want, got, "trial %d", trial)
	}
}

func TestDropInterleavedWithReceives(t *testing.T) {
	in := New(WithBuffer(2))
	in.Drop([]File{memFile{name: "a"}})
	in.Drop([]File{memFile{name: "b"}})
	in.Drop([]File{memFile{name: "c"}})
	assert.Equal(t, "a", recv(t, in.Files()).Name())
	in.Drop([]File{memFile{name: "d"}})

	var got []string
	for range 3 {
		got = append(got, recv(t, in.Files()).Name())
	}
	assert.Equal(t, []string{"b", "c", "d"}, got)
}

func TestReadFile(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	c := recv(t, ReadFile(memFile{name: "pic", data: png}))

	require.NoError(t, c.Err)
	assert.Equal(t, "pic", c.Name)
	assert.Equal(t, png, c.Data)
	assert.Equal(t, "image/png", c.Type)
}

func TestReadFileErrorDeliveredOnce(t *testing.T) {
	boom := errors.New("boom")
	ch := ReadFile(memFile{name: "bad", err: boom})

	c := recv(t, ch)
	assert.ErrorIs(t, c.Err, boom)
	assert.Nil(t, c.Data)

	_, open := <-ch
	assert.False(t, open)
}

func TestSniff(t *testing.T) {
	assert.Equal(t, unknownType, Sniff("noext", []byte{1, 2, 3}))
	assert.Equal(t, "application/json", Sniff("palette.json", []byte(`{"a":1}`)))
}

func TestFilesFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"b.txt":     {Data: []byte("bee")},
		"a.wasm":    {Data: []byte("\x00asm")},
		"dir/c.txt": {Data: []byte("nested")},
	}
	files, err := FilesFromFS(fsys)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.wasm", files[0].Name())
	assert.Equal(t, "b.txt", files[1].Name())

	data, err := files[1].ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "bee", string(data))
}

func TestDropFromFS(t *testing.T) {
	files, err := FilesFromFS(fstest.MapFS{"only.bin": {Data: []byte("x")}})
	require.NoError(t, err)

	in := New()
	in.Drop(files)
	c := recv(t, ReadFile(recv(t, in.Files())))
	require.NoError(t, c.Err)
	assert.Equal(t, "x", string(c.Data))
}
