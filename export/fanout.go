package export

import (
	"context"
	"io"

	"github.com/neilotoole/streamcache"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Pipe runs write on its own goroutine and returns the stream it produces.
func Pipe(write func(w io.Writer) error) io.Reader {
	pr, pw := io.Pipe()

	go func() {
		pw.CloseWithError(write(pw))
	}()

	return pr
}

// Fanout reads src once and copies it to every sink concurrently.
func Fanout(ctx context.Context, src io.Reader, sinks ...io.Writer) error {
	if len(sinks) == 0 {
		_, err := io.Copy(io.Discard, src)
		return errors.Wrap(err, "drain stream")
	}

	cache := streamcache.New(src)

	readers := make([]*streamcache.Reader, len(sinks))
	for idx := range sinks {
		readers[idx] = cache.NewReader(ctx)
	}

	// no more readers, the cache can release data once all of them passed it
	cache.Seal()

	var g errgroup.Group

	for idx, sink := range sinks {
		g.Go(func() error {
			defer readers[idx].Close()

			_, err := io.Copy(sink, readers[idx])
			return errors.Wrap(err, "copy stream")
		})
	}

	return g.Wait()
}
