package htmlparse

import (
	"github.com/zetsuboii/html-parser/internal/forest"
	"github.com/zetsuboii/html-parser/internal/mmfile"
	"github.com/zetsuboii/html-parser/pkg/types"
)

// OpenFile memory-maps the file at path and parses it. On success it
// returns the forest and a cleanup that releases the mapping; the cleanup
// must be called once the forest is no longer used, and never before, since
// every span in the forest resolves into the mapped bytes. Calling the
// cleanup twice is safe.
//
// On failure the mapping is already released and only the error returns.
//
// Example:
//
//	f, done, err := htmlparse.OpenFile("page.html", htmlparse.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer done()
func OpenFile(path string, opts types.Options) (*types.Forest, func() error, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, nil, &types.Error{
			Kind:   types.ErrKindIO,
			Msg:    "mapping " + path,
			Offset: -1,
			Err:    err,
		}
	}
	f, err := forest.Build(data, opts)
	if err != nil {
		_ = unmap()
		return nil, nil, err
	}
	return f, unmap, nil
}
