package natives

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
	archiver "github.com/mholt/archiver/v3"
)

// Entry is a single file or directory inside an archive
type Entry struct {
	// Name is the full slash separated path inside the archive
	Name string
	Dir  bool
	io.Reader
}

// ArchiveReader walks over all entries of an archive
type ArchiveReader interface {
	// Walk calls fn for every entry of the archive at path, in archive order.
	// It stops at the first error returned by fn and returns it.
	// The entry reader is only valid until fn returns.
	Walk(path string, fn func(Entry) error) error
}

// ZipReader reads zip (and jar) archives
type ZipReader struct{}

// Walk implements ArchiveReader. Archives that can not be read result in an [ArchiveError].
func (ZipReader) Walk(path string, fn func(Entry) error) error {
	var fnErr error
	err := archiver.NewZip().Walk(path, func(f archiver.File) error {
		header, ok := f.Header.(zip.FileHeader)
		if !ok {
			return fmt.Errorf("unexpected zip header %T", f.Header)
		}
		if err := fn(Entry{Name: header.Name, Dir: f.IsDir(), Reader: f}); err != nil {
			fnErr = err
			return archiver.ErrStopWalk
		}
		return nil
	})
	if err != nil {
		return &ArchiveError{Path: path, Err: err}
	}
	return fnErr
}
