// Package natives extracts native library archives into a natives directory
package natives

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/minepkg/mclaunch/internals/versions"
)

var (
	// ErrArchive is matched by errors of archives that could not be read
	ErrArchive = errors.New("could not read archive")
	// ErrUnsafeEntry is returned for entries that would be written outside of the target directory
	ErrUnsafeEntry = errors.New("archive entry points outside of the target directory")
)

// ArchiveError is returned if an archive can not be opened or walked
type ArchiveError struct {
	Path string
	Err  error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("could not read archive %s: %s", e.Path, e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// Is makes this error match ErrArchive
func (e *ArchiveError) Is(target error) bool {
	return target == ErrArchive
}

// Extractor copies the contents of native archives into a directory
type Extractor struct {
	Reader ArchiveReader
}

// NewExtractor returns an extractor for zip archives
func NewExtractor() *Extractor {
	return &Extractor{Reader: ZipReader{}}
}

// Extract writes all entries of the collection to targetDir and returns the
// names of the extracted files. Entries starting with one of the excluded
// prefixes of their archive are skipped. A file that exists in more than
// one archive ends up with the content of the last one.
// Files written before an error occurred are not removed.
func (e *Extractor) Extract(collection versions.NativeCollection, targetDir string) ([]string, error) {
	if err := os.MkdirAll(targetDir, os.ModePerm); err != nil {
		return nil, err
	}

	reader := e.Reader
	if reader == nil {
		reader = ZipReader{}
	}

	extracted := make([]string, 0)
	for _, archive := range collection {
		err := reader.Walk(archive.Path, func(entry Entry) error {
			if excluded(entry.Name, archive.Exclude) {
				return nil
			}
			written, err := extractEntry(entry, targetDir)
			if err != nil {
				return err
			}
			if written {
				extracted = append(extracted, entry.Name)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return extracted, nil
}

func excluded(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// extractEntry writes a single entry and reports if a file was written
func extractEntry(entry Entry, targetDir string) (bool, error) {
	dest := filepath.Join(targetDir, filepath.FromSlash(entry.Name))
	rel, err := filepath.Rel(targetDir, dest)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false, fmt.Errorf("%w: %s", ErrUnsafeEntry, entry.Name)
	}

	if entry.Dir {
		return false, os.MkdirAll(dest, os.ModePerm)
	}
	if rel == "." {
		return false, fmt.Errorf("%w: %q", ErrUnsafeEntry, entry.Name)
	}

	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return false, err
	}
	f, err := os.Create(dest)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if _, err := io.Copy(f, entry); err != nil {
		return false, err
	}
	return true, f.Close()
}
