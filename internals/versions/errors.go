package versions

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDescriptorUnavailable is matched by errors for versions without a local version file
	ErrDescriptorUnavailable = errors.New("version file is not available")
	// ErrInheritanceCycle is matched by errors for versions that (indirectly) inherit from themselves
	ErrInheritanceCycle = errors.New("version inherits from itself")
	// ErrPathEncoding is matched by errors for paths that are not valid text
	ErrPathEncoding = errors.New("path is not valid utf-8")
)

// DescriptorUnavailableError is returned if the version file of a requested version does not exist
type DescriptorUnavailableError struct {
	ID   string
	Path string
}

func (e *DescriptorUnavailableError) Error() string {
	return fmt.Sprintf("version %s is not installed: %s does not exist", e.ID, e.Path)
}

// Is makes this error match ErrDescriptorUnavailable
func (e *DescriptorUnavailableError) Is(target error) bool {
	return target == ErrDescriptorUnavailable
}

// InheritanceCycleError is returned when walking the inheritance chain visits a version twice
type InheritanceCycleError struct {
	ID string
	// Chain contains the visited versions, starting with the requested one
	Chain []string
}

func (e *InheritanceCycleError) Error() string {
	return fmt.Sprintf("version %s inherits from itself (%s → %s)", e.ID, strings.Join(e.Chain, " → "), e.ID)
}

// Is makes this error match ErrInheritanceCycle
func (e *InheritanceCycleError) Is(target error) bool {
	return target == ErrInheritanceCycle
}

// PathEncodingError is returned if a resolved path can not be used as text
type PathEncodingError struct {
	Path string
}

func (e *PathEncodingError) Error() string {
	return fmt.Sprintf("path %q is not valid utf-8", e.Path)
}

// Is makes this error match ErrPathEncoding
func (e *PathEncodingError) Is(target error) bool {
	return target == ErrPathEncoding
}
