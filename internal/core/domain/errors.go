package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrTransport is returned when the inventory source cannot be reached
	// after the client's own retries are exhausted.
	ErrTransport = zerr.New("inventory transport failed")

	// ErrMalformedPayload is returned when an entity record or event frame
	// cannot be parsed.
	ErrMalformedPayload = zerr.New("malformed payload")

	// ErrTemplateNotFound is returned when a named template does not exist.
	ErrTemplateNotFound = zerr.New("template not found")

	// ErrUnknownResource is returned for event frames naming a resource
	// other than vendor, filament, or spool.
	ErrUnknownResource = zerr.New("unknown resource")

	// ErrUnsupportedSlicer is returned for a slicer name outside the
	// supported set.
	ErrUnsupportedSlicer = zerr.New("unsupported slicer")

	// ErrInvalidMode is returned for an unrecognized per-spool mode.
	ErrInvalidMode = zerr.New("invalid per-spool mode")

	// ErrConfigInvalid is returned when the config file cannot be parsed.
	ErrConfigInvalid = zerr.New("invalid configuration file")

	// ErrOutputDirMissing is returned when the output directory does not exist.
	ErrOutputDirMissing = zerr.New("output directory does not exist")

	// ErrTemplateDirMissing is returned when the template directory does not exist.
	ErrTemplateDirMissing = zerr.New("template directory does not exist")
)

// IsTemplateNotFound reports whether err carries the template-not-found
// signal, which callers recover from by falling back to a default template.
func IsTemplateNotFound(err error) bool {
	return errors.Is(err, ErrTemplateNotFound)
}
