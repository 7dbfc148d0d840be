package ports

// OutputDir is the durable file surface for generated configs. Names are
// relative to the configured output directory.
//
//go:generate mockgen -source=outputdir.go -destination=mocks/mock_outputdir.go -package=mocks
type OutputDir interface {
	// WriteFile atomically replaces the named file with data. No partial
	// file is ever observable.
	WriteFile(name string, data []byte) error

	// Remove deletes the named file.
	Remove(name string) error

	// RemoveBySuffix deletes every file in the directory whose name ends
	// in "." + one of the given suffixes, returning the removed names.
	RemoveBySuffix(suffixes []string) ([]string, error)
}
