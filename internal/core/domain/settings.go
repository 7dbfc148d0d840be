package domain

// ConfigFileName is the name of the optional configuration file, looked up
// in the working directory and its parents.
const ConfigFileName = "spoolsync.yaml"

// Settings holds the resolved runtime configuration. Zero values mean
// "not set"; defaults and flag overrides are applied by the application.
type Settings struct {
	// URL is the base HTTP URL of the Spoolman installation.
	URL string
	// OutputDir is the directory the slicer reads filament configs from.
	OutputDir string
	// Slicer selects the target slicer and with it the output suffixes.
	Slicer string
	// TemplateDir is the directory holding the *.template files.
	TemplateDir string
	// Variants lists the per-filament output variants. Empty means one
	// unnamed variant.
	Variants []string
	// Mode selects which spools produce output files.
	Mode Mode
	// Verbose enables debug logging.
	Verbose bool
}
