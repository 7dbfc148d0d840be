package config

// File represents the structure of the spoolsync.yaml configuration file.
type File struct {
	URL         string   `yaml:"url"`
	OutputDir   string   `yaml:"dir"`
	Slicer      string   `yaml:"slicer"`
	TemplateDir string   `yaml:"templates"`
	Variants    []string `yaml:"variants"`
	Mode        string   `yaml:"mode"`
	Verbose     bool     `yaml:"verbose"`
}
