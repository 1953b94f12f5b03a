package config

// File represents the structure of the config.yaml configuration file.
type File struct {
	TargetDirectory string `yaml:"targetDirectory"`
	DryRun          bool   `yaml:"dryRun"`
	ConfirmLevel    string `yaml:"confirmLevel"`
}
