package domain

// Config is the resolved configuration of a sweep.
type Config struct {
	// TargetDirectory is the directory to scan.
	TargetDirectory string
	// DryRun computes and reports without deleting anything.
	DryRun bool
	// ConfirmLevel controls operator prompts.
	ConfirmLevel ConfirmLevel
}

// DefaultConfig returns the configuration used when nothing is configured.
func DefaultConfig() Config {
	return Config{ConfirmLevel: DefaultConfirmLevel}
}
