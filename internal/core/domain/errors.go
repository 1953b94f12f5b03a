package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedPackageName is returned when a file name does not follow
	// the <name>-<version>-<release>-<arch>.pkg.tar.<compression> convention.
	ErrMalformedPackageName = zerr.New("malformed package file name")

	// ErrUnparsableVersion is returned when the version-string of a package file cannot be segmented.
	ErrUnparsableVersion = zerr.New("unparsable package version")

	// ErrInvalidConfig is returned when the configuration cannot be used.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidConfirmLevel is returned when a confirm level is not one of the known levels.
	ErrInvalidConfirmLevel = zerr.New("invalid confirm level, expected one of: nothing, removal, ambiguities, everything")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrWatchRequiresNoConfirmation is returned when watch mode is started with a confirm level that prompts.
	ErrWatchRequiresNoConfirmation = zerr.New("watch mode requires --confirm=nothing")

	// ErrNotADirectory is returned when the target path is missing or not a directory.
	ErrNotADirectory = zerr.New("target is not a directory")

	// ErrScanFailed is returned when the target directory cannot be enumerated.
	ErrScanFailed = zerr.New("failed to scan directory")

	// ErrRemovalFailed is returned when deleting a superseded file fails.
	ErrRemovalFailed = zerr.New("failed to remove file")

	// ErrPromptFailed is returned when the operator could not be asked for a decision.
	ErrPromptFailed = zerr.New("failed to read operator input")

	// ErrWatchFailed is returned when the directory watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch directory")
)
