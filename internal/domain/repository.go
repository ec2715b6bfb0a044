package domain

// TargetRepository handles the build file, its backup sibling, and the apply
// history under a project root.
type TargetRepository interface {
	TargetPath() string
	BackupPath() string
	TargetExists() bool
	BackupExists() bool
	// RotateToBackup moves the live target onto the backup path, overwriting
	// any stale backup. The live target is always trusted as newer; recovery
	// more than one backup deep is unsupported.
	RotateToBackup() error
	ReadBackup() (string, error)
	WriteTarget(text string) error
	RemoveTarget() error
	RecordApply(rec ApplyRecord) error
	LoadHistory() ([]ApplyRecord, error)
}

// SourceScanner discovers source files for the generated array.
type SourceScanner interface {
	// Sources returns every file under sourceRoot (relative to the project
	// root) whose name ends in extension, as slash-separated project-root-
	// relative paths in lexicographic order.
	Sources(sourceRoot, extension string) ([]string, error)
}
