package errors

// Error message constants for the jssort linter
const (
	// File processing errors
	ErrMsgFailedToReadFile  = "failed to read file"
	ErrMsgFailedToParseFile = "failed to parse file"
	ErrMsgFailedToWriteFile = "failed to write file"

	// Directory processing errors
	ErrMsgFailedToCheckPath    = "failed to check path"
	ErrMsgFailedToFindFiles    = "failed to find source files in directory"
	ErrMsgFilesFailedToProcess = "%d files failed to process"

	// Configuration errors
	ErrMsgFailedToLoadConfig = "failed to load configuration"

	// Info/warning messages
	WarnMsgDirWithoutFix   = "Warning: Processing directory without --fix flag. No files will be modified."
	InfoMsgUseFixFlag      = "Use --fix to rewrite files in place."
	InfoMsgNoFilesFound    = "No lintable files found in directory: %s"
	InfoMsgFoundFiles      = "Found %d source files in directory: %s"
	InfoMsgErrorProcessing = "Error processing %s: %v"
	InfoMsgFixedFile       = "Fixed: %s"
	InfoMsgProcessedCount  = "\nProcessed %d files successfully"
	InfoMsgProblemCount    = ", %d problems found"
	InfoMsgErrorCount      = ", %d files had errors"
)
