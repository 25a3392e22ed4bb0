package errors

// The Application return code errors
const (
	RetLoadConfigError    = 10
	RetInvalidConfigError = 11
	RetGenerateFileError  = 20
	RetFileStatsError     = 21
)
