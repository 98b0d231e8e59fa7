package meta

var (
	AppVersion = "v1.x"
)

const (
	AppName = "templog"

	AppDescription = "Creates a temporary log file once and hands its path to the logging bootstrap"

	EnvVarPrefix = "TEMPLOG_"

	// DefaultSuffix is used when the definer is asked for a file without a suffix
	DefaultSuffix = ".tmp"

	// DefaultFilePathTemplate points the file sink at the temporary log file
	DefaultFilePathTemplate = "${" + TempLogFileProperty + "}"

	// TempLogFileProperty is the property name the temporary log file is published under
	TempLogFileProperty = "tempfile"

	DefaultCLIPrefix = AppName + "-"
	DefaultCLISuffix = ".log"
)
