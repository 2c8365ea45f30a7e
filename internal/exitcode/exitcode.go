package exitcode

const (
	Success      = 0
	UsageError   = 1
	LoadError    = 2
	DBConnError  = 3
	CopyError    = 4
	PublishError = 5
	EmptyYear    = 6
	ExportError  = 7
	ServeError   = 8
)
