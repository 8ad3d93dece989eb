package domain

// Action is the outcome of processing a single asset during a pass.
type Action string

const (
	// ActionCompiled means the shader compiler produced a fresh output.
	ActionCompiled Action = "compiled"
	// ActionCached means a shader was skipped because its build record is current.
	ActionCached Action = "cached"
	// ActionCopied means a plain asset was copied to the build tree.
	ActionCopied Action = "copied"
	// ActionUpToDate means the destination already matched the source.
	ActionUpToDate Action = "up-to-date"
	// ActionIgnored means the asset produces no output (include-only files).
	ActionIgnored Action = "ignored"
)

// IsWrite reports whether the action wrote to the build tree.
func (a Action) IsWrite() bool {
	return a == ActionCompiled || a == ActionCopied
}

// Report summarizes a synchronization pass.
type Report struct {
	Compiled int
	Cached   int
	Copied   int
	UpToDate int
	Ignored  int
}

// Record counts one asset outcome.
func (r *Report) Record(a Action) {
	switch a {
	case ActionCompiled:
		r.Compiled++
	case ActionCached:
		r.Cached++
	case ActionCopied:
		r.Copied++
	case ActionUpToDate:
		r.UpToDate++
	case ActionIgnored:
		r.Ignored++
	}
}

// Writes returns the number of assets written during the pass.
func (r Report) Writes() int {
	return r.Compiled + r.Copied
}

// Total returns the number of assets visited during the pass.
func (r Report) Total() int {
	return r.Compiled + r.Cached + r.Copied + r.UpToDate + r.Ignored
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
