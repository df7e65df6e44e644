package logger

// Console implements a console based logger.
// Console output always goes to stderr, stdout carries the generated strings.
type Console struct {
	Enabled          bool `mapstructure:"enabled"          toml:"enabled"`
	UseConsoleWriter bool `mapstructure:"useconsolewriter" toml:"useConsoleWriter"`
}

// LogFile implements a rolling file based logger, one file per level group.
type LogFile struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled"`
	Path    string `mapstructure:"path"    toml:"path"`

	ErrorLog        string `mapstructure:"error"           toml:"error"`
	ErrorMaxSize    int    `mapstructure:"errormaxsize"    toml:"errorMaxSize"`
	ErrorMaxBackups int    `mapstructure:"errormaxbackups" toml:"errorMaxBackups"`
	ErrorMaxAge     int    `mapstructure:"errormaxage"     toml:"errorMaxAge"`

	InfoLog        string `mapstructure:"info"           toml:"info"`
	InfoMaxSize    int    `mapstructure:"infomaxsize"    toml:"infoMaxSize"`
	InfoMaxBackups int    `mapstructure:"infomaxbackups" toml:"infoMaxBackups"`
	InfoMaxAge     int    `mapstructure:"infomaxage"     toml:"infoMaxAge"`

	TraceLog        string `mapstructure:"trace"           toml:"trace"`
	TraceMaxSize    int    `mapstructure:"tracemaxsize"    toml:"traceMaxSize"`
	TraceMaxBackups int    `mapstructure:"tracemaxbackups" toml:"traceMaxBackups"`
	TraceMaxAge     int    `mapstructure:"tracemaxage"     toml:"traceMaxAge"`

	WarnLog        string `mapstructure:"warn"           toml:"warn"`
	WarnMaxSize    int    `mapstructure:"warnmaxsize"    toml:"warnMaxSize"`
	WarnMaxBackups int    `mapstructure:"warnmaxbackups" toml:"warnMaxBackups"`
	WarnMaxAge     int    `mapstructure:"warnmaxage"     toml:"warnMaxAge"`
}

// Log implements the logger config.
type Log struct {
	LogLevel     string `mapstructure:"loglevel"     toml:"logLevel"` // trace, debug, info, warn, error.
	ReportCaller bool   `mapstructure:"reportcaller" toml:"reportCaller"`

	AppName     string `mapstructure:"appname"     toml:"appName"`
	ServiceName string `mapstructure:"servicename" toml:"serviceName"`

	Console Console `mapstructure:"console" toml:"console"`

	File LogFile `mapstructure:"file" toml:"file"`
}
