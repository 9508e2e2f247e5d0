package usecase

// Config contains all application configuration after merging the config
// file with command-line flags.
type Config struct {
	Verbose     bool
	Quiet       bool
	Format      string
	Precision   int
	ToleranceMS int
	LogLevel    string
}

// Output format names accepted in config and on the command line.
const (
	FormatSeconds = "seconds"
	FormatMillis  = "millis"
	FormatHuman   = "human"
)
