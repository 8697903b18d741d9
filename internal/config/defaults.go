package config

const (
	// DefaultResultsDir is the default session results directory
	DefaultResultsDir = "results"
	// DefaultResultsFile is the name of the collected results file
	DefaultResultsFile = "results.json"
	// EnvFile is the dotenv file consulted for overrides
	EnvFile = ".env"

	// EnvResultsDir overrides the session results directory
	EnvResultsDir = "DUCKTAPE_RESULTS_DIR"
	// EnvTemplateDir overrides the report template directory
	EnvTemplateDir = "DUCKTAPE_TEMPLATE_DIR"
)
