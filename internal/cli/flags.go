package cli

import "github.com/isabella232/ducktape/internal/config"

// Flags holds command-line flags
type Flags struct {
	ResultsDir  string
	TemplateDir string
	TextOnly    bool
	HTMLOnly    bool
	Stdout      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ResultsDir:  f.ResultsDir,
		TemplateDir: f.TemplateDir,
		TextOnly:    f.TextOnly,
		HTMLOnly:    f.HTMLOnly,
		Stdout:      f.Stdout,
	}
}
