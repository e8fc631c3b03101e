package preflight

import (
	"pwna/internal/config"
	"pwna/internal/fileserve"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
	// Optional marks checks whose failure only degrades the run.
	Optional bool
}

// Inputs carries what the checks need to inspect.
type Inputs struct {
	ConfigPath string
	Config     *config.Config
	Bind       string
	// CLIPort is the port given on the command line, zero when absent.
	CLIPort int
	WorkDir string
}

// RunAll executes every check that the available inputs allow. Checks that
// depend on a config key are reported as failed when the key is missing.
func RunAll(in Inputs) []Result {
	results := []Result{CheckConfigFile("Config file", in.ConfigPath)}
	if in.Config == nil {
		return results
	}

	root, rootErr := in.Config.Directory()
	if rootErr != nil {
		results = append(results, Result{Name: "HTTP root", Detail: rootErr.Error()})
	} else {
		results = append(results, CheckDirectoryAccess("HTTP root", root))
	}

	configured, portErr := in.Config.Port()
	if portErr != nil && in.CLIPort == 0 {
		results = append(results, Result{Name: "HTTP port", Detail: portErr.Error()})
	} else {
		port := fileserve.ResolvePort(in.CLIPort, configured)
		results = append(results, CheckPortAvailable("HTTP port", in.Bind, port))
	}

	if rootErr == nil && in.WorkDir != "" {
		results = append(results, CheckLink("Working directory link", root, in.WorkDir))
	}
	return results
}
