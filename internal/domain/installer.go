package domain

// CompatibilityCheck is one host requirement probed before installation.
type CompatibilityCheck struct {
	Component string `json:"component"`
	OK        bool   `json:"ok"`
}

// DepCheck is one declared dependency and whether it resolved.
type DepCheck struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Detail    string `json:"detail,omitempty"`
}

// InstallerRun is the result of invoking one installer in dry-run mode.
type InstallerRun struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Output  string `json:"output,omitempty"`
}

// InstallerReport aggregates all dry-run checks for one project directory.
type InstallerReport struct {
	Path          string               `json:"path"`
	Compatibility []CompatibilityCheck `json:"compatibility"`
	PythonDeps    []DepCheck           `json:"python_deps,omitempty"`
	CargoDeps     []DepCheck           `json:"cargo_deps,omitempty"`
	Runs          []InstallerRun       `json:"runs,omitempty"`
}

// Failed reports whether any check or dry-run in the report failed.
func (r *InstallerReport) Failed() bool {
	for _, c := range r.Compatibility {
		if !c.OK {
			return true
		}
	}
	for _, d := range r.CargoDeps {
		if !d.Available {
			return true
		}
	}
	for _, run := range r.Runs {
		if !run.Success {
			return true
		}
	}
	return false
}
