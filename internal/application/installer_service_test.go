package application_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/opsource/opsctl/internal/application"
	"github.com/opsource/opsctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findDep(deps []domain.DepCheck, name string) (domain.DepCheck, bool) {
	for _, d := range deps {
		if d.Name == name {
			return d, true
		}
	}
	return domain.DepCheck{}, false
}

func TestInstallerService_Compatibility(t *testing.T) {
	dir := t.TempDir()
	runner := &stubRunner{available: map[string]bool{"rustc": true}}
	svc := application.NewInstallerService(runner)

	report, err := svc.Check(context.Background(), dir)
	require.NoError(t, err)

	byName := map[string]bool{}
	for _, c := range report.Compatibility {
		byName[c.Component] = c.OK
	}
	assert.True(t, byName["Rust"])
	assert.False(t, byName["Cargo"])
}

func TestInstallerService_PythonDeps(t *testing.T) {
	dir := t.TempDir()
	reqs := "requests==2.31.0\n# a comment\n\nPyYAML>=5.1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte(reqs), 0644))

	runner := &stubRunner{
		available: map[string]bool{"python3": true},
		results: map[string]domain.CommandResult{
			"python3 -m pip show requests": {ExitCode: 0},
			"python3 -m pip show pyyaml":   {ExitCode: 1},
		},
	}
	svc := application.NewInstallerService(runner)

	report, err := svc.Check(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, report.PythonDeps, 2)

	requests, ok := findDep(report.PythonDeps, "requests")
	require.True(t, ok)
	assert.True(t, requests.Available)

	pyyaml, ok := findDep(report.PythonDeps, "pyyaml")
	require.True(t, ok)
	assert.False(t, pyyaml.Available)
}

func TestInstallerService_PythonDepsWithoutInterpreter(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("requests\n"), 0644))

	svc := application.NewInstallerService(&stubRunner{available: map[string]bool{}})

	report, err := svc.Check(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, report.PythonDeps, 1)
	assert.False(t, report.PythonDeps[0].Available)
	assert.Equal(t, "python3 not found", report.PythonDeps[0].Detail)
}

func TestInstallerService_CargoDeps(t *testing.T) {
	dir := t.TempDir()
	manifest := "[package]\nname = \"anya\"\nversion = \"0.1.0\"\n\n[dependencies]\ntokio = { version = \"1\", features = [\"full\"] }\nserde = \"1.0\"\n"
	manifestPath := filepath.Join(dir, "Cargo.toml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifest), 0644))

	runner := &stubRunner{
		available: map[string]bool{"cargo": true, "rustc": true},
		results: map[string]domain.CommandResult{
			"cargo fetch --manifest-path " + manifestPath: {ExitCode: 0},
		},
	}
	svc := application.NewInstallerService(runner)

	report, err := svc.Check(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, report.CargoDeps, 2)

	// Sorted by name, all resolved.
	assert.Equal(t, "serde", report.CargoDeps[0].Name)
	assert.Equal(t, "tokio", report.CargoDeps[1].Name)
	assert.True(t, report.CargoDeps[0].Available)
	assert.True(t, report.CargoDeps[1].Available)
	assert.False(t, report.Failed())
}

func TestInstallerService_CargoDepsFetchFailure(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "Cargo.toml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("[dependencies]\nserde = \"1.0\"\n"), 0644))

	runner := &stubRunner{
		available: map[string]bool{"cargo": true},
		results: map[string]domain.CommandResult{
			"cargo fetch --manifest-path " + manifestPath: {
				ExitCode: 101,
				Stderr:   "warning: something\nerror: failed to select a version for serde\n",
			},
		},
	}
	svc := application.NewInstallerService(runner)

	report, err := svc.Check(context.Background(), dir)
	require.NoError(t, err)

	serde, ok := findDep(report.CargoDeps, "serde")
	require.True(t, ok)
	assert.False(t, serde.Available)

	detail, ok := findDep(report.CargoDeps, "cargo fetch")
	require.True(t, ok)
	assert.Contains(t, detail.Detail, "error: failed to select")
	assert.True(t, report.Failed())
}

func TestInstallerService_CargoMissing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[dependencies]\nserde = \"1.0\"\n"), 0644))

	svc := application.NewInstallerService(&stubRunner{available: map[string]bool{}})

	report, err := svc.Check(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, report.CargoDeps, 1)
	assert.Equal(t, "cargo", report.CargoDeps[0].Name)
	assert.Equal(t, "not installed or not in PATH", report.CargoDeps[0].Detail)
}

func TestInstallerService_DryRunsPythonInstaller(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "scripts", "install.py")
	require.NoError(t, os.MkdirAll(filepath.Dir(script), 0755))
	require.NoError(t, os.WriteFile(script, []byte("print('ok')\n"), 0644))

	runner := &stubRunner{
		available: map[string]bool{"python3": true},
		results: map[string]domain.CommandResult{
			"python3 " + script + " --dry-run": {Stdout: "dry run ok", ExitCode: 0},
		},
	}
	svc := application.NewInstallerService(runner)

	report, err := svc.Check(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, report.Runs, 1)
	assert.Equal(t, "scripts/install.py --dry-run", report.Runs[0].Name)
	assert.True(t, report.Runs[0].Success)
	assert.Equal(t, "dry run ok", report.Runs[0].Output)
}

func TestInstallerService_DryRunsRustInstaller(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "target", "debug", "installer")
	require.NoError(t, os.MkdirAll(filepath.Dir(bin), 0755))
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0755))

	runner := &stubRunner{
		available: map[string]bool{},
		results: map[string]domain.CommandResult{
			bin + " install --dry-run --yes": {ExitCode: 1, Stderr: "boom"},
		},
	}
	svc := application.NewInstallerService(runner)

	report, err := svc.Check(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, report.Runs, 1)
	assert.False(t, report.Runs[0].Success)
	assert.True(t, report.Failed())
}
