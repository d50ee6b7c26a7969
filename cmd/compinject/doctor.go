package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"

	"github.com/alnah/go-compinject/internal/hints"
)

// doctorResult holds the readiness report for --browser mode.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Chrome   chromeInfo `json:"chrome"`
	Env      envInfo    `json:"environment"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	CI           bool   `json:"ci"`
	Container    bool   `json:"container"`
	BrowserBin   string `json:"rod_browser_bin"`
	TempWritable bool   `json:"temp_writable"`
}

// runDoctorCmd checks that --browser mode can run.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(os.Getenv, launcher.LookPath)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all checks. getenv and lookPath are injected for tests.
func runDoctor(getenv func(string) string, lookPath func() (string, bool)) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			BrowserBin: getenv("ROD_BROWSER_BIN"),
			CI:         getenv("CI") == "true",
			Container:  hints.IsInContainer(),
		},
	}

	if result.Env.Container && result.Env.BrowserBin == "" {
		result.Warnings = append(result.Warnings, "running in a container without ROD_BROWSER_BIN; rod will download Chromium")
	}

	checkChrome(result, lookPath)
	checkTempDir(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkChrome locates Chrome via ROD_BROWSER_BIN or rod's launcher. A missing
// browser is a warning: rod downloads Chromium on first use.
func checkChrome(result *doctorResult, lookPath func() (string, bool)) {
	chromePath := result.Env.BrowserBin
	if chromePath == "" {
		var found bool
		chromePath, found = lookPath()
		if !found {
			result.Warnings = append(result.Warnings,
				"Chrome/Chromium not found; it will be downloaded on first --browser run")
			return
		}
	}

	if _, err := os.Stat(chromePath); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Chrome not found at %s", chromePath))
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = chromePath

	out, err := exec.Command(chromePath, "--version").Output() // #nosec G204 -- path comes from env or rod lookup
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not get Chrome version: %v", err))
		return
	}
	result.Chrome.Version = strings.TrimSpace(string(out))
}

// checkTempDir verifies the temp dir is writable; stdin pages are staged there.
func checkTempDir(result *doctorResult) {
	testFile := filepath.Join(os.TempDir(), "compinject-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Temp directory not writable: %s", os.TempDir()))
		return
	}
	_ = os.Remove(testFile)
	result.Env.TempWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "compinject doctor")
	fmt.Fprintln(w)
	if r.Chrome.Found {
		fmt.Fprintf(w, "  chrome:  %s %s\n", r.Chrome.Path, r.Chrome.Version)
	} else {
		fmt.Fprintln(w, "  chrome:  not found")
	}
	fmt.Fprintf(w, "  system:  %s/%s ci=%t container=%t temp_writable=%t\n", r.Env.OS, r.Env.Arch, r.Env.CI, r.Env.Container, r.Env.TempWritable)
	for _, msg := range r.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", msg)
	}
	for _, msg := range r.Errors {
		fmt.Fprintf(w, "  error:   %s\n", msg)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Status: %s\n", r.Status)
}
