// ABOUTME: TestEnv provides isolated test environments for acceptance tests
// ABOUTME: Creates a temp syscolor home and runs the CLI binary against it
package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// TestEnv represents an isolated test environment
type TestEnv struct {
	TempDir     string // Root temp directory
	SyscolorDir string // Fake ~/.syscolor
	ConfigFile  string // Fake ~/.syscolor/config.json
	Binary      string // Path to syscolor binary
}

// Result holds the outcome of one CLI invocation
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// NewTestEnv creates a new isolated test environment
func NewTestEnv(binary string) *TestEnv {
	tempDir := GinkgoT().TempDir()

	env := &TestEnv{
		TempDir:     tempDir,
		SyscolorDir: filepath.Join(tempDir, ".syscolor"),
		ConfigFile:  filepath.Join(tempDir, ".syscolor", "config.json"),
		Binary:      binary,
	}

	Expect(os.MkdirAll(env.SyscolorDir, 0755)).To(Succeed())

	return env
}

// Run executes the CLI with the given arguments
func (e *TestEnv) Run(args ...string) *Result {
	return e.RunWithInput("", args...)
}

// RunWithInput executes the CLI with stdin input
func (e *TestEnv) RunWithInput(input string, args ...string) *Result {
	return e.RunWithEnvAndInput(nil, input, args...)
}

// RunWithEnv executes the CLI with additional environment variables
func (e *TestEnv) RunWithEnv(extraEnv map[string]string, args ...string) *Result {
	return e.RunWithEnvAndInput(extraEnv, "", args...)
}

// RunWithEnvAndInput executes the CLI with extra environment and stdin input
func (e *TestEnv) RunWithEnvAndInput(extraEnv map[string]string, input string, args ...string) *Result {
	cmd := exec.Command(e.Binary, args...)
	cmd.Env = append(os.Environ(),
		"SYSCOLOR_HOME="+e.SyscolorDir,
		"NO_COLOR=1",
	)
	for k, v := range extraEnv {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	err := cmd.Run()

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = 1
		}
	}

	return &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// SetFallbacks writes a config with the given role to hex fallbacks
func (e *TestEnv) SetFallbacks(fallbacks map[string]string) {
	config := e.LoadConfig()
	config["fallbacks"] = fallbacks
	WriteJSON(e.ConfigFile, config)
}

// SetFormat writes a config with the given default export format
func (e *TestEnv) SetFormat(format string) {
	config := e.LoadConfig()
	config["preferences"] = map[string]interface{}{"format": format}
	WriteJSON(e.ConfigFile, config)
}

// LoadConfig returns config.json as a generic map, empty if it does not exist
func (e *TestEnv) LoadConfig() map[string]interface{} {
	if _, err := os.Stat(e.ConfigFile); os.IsNotExist(err) {
		return map[string]interface{}{}
	}
	return LoadJSON(e.ConfigFile)
}

// ConfigExists reports whether the CLI has written config.json
func (e *TestEnv) ConfigExists() bool {
	_, err := os.Stat(e.ConfigFile)
	return err == nil
}

// BuildBinary builds the syscolor binary for testing
func BuildBinary() string {
	name := "syscolor"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(GinkgoT().TempDir(), name)

	// Find the project root by looking for go.mod
	projectRoot, err := findProjectRoot()
	Expect(err).NotTo(HaveOccurred())

	sourcePath := filepath.Join(projectRoot, "cmd", "syscolor")

	cmd := exec.Command("go", "build", "-ldflags", "-X main.version=test", "-o", binPath, sourcePath)
	out, err := cmd.CombinedOutput()
	Expect(err).NotTo(HaveOccurred(), string(out))
	return binPath
}

// findProjectRoot walks up the directory tree to find go.mod
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

// WriteJSON writes data as JSON to the specified path
func WriteJSON(path string, data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	Expect(err).NotTo(HaveOccurred())
	Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
	Expect(os.WriteFile(path, jsonData, 0644)).To(Succeed())
}

// LoadJSON reads and parses a JSON file
func LoadJSON(path string) map[string]interface{} {
	data, err := os.ReadFile(path)
	Expect(err).NotTo(HaveOccurred())

	var result map[string]interface{}
	Expect(json.Unmarshal(data, &result)).To(Succeed())
	return result
}
