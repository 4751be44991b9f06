//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedRepogemPath holds the path to a shared repogem binary built once for all tests.
	sharedRepogemPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getRepogemBinary returns the path to the repogem binary, building it once if needed.
func getRepogemBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "repogem-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		repogemPath := filepath.Join(tempDir, "repogem")
		buildCmd := exec.Command("go", "build", "-o", repogemPath, "./cmd/repogem")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build repogem: %v", err))
		}

		sharedRepogemPath = repogemPath
	})

	return sharedRepogemPath
}

// writeFixtureInput writes a small classified collection for CLI runs and
// returns its path.
func writeFixtureInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classified_repos.json")
	content := `[
		{"github_url": "https://github.com/octo/widget", "star_count": 120,
		 "code_quality": 8, "innovativeness": 7, "usefulness": 9, "user_friendliness": 6,
		 "underrated": true, "motivation": "Solid tool nobody knows about",
		 "project_domain": "Developer Tools"},
		{"github_url": "https://github.com/mega/hype", "star_count": 80000,
		 "code_quality": 3, "innovativeness": 4, "usefulness": 3, "user_friendliness": 4,
		 "overrated": true, "motivation": "Marketing outpaces substance",
		 "project_domain": "AI"},
		{"github_url": "https://github.com/acme/steady", "star_count": 2500,
		 "code_quality": 7, "innovativeness": 5, "usefulness": 7, "user_friendliness": 7,
		 "project_domain": "Infrastructure"}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture input: %v", err)
	}
	return path
}

func runRepogemCommand(t *testing.T, args ...string) error {
	repogemPath := getRepogemBinary()
	cmd := exec.Command(repogemPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
