package main

import (
	"os"
	"testing"

	"github.com/goccy/go-yaml"
)

// scenario is one fixture row of testdata/scenarios.yaml: one formula run
// through SAT mode and the exact report line it must produce. dirbuild.Dir
// reads its own build configuration with the same library; this repository
// reuses it to read test fixtures instead of application config, the same
// way go-tony/system/logd/storage/fs_test.go keeps its fixtures as Go
// literals but for data this size a flat file is more legible to a reviewer
// than a struct literal would be.
type scenario struct {
	Name    string `yaml:"name"`
	Formula string `yaml:"formula"`
	Want    string `yaml:"want"`
}

func loadScenarios(t *testing.T, path string) []scenario {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var scenarios []scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		t.Fatalf("unmarshaling %s: %v", path, err)
	}
	if len(scenarios) == 0 {
		t.Fatalf("%s defined no scenarios", path)
	}
	return scenarios
}

func TestEndToEndScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t, "testdata/scenarios.yaml") {
		t.Run(sc.Name, func(t *testing.T) {
			got := transcript(t, []string{sc.Formula}, false, true)
			requireTranscript(t, got, sc.Want+"\n")
		})
	}
}
