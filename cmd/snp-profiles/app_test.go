package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
	"gopkg.in/yaml.v3"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"snp-profiles"}, args...))
	return out.String(), errOut.String(), err
}

func TestDumpJSON(t *testing.T) {
	out, _, err := runApp(t, "--threads", "4", "dump")
	test.That(t, err, test.ShouldBeNil)

	var entries []struct {
		Stage   string                 `json:"stage"`
		Name    string                 `json:"name"`
		Type    string                 `json:"type"`
		Profile map[string]interface{} `json:"profile"`
	}
	test.That(t, json.Unmarshal([]byte(out), &entries), test.ShouldBeNil)
	test.That(t, entries, test.ShouldHaveLength, 5)

	for _, entry := range entries {
		test.That(t, entry.Name, test.ShouldEqual, "DEFAULT")
		switch entry.Type {
		case "OMPLPlanProfile":
			test.That(t, entry.Profile["planners"], test.ShouldHaveLength, 4)
			check := entry.Profile["collision_check_config"].(map[string]interface{})
			test.That(t, check["type"], test.ShouldEqual, "FIRST")
		case "DescartesPlanProfile":
			test.That(t, entry.Profile["num_threads"], test.ShouldEqual, 4.)
		}
	}
}

func TestDumpYAML(t *testing.T) {
	out, _, err := runApp(t, "--threads", "2", "dump", "--format", "yaml")
	test.That(t, err, test.ShouldBeNil)

	var entries []map[string]interface{}
	test.That(t, yaml.Unmarshal([]byte(out), &entries), test.ShouldBeNil)
	test.That(t, entries, test.ShouldHaveLength, 5)
	test.That(t, out, test.ShouldContainSubstring, "DISCRETE_CONTINUOUS")
	test.That(t, out, test.ShouldContainSubstring, "TT_COST")

	_, _, err = runApp(t, "dump", "--format", "xml")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestTable(t *testing.T) {
	out, _, err := runApp(t, "--threads", "3", "table")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "OMPLMotionPlannerTask")
	test.That(t, out, test.ShouldContainSubstring, "3 x RRTConnect")
	test.That(t, out, test.ShouldContainSubstring, "36 samples per pose")
}

func TestOptionsFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	test.That(t, os.WriteFile(path, []byte("num_threads: 2\nplanning_time: 7\n"), 0o600), test.ShouldBeNil)

	out, _, err := runApp(t, "--options", path, "table")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "2 x RRTConnect, 7s")

	_, _, err = runApp(t, "--threads", "-1", "table")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSchema(t *testing.T) {
	out, _, err := runApp(t, "schema")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "num_threads")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	test.That(t, os.WriteFile(good, []byte(`{"max_range": 0.4}`), 0o600), test.ShouldBeNil)
	out, _, err := runApp(t, "validate", good)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "is valid")

	bad := filepath.Join(dir, "bad.json")
	test.That(t, os.WriteFile(bad, []byte(`{"min_range": -1, "dof": 0}`), 0o600), test.ShouldBeNil)
	_, errOut, err := runApp(t, "validate", bad)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errOut, test.ShouldContainSubstring, "min_range")
	test.That(t, errOut, test.ShouldContainSubstring, "dof")

	_, _, err = runApp(t, "validate")
	test.That(t, err, test.ShouldNotBeNil)
}
