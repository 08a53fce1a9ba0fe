package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/spherelab/constellation/pkg/export"
	"github.com/spherelab/constellation/pkg/graph"
)

func testCLI() *CLI {
	return New(io.Discard, log.ErrorLevel)
}

func TestRootCommandSubcommands(t *testing.T) {
	root := testCLI().RootCommand()

	want := map[string]bool{
		"layout":     false,
		"inspect":    false,
		"serve":      false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestLayoutCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	g := graph.New(
		[]graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]graph.Edge{{Source: "a", Target: "b"}},
	)
	input := filepath.Join(dir, "graph.json")
	if err := graph.WriteGraphFile(g, input); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "out.layout.json")

	root := testCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"layout", input, "-o", output})

	if err := root.Execute(); err != nil {
		t.Fatalf("layout command: %v", err)
	}

	doc, err := export.ReadDocumentFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(doc.Positions) != 3 {
		t.Errorf("positions = %d, want 3", len(doc.Positions))
	}
	if len(doc.Clusters) != 2 {
		t.Errorf("clusters = %d, want 2", len(doc.Clusters))
	}
}

func TestLayoutCommandMissingInput(t *testing.T) {
	root := testCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"layout", filepath.Join(t.TempDir(), "missing.json"), "--no-cache"})

	if err := root.Execute(); err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestCompletionCommand(t *testing.T) {
	root := testCLI().RootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"completion", "bash"})

	if err := root.Execute(); err != nil {
		t.Fatalf("completion command: %v", err)
	}
}
