package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/darklua-go/darklua/pkg/lua/rules"
	"github.com/darklua-go/darklua/pkg/walker"
)

func TestPipeline_Run_TransformsFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.lua")
	if err := os.WriteFile(src, []byte("local x = 1 + 2\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	out := filepath.Join(dir, "out.lua")

	p := New([]rules.Rule{rules.NewComputeExpression()}, 2)
	results := p.Run([]walker.FileTask{{Source: src, Output: out}})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Err != nil {
		t.Fatalf("Run() error = %v", results[0].Err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty rendered output")
	}
}

func TestPipeline_Run_ParseErrorIsReported(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.lua")
	if err := os.WriteFile(src, []byte("local = 1"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	out := filepath.Join(dir, "out.lua")

	p := New(nil, 1)
	results := p.Run([]walker.FileTask{{Source: src, Output: out}})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Err == nil {
		t.Fatal("expected a parse error to be reported")
	}
}

func TestPipeline_Run_MultipleFilesConcurrently(t *testing.T) {
	dir := t.TempDir()
	var tasks []walker.FileTask
	for i := 0; i < 5; i++ {
		src := filepath.Join(dir, "f"+string(rune('a'+i))+".lua")
		if err := os.WriteFile(src, []byte("return 1\n"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		tasks = append(tasks, walker.FileTask{Source: src, Output: src})
	}

	p := New(nil, 3)
	results := p.Run(tasks)

	if len(results) != len(tasks) {
		t.Fatalf("got %d results, want %d", len(results), len(tasks))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("task %d: unexpected error: %v", i, r.Err)
		}
	}
}
