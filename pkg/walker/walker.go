// Package walker discovers the .lua files a pipeline run should process,
// pairing each source path with the output path it should be written to.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileTask pairs a source file with the path the transformed output
// should be written to. Source equals Output for an in-place run.
type FileTask struct {
	Source string
	Output string
}

// IsInPlace reports whether this task writes back to its own source file.
func (t FileTask) IsInPlace() bool {
	return t.Source == t.Output
}

// Find resolves input (a file or a directory) into the list of file tasks
// a pipeline run should process, mapping each discovered file's path
// under input to the equivalent path under output. If input is itself a
// single .lua file, output is used verbatim as that one file's
// destination regardless of extension.
func Find(input, output string) ([]FileTask, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("walker: failed to access %s: %w", input, err)
	}

	if !info.IsDir() {
		return []FileTask{{Source: input, Output: output}}, nil
	}

	var tasks []FileTask
	err = filepath.Walk(input, func(path string, fileInfo os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walker: error reading %s: %w", path, walkErr)
		}
		if fileInfo.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".lua" {
			return nil
		}

		relative, err := filepath.Rel(input, path)
		if err != nil {
			return fmt.Errorf("walker: failed to relativize %s: %w", path, err)
		}
		tasks = append(tasks, FileTask{Source: path, Output: filepath.Join(output, relative)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Source < tasks[j].Source })
	return tasks, nil
}

// WriteFile writes content to path, creating any missing parent
// directories first.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("walker: failed to create directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
