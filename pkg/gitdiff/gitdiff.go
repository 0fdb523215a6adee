// Package gitdiff lists the .lua files that changed between two
// revisions of a local Git repository, so a CI step can reprocess only
// what changed since a given ref instead of the whole tree.
package gitdiff

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repository wraps a local Git checkout for diff-since-ref queries.
type Repository struct {
	repo *gogit.Repository
	root string
}

// Open opens the Git repository containing (or at) root.
func Open(root string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("gitdiff: failed to open repository at %s: %w", root, err)
	}
	return &Repository{repo: repo, root: root}, nil
}

// ChangedLuaFiles resolves since (a branch, tag, or commit SHA) and HEAD,
// and returns the repository-relative paths of .lua files that differ
// between them. Deleted files are included so callers can decide whether
// to skip or flag them.
func (r *Repository) ChangedLuaFiles(since string) ([]string, error) {
	sinceHash, err := r.resolve(since)
	if err != nil {
		return nil, fmt.Errorf("gitdiff: failed to resolve %q: %w", since, err)
	}

	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("gitdiff: failed to get HEAD: %w", err)
	}

	sinceCommit, err := r.repo.CommitObject(sinceHash)
	if err != nil {
		return nil, fmt.Errorf("gitdiff: failed to load commit %s: %w", sinceHash, err)
	}
	headCommit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("gitdiff: failed to load HEAD commit: %w", err)
	}

	sinceTree, err := sinceCommit.Tree()
	if err != nil {
		return nil, fmt.Errorf("gitdiff: failed to load tree for %s: %w", since, err)
	}
	headTree, err := headCommit.Tree()
	if err != nil {
		return nil, fmt.Errorf("gitdiff: failed to load tree for HEAD: %w", err)
	}

	changes, err := sinceTree.Diff(headTree)
	if err != nil {
		return nil, fmt.Errorf("gitdiff: failed to diff trees: %w", err)
	}

	var files []string
	seen := make(map[string]bool)
	for _, change := range changes {
		path := change.To.Name
		if path == "" {
			path = change.From.Name
		}
		if filepath.Ext(path) != ".lua" || seen[path] {
			continue
		}
		seen[path] = true
		files = append(files, path)
	}

	return files, nil
}

func (r *Repository) resolve(revision string) (plumbing.Hash, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return *hash, nil
}

// AbsPath joins a repository-relative path returned by ChangedLuaFiles
// with the repository root, for feeding into the walker/pipeline.
func (r *Repository) AbsPath(relative string) string {
	return filepath.Join(r.root, relative)
}
