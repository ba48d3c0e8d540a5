// Package hash computes content hashes for graph targets.
package hash

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TargetHasher = (*Hasher)(nil)

// Hasher computes a stable content hash per graph target from the target
// definition, its source files, and the run's additional seed strings.
type Hasher struct {
	root string
}

// NewHasher creates a Hasher resolving source patterns relative to root.
func NewHasher(root string) *Hasher {
	return &Hasher{root: root}
}

// HashGraph returns a content hash for every target in the graph. Two
// targets with the same name in different projects hash independently
// because the project path is part of the digest.
func (h *Hasher) HashGraph(ctx context.Context, graph *domain.Graph, additional []string) (map[domain.GraphTarget]string, error) {
	out := make(map[domain.GraphTarget]string)
	for project := range graph.Projects() {
		for _, target := range project.Targets {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			hash, err := h.hashTarget(project.Path, target, additional)
			if err != nil {
				return nil, err
			}
			out[domain.GraphTarget{ProjectPath: project.Path, TargetName: target.Name}] = hash
		}
	}
	return out, nil
}

func (h *Hasher) hashTarget(projectPath string, target domain.Target, additional []string) (string, error) {
	digest := xxhash.New()

	_, _ = digest.WriteString(projectPath)
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(target.Name)
	_, _ = digest.Write([]byte{0})

	for _, source := range target.Sources {
		if err := h.hashSource(digest, source); err != nil {
			return "", err
		}
	}
	_, _ = digest.Write([]byte{0})

	// Seed strings fold cross-cutting cache-busting inputs into every hash.
	for _, s := range additional {
		_, _ = digest.WriteString(s)
		_, _ = digest.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

// hashSource hashes one source pattern: the pattern string itself plus the
// path and content of every matching file, in sorted order.
func (h *Hasher) hashSource(digest *xxhash.Digest, pattern string) error {
	_, _ = digest.WriteString(pattern)
	_, _ = digest.Write([]byte{0})

	matches, err := filepath.Glob(filepath.Join(h.root, pattern))
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid source pattern"), "pattern", pattern)
	}
	sort.Strings(matches)

	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to stat source"), "path", match)
		}
		if info.IsDir() {
			continue
		}
		if err := h.hashFile(digest, match); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hasher) hashFile(digest *xxhash.Digest, path string) error {
	rel, err := filepath.Rel(h.root, path)
	if err != nil {
		rel = path
	}
	_, _ = digest.WriteString(rel)
	_, _ = digest.Write([]byte{0})

	f, err := os.Open(path) //nolint:gosec // Path comes from the workspace manifest
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	content := xxhash.New()
	if _, err := io.Copy(content, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash source file"), "path", path)
	}
	_, _ = fmt.Fprintf(digest, "%016x", content.Sum64())
	_, _ = digest.Write([]byte{0})
	return nil
}
