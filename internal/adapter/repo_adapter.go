package adapter

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/libwizard/internal/model"
)

// RepoAdapter acquires a remote repository as a local working tree.
type RepoAdapter interface {
	// Fetch clones link into dest, or pulls when dest already holds a
	// checkout. An empty branch keeps the remote default.
	Fetch(ctx context.Context, link string, dest m.Path, branch string) error
}

// CommandRunner runs a command in dir and returns its combined output.
type CommandRunner func(ctx context.Context, dir string, name string, args ...string) ([]byte, error)

// GitRepoAdapter implements RepoAdapter with the git binary.
type GitRepoAdapter struct {
	run CommandRunner
}

// NewGitRepoAdapter constructs a GitRepoAdapter. A nil runner executes real
// commands.
func NewGitRepoAdapter(run CommandRunner) *GitRepoAdapter {
	if run == nil {
		run = execCommand
	}

	return &GitRepoAdapter{run: run}
}

// Fetch clones or pulls link into dest.
func (g *GitRepoAdapter) Fetch(ctx context.Context, link string, dest m.Path, branch string) error {
	destStr := string(dest)

	if _, err := os.Stat(filepath.Join(destStr, ".git")); err == nil {
		return g.pull(ctx, destStr, branch)
	}

	args := []string{"clone"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}

	args = append(args, link, destStr)

	if out, err := g.run(ctx, "", "git", args...); err != nil {
		return fmt.Errorf("git clone %s: %w: %s", link, err, strings.TrimSpace(string(out)))
	}

	return nil
}

func (g *GitRepoAdapter) pull(ctx context.Context, dir, branch string) error {
	steps := [][]string{{"fetch", "origin"}}
	if branch != "" {
		steps = append(steps, []string{"checkout", branch})
	}

	steps = append(steps, []string{"pull", "--ff-only"})

	for _, args := range steps {
		if out, err := g.run(ctx, dir, "git", args...); err != nil {
			return fmt.Errorf("git %s in %s: %w: %s", args[0], dir, err, strings.TrimSpace(string(out)))
		}
	}

	return nil
}

func execCommand(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	// #nosec G204 - arguments are built from the repository link and branch flag
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	return cmd.CombinedOutput()
}

// IsRemote reports whether source names a remote repository rather than a
// local directory.
func IsRemote(source string) bool {
	return strings.Contains(source, "://") || strings.HasPrefix(source, "git@")
}

// RepoDirName derives the local checkout directory for a repository link
// from its path, e.g. "https://github.com/org/lib.git" gives "org_lib_git".
func RepoDirName(link string) string {
	p := link

	if u, err := url.Parse(link); err == nil && u.Scheme != "" {
		p = u.Path
	} else if i := strings.LastIndex(link, ":"); i >= 0 {
		p = link[i+1:]
	}

	p = strings.TrimPrefix(p, "/")

	return strings.NewReplacer(".", "_", "/", "_").Replace(p)
}
