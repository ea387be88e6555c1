package vcsproc

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/vcs-tools/stage/internal/simplelogger"
)

// ExecBackend shells out to the host VCS binary. IndexFile, when non-empty,
// is exported to the child as INDEX_FILE so the diff and apply subprocesses
// operate against this session's staging area rather than the repository's
// default index.
type ExecBackend struct {
	// Binary is the VCS executable to invoke (e.g. "git"). Required.
	Binary string

	// Dir is the repository working directory; empty means the current
	// process's working directory.
	Dir string

	// IndexFile, if non-empty, is exported to the child as INDEX_FILE.
	IndexFile string
}

func (b *ExecBackend) DiffFiles(ctx context.Context, pathspec []string, colored bool) ([]byte, error) {
	return b.captureDiff(ctx, "diff-files", pathspec, colored)
}

func (b *ExecBackend) DiffIndex(ctx context.Context, pathspec []string, colored bool) ([]byte, error) {
	return b.captureDiff(ctx, "diff-index", pathspec, colored)
}

func (b *ExecBackend) captureDiff(ctx context.Context, subcommand string, pathspec []string, colored bool) ([]byte, error) {
	args := []string{subcommand, "-p"}
	if colored {
		args = append(args, "--color")
	} else {
		args = append(args, "--no-color")
	}
	if subcommand == "diff-index" {
		// Compare the index (not the worktree) against HEAD, or against the
		// empty tree when HEAD does not resolve (e.g. before the first commit).
		base := "HEAD"
		if b.command(ctx, "rev-parse", "--verify", "--quiet", "HEAD").Run() != nil {
			emptyTree, err := b.command(ctx, "hash-object", "-t", "tree", "/dev/null").Output()
			if err != nil {
				return nil, fmt.Errorf("vcsproc: resolving empty tree failed: %w", err)
			}
			base = string(bytes.TrimSpace(emptyTree))
		}
		args = append(args, "--cached", base)
	}
	if len(pathspec) > 0 {
		args = append(args, "--")
		args = append(args, pathspec...)
	}

	cmd := b.command(ctx, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	simplelogger.Log("vcsproc: running %s %v", b.Binary, args)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("vcsproc: %s failed: %w: %s", subcommand, err, stderr.String())
	}
	return stdout.Bytes(), nil
}

func (b *ExecBackend) ApplyCached(ctx context.Context, patch []byte) error {
	cmd := b.command(ctx, "apply", "--cached")
	cmd.Stdin = bytes.NewReader(patch)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	simplelogger.Log("vcsproc: running %s apply --cached", b.Binary)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("vcsproc: apply --cached failed: %w: %s", err, stderr.String())
	}
	return nil
}

func (b *ExecBackend) RefreshIndex(ctx context.Context) error {
	cmd := b.command(ctx, "update-index", "-q", "--refresh")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	simplelogger.Log("vcsproc: running %s update-index -q --refresh", b.Binary)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("vcsproc: update-index --refresh failed: %w: %s", err, stderr.String())
	}
	return nil
}

func (b *ExecBackend) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, b.Binary, args...)
	cmd.Dir = b.Dir
	cmd.Env = os.Environ()
	if b.IndexFile != "" {
		cmd.Env = append(cmd.Env, "INDEX_FILE="+b.IndexFile)
	}
	return cmd
}
