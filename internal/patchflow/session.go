package patchflow

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vcs-tools/stage/internal/palette"
	"github.com/vcs-tools/stage/internal/udiff"
	"github.com/vcs-tools/stage/internal/vcsproc"
)

// ErrQuit is returned by the per-file walk when stdin hits EOF mid-walk.
// Run treats it as a clean stop: it returns nil, processes no further
// files, and applies no decisions from the interrupted file.
var ErrQuit = errors.New("patchflow: quit")

// Session drives the interactive walk over every file diff in Patch.
type Session struct {
	Patch   *udiff.Patch
	Backend vcsproc.Backend
	Palette *palette.Palette

	In  *bufio.Reader
	Out io.Writer
	Err io.Writer

	// Color requests colored hunk rendering; it is only honored when
	// Patch.Colored is non-nil.
	Color bool
}

type flusher interface{ Flush() error }

// Run walks every file in order, printing a blank line between files.
func (s *Session) Run(ctx context.Context) error {
	for i, fd := range s.Patch.Files {
		if i > 0 {
			fmt.Fprintln(s.Out)
		}
		if err := s.runFile(ctx, fd); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (s *Session) runFile(ctx context.Context, fd *udiff.FileDiff) error {
	if len(fd.Hunks) == 0 {
		return nil
	}

	s.render(&fd.Head)

	idx := 0
	for {
		if idx >= len(fd.Hunks) {
			idx = 0
		}
		prev := undecidedBefore(fd.Hunks, idx)
		next := undecidedAfter(fd.Hunks, idx)
		if prev < 0 && next < 0 && fd.Hunks[idx].State != udiff.Undecided {
			break
		}

		s.render(&fd.Hunks[idx])

		prompt := buildPrompt(prev, next, idx, len(fd.Hunks))
		fmt.Fprint(s.Out, s.Palette.Prompt+prompt+s.Palette.Reset)
		if f, ok := s.Out.(flusher); ok {
			_ = f.Flush()
		}

		line, err := s.In.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return ErrQuit
			}
			return err
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "" {
			continue
		}

		switch c := trimmed[0]; {
		case c == 'y' || c == 'Y':
			fd.Hunks[idx].State = udiff.Use
			idx = advanceToNextUndecided(fd.Hunks, idx)
		case c == 'n' || c == 'N':
			fd.Hunks[idx].State = udiff.Skip
			idx = advanceToNextUndecided(fd.Hunks, idx)
		case c == 'a' || c == 'A':
			markRestFrom(fd.Hunks, idx, udiff.Use)
			idx = len(fd.Hunks)
		case c == 'd' || c == 'D':
			markRestFrom(fd.Hunks, idx, udiff.Skip)
			idx = len(fd.Hunks)
		case c == 'J':
			if idx+1 < len(fd.Hunks) {
				idx++
			} else {
				s.navError("No next hunk")
			}
		case c == 'K':
			if idx > 0 {
				idx--
			} else {
				s.navError("No previous hunk")
			}
		case c == 'j':
			if next >= 0 {
				idx = next
			} else {
				s.navError("No next hunk")
			}
		case c == 'k':
			if prev >= 0 {
				idx = prev
			} else {
				s.navError("No previous hunk")
			}
		default:
			fmt.Fprint(s.Out, s.Palette.Error+helpText+s.Palette.Reset)
		}
	}

	if !udiff.AnyUsed(fd) {
		return nil
	}

	patch := udiff.Reassemble(fd, s.Patch)
	if err := s.Backend.ApplyCached(ctx, patch); err != nil {
		fmt.Fprintln(s.Err, s.Palette.Error+err.Error()+s.Palette.Reset)
		return nil
	}
	if err := s.Backend.RefreshIndex(ctx); err != nil {
		fmt.Fprintln(s.Err, s.Palette.Error+err.Error()+s.Palette.Reset)
	}
	return nil
}

func (s *Session) navError(msg string) {
	fmt.Fprintln(s.Err, s.Palette.Error+msg+s.Palette.Reset)
}

func (s *Session) render(h *udiff.Hunk) {
	var buf bytes.Buffer
	udiff.RenderHunk(&buf, h, 0, s.useColor(), s.Patch, s.Palette.Reset, s.Palette.FragInfo)
	s.Out.Write(buf.Bytes())
}

func (s *Session) useColor() bool {
	return s.Color && s.Patch.Colored != nil
}
