package stage

import "context"

// commandItem is one entry in the top loop's command list.
type commandItem struct {
	name string
	run  func(ctx context.Context, s *Session) error
}

func (c *commandItem) Name() string { return c.name }

func commands() []*commandItem {
	return []*commandItem{
		{name: "status", run: runStatus},
		{name: "patch", run: runPatch},
	}
}
