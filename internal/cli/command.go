package cli

// RunFunc is a command handler.
type RunFunc func(c *Context) error

// Command is one node in the host CLI's command tree. This tool only ever
// needs a root plus a flat list of verbs (no verb has its own subcommands),
// so there is no alias list, long-form help text, or positional-arg
// validator here: every verb takes an arbitrary pathspec and nothing else.
type Command struct {
	// Name is the token used to invoke this command (e.g. "patch" in
	// "stage patch").
	Name string

	Short string
	Run   RunFunc // optional; nil for a command that only groups children

	parent   *Command
	children []*Command
	flags    *FlagSet
}

// AddCommand adds child commands under c.
func (c *Command) AddCommand(children ...*Command) {
	for _, child := range children {
		if child == nil {
			panic("cli: AddCommand called with nil child")
		}
		if child.parent != nil {
			panic("cli: AddCommand called with a child already attached to a parent")
		}
		if child.Name == "" {
			panic("cli: AddCommand called with a child with empty Name")
		}
		c.children = append(c.children, child)
		child.parent = c
	}
}

// Commands returns the direct children of c.
func (c *Command) Commands() []*Command {
	out := make([]*Command, len(c.children))
	copy(out, c.children)
	return out
}

// PersistentFlags returns the flag set visible to c and every descendant.
// Flags are always declared once, on the root; the name reflects the
// concept (inherited by the whole tree) rather than a per-command set.
func (c *Command) PersistentFlags() *FlagSet {
	if c.flags == nil {
		c.flags = newFlagSet()
	}
	return c.flags
}

func (c *Command) childByName(name string) *Command {
	for _, child := range c.children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// activeFlags collects every flag declared on c's path from the root, so a
// child command sees flags its ancestors registered.
func (c *Command) activeFlags() map[string]*flagDef {
	active := map[string]*flagDef{}
	for _, cmd := range c.pathFromRoot() {
		if cmd.flags == nil {
			continue
		}
		for name, def := range cmd.flags.byLong {
			active[name] = def
		}
	}
	return active
}

func (c *Command) pathFromRoot() []*Command {
	var reversed []*Command
	for cur := c; cur != nil; cur = cur.parent {
		reversed = append(reversed, cur)
	}
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}
