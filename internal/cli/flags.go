package cli

import (
	"fmt"
	"sort"
	"strings"
)

// FlagSet is a typed flag registry. String is the only kind any command in
// this tree declares (the --color flag); add a kind here only when a
// command actually needs it.
type FlagSet struct {
	byLong map[string]*flagDef
}

type flagDef struct {
	name      string
	usage     string
	stringPtr *string
}

func newFlagSet() *FlagSet {
	return &FlagSet{byLong: map[string]*flagDef{}}
}

func (fs *FlagSet) String(name string, def string, usage string) *string {
	if name == "" {
		panic("cli: flag name must be non-empty")
	}
	ptr := new(string)
	*ptr = def
	fs.add(&flagDef{name: name, usage: usage, stringPtr: ptr})
	return ptr
}

func (fs *FlagSet) add(def *flagDef) {
	if _, ok := fs.byLong[def.name]; ok {
		panic("cli: duplicate flag: --" + def.name)
	}
	fs.byLong[def.name] = def
}

type flagHelp struct {
	def *flagDef
}

func flagsForHelp(cmd *Command) []flagHelp {
	active := cmd.activeFlags()
	var helps []flagHelp
	for _, def := range active {
		helps = append(helps, flagHelp{def: def})
	}
	sort.Slice(helps, func(i, j int) bool { return helps[i].def.name < helps[j].def.name })
	return helps
}

func parseFlagToken(active map[string]*flagDef, token string, argv []string, idx int) (consumed int, err error) {
	name, value, hasValue := splitFlagValue(token[2:])
	def, ok := active[name]
	if !ok {
		return 0, usageErrorf("unknown flag: %s", token)
	}

	if !hasValue {
		if idx+1 >= len(argv) {
			return 0, usageErrorf("flag needs a value: %s", token)
		}
		value = argv[idx+1]
		consumed = 1
	}

	*def.stringPtr = value
	return consumed, nil
}

func splitFlagValue(s string) (name, value string, hasValue bool) {
	if i := strings.IndexByte(s, '='); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

func formatFlagHelpLine(fh flagHelp) string {
	usage := fh.def.usage
	if usage == "" {
		return fmt.Sprintf("      --%s <string>", fh.def.name)
	}
	return fmt.Sprintf("      --%s <string>\t%s", fh.def.name, usage)
}
