package help

import (
	"sort"

	"github.com/bnema/zksh/internal/ports"
)

type Entry struct {
	Name        string
	Description string
	Synopsis    string
	Options     []string
	Examples    []string
}

var entries = map[string]Entry{
	"get": {
		Name:        "get",
		Description: "Gets the znode's value",
		Synopsis:    "<path> [watch]",
		Options:     []string{"<path>   absolute znode path", "[watch]  true leaves a one-shot data watch on the node"},
		Examples:    []string{"get /config/app", "get /config/app true"},
	},
	"set": {
		Name:        "set",
		Description: "Sets the znode's value",
		Synopsis:    "<path> <data> [version]",
		Options:     []string{"<path>     absolute znode path", "<data>     new value, stored as raw bytes", "[version]  expected version, -1 or anything non-numeric matches any"},
		Examples:    []string{"set /config/app v2", "set /config/app v3 2"},
	},
	"ls": {
		Name:        "ls",
		Description: "Lists a znode's children",
		Synopsis:    "<path> [watch]",
		Options:     []string{"<path>   absolute znode path", "[watch]  true leaves a one-shot child watch on the node"},
		Examples:    []string{"ls /", "ls /services true"},
	},
	"create": {
		Name:        "create",
		Description: "Creates a znode with the given value",
		Synopsis:    "<path> <data> [ephemeral] [sequential]",
		Options:     []string{"<path>        absolute znode path", "<data>        initial value", "[ephemeral]   true removes the node when this session ends", "[sequential]  true appends a unique counter to the name"},
		Examples:    []string{"create /config/app v1", "create /locks/lock- x true true"},
	},
	"rm": {
		Name:        "rm",
		Description: "Delete a znode",
		Synopsis:    "<path> [version]",
		Options:     []string{"<path>     absolute znode path, must have no children", "[version]  expected version, -1 matches any"},
		Examples:    []string{"rm /config/app", "rm /config/app 3"},
	},
	"exists": {
		Name:        "exists",
		Description: "Gets the znode's stat information",
		Synopsis:    "<path> [watch]",
		Options:     []string{"<path>   absolute znode path", "[watch]  true leaves a one-shot watch that also fires on creation"},
		Examples:    []string{"exists /config/app", "exists /pending true"},
	},
	"disconnect": {
		Name:        "disconnect",
		Description: "Disconnects from the server (closing the session)",
	},
	"connect": {
		Name:        "connect",
		Description: "Connects to one of the given hosts, creating a session",
		Synopsis:    "<hosts>",
		Options:     []string{"<hosts>  comma or semicolon separated host:port list"},
		Examples:    []string{"connect localhost:2181", "connect zk1:2181,zk2:2181,zk3:2181"},
	},
	"help": {
		Name:        "help",
		Description: "Shows the command list or one command's manual (alias: man)",
		Synopsis:    "[cmd]",
		Options:     []string{"[cmd]  command to describe"},
		Examples:    []string{"help", "man create"},
	},
}

var aliases = map[string]string{
	"man": "help",
}

// Registry serves the static command manual.
type Registry struct {
	styles styles
}

var _ ports.HelpRegistry = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{styles: newStyles()}
}

func Lookup(name string) (Entry, bool) {
	if target, ok := aliases[name]; ok {
		name = target
	}
	entry, ok := entries[name]
	return entry, ok
}

func sortedEntries() []Entry {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Entry, 0, len(names))
	for _, name := range names {
		out = append(out, entries[name])
	}
	return out
}

func (r *Registry) Index() string {
	list := sortedEntries()
	return renderOrFallback(func(s styles) string {
		return renderIndex(list, s)
	}, r.styles)
}

func (r *Registry) Page(name string) (string, bool) {
	entry, ok := Lookup(name)
	if !ok {
		return "", false
	}

	return renderOrFallback(func(s styles) string {
		return renderPage(entry, s)
	}, r.styles), true
}
