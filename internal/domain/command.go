package domain

type CommandKind int

const (
	CommandGet CommandKind = iota + 1
	CommandSet
	CommandList
	CommandCreate
	CommandRemove
	CommandExists
	CommandConnect
	CommandDisconnect
	CommandHelp
)

// Command is the fixed argument contract of one shell command.
type Command struct {
	Kind    CommandKind
	Name    string
	MinArgs int
	MaxArgs int
	Params  string
}

// RequiresSession reports whether the command talks to the remote service.
func (c Command) RequiresSession() bool {
	switch c.Kind {
	case CommandConnect, CommandDisconnect, CommandHelp:
		return false
	default:
		return true
	}
}

func (c Command) AcceptsArgs(n int) bool {
	return n >= c.MinArgs && n <= c.MaxArgs
}

var commands = map[string]Command{
	"get":        {Kind: CommandGet, Name: "get", MinArgs: 1, MaxArgs: 2, Params: "<path> [watch]"},
	"set":        {Kind: CommandSet, Name: "set", MinArgs: 2, MaxArgs: 3, Params: "<path> <data> [version]"},
	"ls":         {Kind: CommandList, Name: "ls", MinArgs: 1, MaxArgs: 2, Params: "<path> [watch]"},
	"create":     {Kind: CommandCreate, Name: "create", MinArgs: 2, MaxArgs: 4, Params: "<path> <data> [ephemeral] [sequential]"},
	"rm":         {Kind: CommandRemove, Name: "rm", MinArgs: 1, MaxArgs: 2, Params: "<path> [version]"},
	"exists":     {Kind: CommandExists, Name: "exists", MinArgs: 1, MaxArgs: 2, Params: "<path> [watch]"},
	"connect":    {Kind: CommandConnect, Name: "connect", MinArgs: 1, MaxArgs: 1, Params: "<hosts>"},
	"disconnect": {Kind: CommandDisconnect, Name: "disconnect", MinArgs: 0, MaxArgs: 0, Params: ""},
	"help":       {Kind: CommandHelp, Name: "help", MinArgs: 0, MaxArgs: 1, Params: "[cmd]"},
	"man":        {Kind: CommandHelp, Name: "man", MinArgs: 0, MaxArgs: 1, Params: "[cmd]"},
}

func LookupCommand(name string) (Command, bool) {
	cmd, ok := commands[name]
	return cmd, ok
}

// CommandNames returns every recognised command name, aliases included.
func CommandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	return names
}
