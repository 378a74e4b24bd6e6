package ports

type HelpRegistry interface {
	// Index lists every command with its synopsis.
	Index() string
	// Page renders the full manual page for name.
	Page(name string) (string, bool)
}
