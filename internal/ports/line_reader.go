package ports

// LineReader yields one input line per call and io.EOF at end of input.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}
