package db

// Initializer is implemented by every repository that owns a table.
type Initializer interface {
	Init() error
}
