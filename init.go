package tide

// Initializer implementations are used to initialize the database state
// from the application genesis before the first block is processed.
type Initializer interface {
	// FromGenesis inspects the given genesis options and writes any
	// relevant initial state to the database.
	FromGenesis(Options, KVStore) error
}
