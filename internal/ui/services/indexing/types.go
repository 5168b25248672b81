package indexing

// IndexedMsg reports the outcome of an indexing request
type IndexedMsg struct {
	Target string
	Err    error
}
