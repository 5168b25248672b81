package registry

// ListedMsg reports the outcome of a project list request
type ListedMsg struct {
	Projects []string
	Err      error
}

// DeletedMsg reports the outcome of a project delete request
type DeletedMsg struct {
	Project string
	Err     error
}
