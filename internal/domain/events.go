package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventProjectsListed  EventType = "ProjectsListed"
	EventProjectDeleted  EventType = "ProjectDeleted"
	EventIndexStarted    EventType = "IndexStarted"
	EventIndexCompleted  EventType = "IndexCompleted"
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchCompleted EventType = "SearchCompleted"
	EventRequestFailed   EventType = "RequestFailed"
	EventInputRejected   EventType = "InputRejected"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ProjectsListedEvent is emitted after the registry was refreshed
type ProjectsListedEvent struct {
	Projects []string // without the NoProject sentinel
}

func (e ProjectsListedEvent) Type() EventType { return EventProjectsListed }

// ProjectDeletedEvent is emitted when the backend dropped a project
type ProjectDeletedEvent struct {
	Project string
}

func (e ProjectDeletedEvent) Type() EventType { return EventProjectDeleted }

// IndexStartedEvent is emitted when an indexing request is issued
type IndexStartedEvent struct {
	Target string
}

func (e IndexStartedEvent) Type() EventType { return EventIndexStarted }

// IndexCompletedEvent is emitted when an indexing request finished, successfully or not
type IndexCompletedEvent struct {
	Target  string
	Success bool
	Error   error
}

func (e IndexCompletedEvent) Type() EventType { return EventIndexCompleted }

// SearchStartedEvent is emitted when a search request is issued
type SearchStartedEvent struct {
	Seq     uint64
	Query   string
	Project string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when search results were applied
type SearchCompletedEvent struct {
	Seq        uint64
	Query      string
	Project    string
	MatchCount int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// RequestFailedEvent is emitted when a backend call failed
type RequestFailedEvent struct {
	Operation string // "list", "delete", "index", "search"
	Err       error
}

func (e RequestFailedEvent) Type() EventType { return EventRequestFailed }

// InputRejectedEvent is emitted when user input failed validation
type InputRejectedEvent struct {
	Operation string
	Reason    error
}

func (e InputRejectedEvent) Type() EventType { return EventInputRejected }
