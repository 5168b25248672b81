package ui

import (
	"codesearch/internal/ui/state"
)

// ModelContext exposes the session to the input modes
type ModelContext struct {
	Session *state.Session
}

func (c *ModelContext) HasRows() bool {
	return len(c.Session.Rows) > 0
}

func (c *ModelContext) Loading() bool {
	return c.Session.Loading
}

func (c *ModelContext) AlertVisible() bool {
	return c.Session.AlertVisible
}

func (c *ModelContext) Query() string {
	return c.Session.Query
}

func (c *ModelContext) Target() string {
	return c.Session.Target
}

func (c *ModelContext) DialogChoice() string {
	return c.Session.DialogChoice
}

func (c *ModelContext) DialogFilter() string {
	return c.Session.DialogFilter
}
