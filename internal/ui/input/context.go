package input

import (
	"blockfolio/internal/ui/services/navigation"
	"blockfolio/internal/ui/services/search"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Nav    *navigation.Controller
	Search *search.Service
}

func (c *ModelContext) ActiveIndex() int {
	return c.Nav.State().ActiveIndex
}

func (c *ModelContext) TotalBlocks() int {
	return c.Nav.Len()
}

func (c *ModelContext) IsTransitioning() bool {
	return c.Nav.State().IsTransitioning
}

func (c *ModelContext) SearchQuery() string {
	if c.Search == nil {
		return ""
	}
	return c.Search.GetQuery()
}
