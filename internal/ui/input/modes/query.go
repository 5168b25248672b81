package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"codesearch/internal/ui/input/types"
)

// QueryMode edits the search query. Enter runs the search.
type QueryMode struct {
	TextInputMode
}

func NewQueryMode(ti *textinput.Model) *QueryMode {
	return &QueryMode{TextInputMode: NewTextInputMode(types.ModeQuery, "query", ti)}
}
