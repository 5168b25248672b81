package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"codesearch/internal/ui/input/types"
)

// TargetMode edits the project target (repository URL or local path).
// Enter indexes it.
type TargetMode struct {
	TextInputMode
}

func NewTargetMode(ti *textinput.Model) *TargetMode {
	return &TargetMode{TextInputMode: NewTextInputMode(types.ModeTarget, "target", ti)}
}
