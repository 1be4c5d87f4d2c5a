package views

import (
	"github.com/hance08/clevercash/internal/ui"
	"github.com/pterm/pterm"
)

// RenderDeleteWarning introduces the record about to be deleted. The caller
// renders the record itself.
func RenderDeleteWarning(what string) {
	pterm.Warning.Printf("About to delete %s:\n", what)
}

func RenderIrreversible() {
	pterm.Warning.Println("This action cannot be undone!")
}

func RenderDeleteSuccess(what string) {
	pterm.Success.Printf("%s deleted successfully\n", what)
	ui.Separator()
}
