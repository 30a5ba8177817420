package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docfrag/internal/templates"
)

// FuncsCmd implements the 'funcs' command.
type FuncsCmd struct{}

func (f *FuncsCmd) Run(g *Global, _ *CLI) error {
	for _, name := range templates.FuncNames() {
		if _, err := fmt.Fprintln(g.stdout(), name); err != nil {
			return err
		}
	}
	return nil
}
