// Package styles implements the styles command.
package styles

import (
	"fmt"

	"github.com/quou/tabulate/table"
)

// Command shows a sample table in every border style.
type Command struct{}

// Run executes the styles command.
func (c *Command) Run() error {
	for _, s := range []table.Style{table.Ascii, table.Single, table.Double} {
		out, err := table.Table{
			Header: []string{"NAME", "AGE"},
			Rows:   [][]string{{"Ann", "30"}, {"Bo", "5"}},
			Title:  s.String(),
			Style:  s,
		}.Render()
		if err != nil {
			return err
		}
		fmt.Println(out)
		fmt.Println()
	}
	return nil
}
