// Package log implements the log command.
package log

import (
	"github.com/quou/tabulate/internal/gitlog"
	"github.com/quou/tabulate/internal/output"
)

// Command tabulates the recent history of a git repository.
type Command struct {
	Repo  string `default:"." help:"Path to a git repository." type:"existingdir"`
	Limit int    `default:"20" help:"Maximum number of commits to show."`
	Title string `help:"Title to draw in the top border."`
}

// Run executes the log command.
func (c *Command) Run(p *output.Printer) error {
	repo, err := gitlog.Open(c.Repo)
	if err != nil {
		return err
	}

	commits, err := gitlog.List(repo, c.Limit)
	if err != nil {
		return err
	}

	rows := make([][]string, len(commits))
	for i, commit := range commits {
		rows[i] = []string{commit.Hash, commit.Author, commit.When, commit.Subject}
	}

	return p.Print([]string{"COMMIT", "AUTHOR", "DATE", "SUBJECT"}, rows, c.Title)
}
