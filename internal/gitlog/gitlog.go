// Package gitlog lists the recent history of a git repository as rows
// suitable for tabulation.
package gitlog

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// A Commit is one row of history.
type Commit struct {
	Hash    string // Abbreviated hash.
	Author  string
	When    string // Author time, formatted for display.
	Subject string // First line of the commit message.
}

// Open opens the git repository at the given path.
func Open(path string) (*git.Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return repo, nil
}

// List returns up to limit commits reachable from HEAD, newest first. A
// limit of zero or less means no limit.
func List(repo *git.Repository, limit int) ([]Commit, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	var out []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(out) >= limit {
			return storer.ErrStop
		}
		out = append(out, Commit{
			Hash:    c.Hash.String()[:8],
			Author:  c.Author.Name,
			When:    c.Author.When.Format("2006-01-02 15:04"),
			Subject: subject(c.Message),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate commits: %w", err)
	}

	return out, nil
}

// subject returns the first line of a commit message.
func subject(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(line)
}
