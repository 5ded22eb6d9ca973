package walk

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cubefold/grid"
	"github.com/katalvlaran/cubefold/route"
)

// Notes is a parsed puzzle input: the net and the path drawn beneath it.
type Notes struct {
	Grid *grid.Grid
	Path route.Path
}

// ParseNotes splits text at its first blank line into a net and a path.
// Line endings may be LF or CRLF.
func ParseNotes(text string) (*Notes, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	sep := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			sep = i
			break
		}
	}
	if sep < 0 {
		return nil, ErrNoPath
	}

	g, err := grid.Parse(strings.Join(lines[:sep], "\n"))
	if err != nil {
		return nil, fmt.Errorf("walk: net: %w", err)
	}
	p, err := route.Parse(strings.Join(lines[sep+1:], "\n"))
	if err != nil {
		return nil, fmt.Errorf("walk: path: %w", err)
	}

	return &Notes{Grid: g, Path: p}, nil
}
