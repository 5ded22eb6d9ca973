package route

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/cubefold/grid"
)

// Turn is a 90° rotation applied in place.
type Turn int8

const (
	// NoTurn marks a move step.
	NoTurn Turn = iota
	// TurnLeft rotates counter-clockwise ("L").
	TurnLeft
	// TurnRight rotates clockwise ("R").
	TurnRight
)

// Apply rotates d by t.
func (t Turn) Apply(d grid.Direction) grid.Direction {
	switch t {
	case TurnLeft:
		return d.TurnLeft()
	case TurnRight:
		return d.TurnRight()
	}
	return d
}

func (t Turn) String() string {
	switch t {
	case TurnLeft:
		return "L"
	case TurnRight:
		return "R"
	}
	return ""
}

// Step is either a move of Move tiles or a Turn, never both.
type Step struct {
	Move int
	Turn Turn
}

// IsTurn reports whether s rotates rather than moves.
func (s Step) IsTurn() bool { return s.Turn != NoTurn }

func (s Step) String() string {
	if s.IsTurn() {
		return s.Turn.String()
	}
	return strconv.Itoa(s.Move)
}

// Path is an ordered list of steps.
type Path []Step

// String renders p in the compact input form.
func (p Path) String() string {
	var sb strings.Builder
	for _, s := range p {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Distance returns the total number of tiles p asks to move.
func (p Path) Distance() int {
	n := 0
	for _, s := range p {
		n += s.Move
	}
	return n
}

type pathExpr struct {
	Steps []*stepExpr `parser:"@@*"`
}

type stepExpr struct {
	Move *int    `parser:"  @Int"`
	Turn *string `parser:"| @Turn"`
}

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Turn", Pattern: `[LR]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var parsePath = participle.MustBuild[pathExpr](
	participle.Lexer(pathLexer),
)

// Parse reads a path such as "10R5L5".
func Parse(text string) (Path, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyPath
	}
	expr, err := parsePath.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if len(expr.Steps) == 0 {
		return nil, ErrEmptyPath
	}

	path := make(Path, 0, len(expr.Steps))
	for _, s := range expr.Steps {
		switch {
		case s.Move != nil:
			path = append(path, Step{Move: *s.Move})
		case s.Turn != nil && *s.Turn == "L":
			path = append(path, Step{Turn: TurnLeft})
		default:
			path = append(path, Step{Turn: TurnRight})
		}
	}
	return path, nil
}
