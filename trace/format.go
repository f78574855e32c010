package trace

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
)

// ColorAttr names the part of a trace line being coloured.
type ColorAttr int

const (
	OpColor ColorAttr = iota
	TagColor
	AttrNameColor
	AttrValueColor
	TextColor
	SepColor
)

// Colors maps trace parts to colouring functions. A nil *Colors
// formats without colour.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			OpColor:        color.RGB(96, 96, 96).SprintfFunc(),
			TagColor:       color.RGB(128, 168, 196).SprintfFunc(),
			AttrNameColor:  color.RGB(196, 96, 16).SprintfFunc(),
			AttrValueColor: color.RGB(8, 196, 16).SprintfFunc(),
			TextColor:      color.RGB(198, 198, 46).SprintfFunc(),
			SepColor:       color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
}

func colorDefault(f string, args ...any) string {
	return fmt.Sprintf(f, args...)
}

func (c *Colors) color(a ColorAttr) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	if f, ok := c.Map[a]; ok {
		return f
	}
	if c.Default != nil {
		return c.Default
	}
	return colorDefault
}

// Format writes calls to w one per line, indented by nesting depth.
func Format(w io.Writer, calls []Call, colors *Colors) error {
	depth := 0
	sep := colors.color(SepColor)
	for _, c := range calls {
		if c.Op == OpClose && depth > 0 {
			depth--
		}
		line := fmt.Sprintf("%*s%s%s", depth*2, "", colors.color(OpColor)("%s", c.Op), sep("("))
		switch c.Op {
		case OpOpen, OpClose:
			line += colors.color(TagColor)("%s", c.Tag)
		case OpText:
			line += colors.color(TextColor)("%s", strconv.Quote(c.Text))
		}
		for _, a := range c.Attrs {
			line += " " + colors.color(AttrNameColor)("%s", a.Name)
			if a.Value != nil {
				line += sep("=") + colors.color(AttrValueColor)("%s", strconv.Quote(*a.Value))
			}
		}
		line += sep(")") + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if c.Op == OpOpen {
			depth++
		}
	}
	return nil
}
