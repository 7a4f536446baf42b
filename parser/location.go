package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/charclass"
)

// GetLineInfo returns the line and column of offset in src.
func GetLineInfo(src string, offset int) ast.Position {
	line, cur := 1, 0
	end := min(offset, len(src))
	for {
		i, n := charclass.NextLineBreak(src, cur, end)
		if i < 0 {
			return ast.Position{Line: line, Column: offset - cur}
		}
		line++
		cur = i + n
	}
}

// OffsetOf is the inverse of GetLineInfo. It returns -1 when src has fewer
// lines than pos names.
func OffsetOf(src string, pos ast.Position) int {
	cur := 0
	for line := 1; line < pos.Line; line++ {
		i, n := charclass.NextLineBreak(src, cur, len(src))
		if i < 0 {
			return -1
		}
		cur = i + n
	}
	return cur + pos.Column
}

func (p *parser) curPosition() ast.Position {
	return ast.Position{Line: p.curLine, Column: p.pos - p.lineStart}
}
