package parser

import (
	"github.com/t14raptor/go-estree/ast"
)

// marker is the start of a node being parsed.
type marker struct {
	pos int
	loc ast.Position
}

// startNode marks the start of the current token.
func (p *parser) startNode() marker {
	return marker{pos: p.start, loc: p.startLoc}
}

func (p *parser) startNodeAt(pos int, loc ast.Position) marker {
	return marker{pos: pos, loc: loc}
}

// markerOf marks the start of an already finished node.
func (p *parser) markerOf(n ast.Node) marker {
	m := marker{pos: int(n.Idx0())}
	if s := n.NodeSpan(); s.Loc != nil {
		m.loc = s.Loc.Start
	}
	return m
}

// finishNode ends n at the end of the last consumed token.
func (p *parser) finishNode(n ast.Node, m marker) {
	p.finishNodeAt(n, m, p.lastTokEnd, p.lastTokEndLoc)
}

func (p *parser) finishNodeAt(n ast.Node, m marker, end int, endLoc ast.Position) {
	s := n.NodeSpan()
	s.Start = ast.Idx(m.pos)
	s.End = ast.Idx(end)
	if p.opts.Locations {
		s.Loc = &ast.SourceLocation{Start: m.loc, End: endLoc, Source: p.opts.SourceFile}
	}
	if p.opts.Ranges {
		s.Range = &[2]ast.Idx{ast.Idx(m.pos), ast.Idx(end)}
	}
	if p.opts.DirectSourceFile != "" {
		s.SourceFile = p.opts.DirectSourceFile
	}
}

// copySpan gives dst the position of src.
func copySpan(dst, src ast.Node) {
	*dst.NodeSpan() = *src.NodeSpan()
}
