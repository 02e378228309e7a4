package main

import (
	"fmt"
	"strings"

	"cyphra.co/verify/inspect"
)

// parseShape reads a textual return shape such as "uint64" or
// "(bool, (uint64, uint64))".
func parseShape(s string) (inspect.Shape, error) {
	p := &shapeParser{input: s}
	shape, err := p.parse()
	if err != nil {
		return inspect.Shape{}, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return inspect.Shape{}, fmt.Errorf("trailing input at offset %d", p.pos)
	}
	return shape, nil
}

type shapeParser struct {
	input string
	pos   int
}

func (p *shapeParser) parse() (inspect.Shape, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return inspect.Shape{}, fmt.Errorf("unexpected end of input")
	}
	if p.input[p.pos] == '(' {
		return p.parseTuple()
	}
	return p.parseLeaf()
}

func (p *shapeParser) parseTuple() (inspect.Shape, error) {
	p.pos++ // consume '('
	var elems []inspect.Shape
	for {
		elem, err := p.parse()
		if err != nil {
			return inspect.Shape{}, err
		}
		elems = append(elems, elem)
		p.skipSpace()
		if p.pos >= len(p.input) {
			return inspect.Shape{}, fmt.Errorf("unterminated tuple")
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return inspect.Tuple(elems...), nil
		default:
			return inspect.Shape{}, fmt.Errorf("unexpected %q at offset %d", p.input[p.pos], p.pos)
		}
	}
}

func (p *shapeParser) parseLeaf() (inspect.Shape, error) {
	start := p.pos
	for p.pos < len(p.input) && isIdentByte(p.input[p.pos]) {
		p.pos++
	}
	word := p.input[start:p.pos]
	switch strings.ToLower(word) {
	case "bool":
		return inspect.Bool(), nil
	case "uint64", "u64":
		return inspect.UInt64(), nil
	default:
		return inspect.Shape{}, fmt.Errorf("unknown shape %q", word)
	}
}

func (p *shapeParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func isIdentByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
