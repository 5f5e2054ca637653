package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrSyntax = errors.New("confignode syntax error")

// Value is a single "key = value" entry. Keys may repeat within a node.
type Value struct {
	Key   string
	Value string
}

// Node is a named group in a ConfigNode settings file:
//
//	OPTIONS
//	{
//		maxBrightness = 0.8 // comment
//	}
type Node struct {
	Name   string
	Values []Value
	Nodes  []*Node
}

// GetNode returns the first child group with the given name.
func (n *Node) GetNode(name string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Nodes {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// GetValue returns the first value stored under key.
func (n *Node) GetValue(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, v := range n.Values {
		if v.Key == key {
			return v.Value, true
		}
	}
	return "", false
}

type nodeParser struct {
	stack   []*Node
	pending string
	line    int
}

// ParseConfigNode reads a ConfigNode document and returns its unnamed root.
func ParseConfigNode(r io.Reader) (*Node, error) {
	p := &nodeParser{stack: []*Node{{}}}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.line++
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if p.pending != "" {
		return nil, fmt.Errorf("line %d: group %q has no body: %w", p.line, p.pending, ErrSyntax)
	}
	if len(p.stack) > 1 {
		return nil, fmt.Errorf("line %d: unterminated group %q: %w", p.line, p.current().Name, ErrSyntax)
	}
	return p.stack[0], nil
}

func (p *nodeParser) current() *Node {
	return p.stack[len(p.stack)-1]
}

func (p *nodeParser) parseLine(line string) error {
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))

	for line != "" {
		i := strings.IndexAny(line, "{}")
		if i < 0 {
			return p.text(line)
		}
		if text := strings.TrimSpace(line[:i]); text != "" {
			if err := p.text(text); err != nil {
				return err
			}
		}
		var err error
		if line[i] == '{' {
			err = p.open()
		} else {
			err = p.close()
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line[i+1:])
	}
	return nil
}

func (p *nodeParser) text(text string) error {
	if p.pending != "" {
		return fmt.Errorf("line %d: expected '{' after %q: %w", p.line, p.pending, ErrSyntax)
	}

	key, value, isValue := strings.Cut(text, "=")
	if !isValue {
		p.pending = text
		return nil
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("line %d: value without key: %w", p.line, ErrSyntax)
	}
	cur := p.current()
	cur.Values = append(cur.Values, Value{Key: key, Value: strings.TrimSpace(value)})
	return nil
}

func (p *nodeParser) open() error {
	if p.pending == "" {
		return fmt.Errorf("line %d: unnamed group: %w", p.line, ErrSyntax)
	}
	child := &Node{Name: p.pending}
	cur := p.current()
	cur.Nodes = append(cur.Nodes, child)
	p.stack = append(p.stack, child)
	p.pending = ""
	return nil
}

func (p *nodeParser) close() error {
	if p.pending != "" {
		return fmt.Errorf("line %d: group %q has no body: %w", p.line, p.pending, ErrSyntax)
	}
	if len(p.stack) == 1 {
		return fmt.Errorf("line %d: unbalanced '}': %w", p.line, ErrSyntax)
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}
