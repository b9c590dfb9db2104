package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zephyrtronium/exprtree"
)

// script builds an expression from node commands, one per line:
//
//	const 5      insert Constant(5)
//	var 0        insert Variable(0)
//	add 0 1      insert Add(0, 1); likewise sub, mul, div, exp (or pow)
//	root 4       make node 4 the root
//
// Text after # is a comment.
type script struct {
	x *exprtree.Expr
}

func newScript() *script {
	return &script{x: exprtree.New()}
}

var binops = map[string]func(l, r exprtree.NodeID) exprtree.Node{
	"add": exprtree.Add,
	"sub": exprtree.Sub,
	"mul": exprtree.Mul,
	"div": exprtree.Div,
	"exp": exprtree.Exp,
	"pow": exprtree.Exp,
}

// exec runs one line. ok reports whether it inserted a node.
func (s *script) exec(line string) (id exprtree.NodeID, ok bool, err error) {
	if k := strings.IndexByte(line, '#'); k >= 0 {
		line = line[:k]
	}
	f := strings.Fields(line)
	if len(f) == 0 {
		return 0, false, nil
	}
	cmd, args := strings.ToLower(f[0]), f[1:]
	switch cmd {
	case "const":
		if len(args) != 1 {
			return 0, false, fmt.Errorf("const takes 1 argument, have %d", len(args))
		}
		c, err := strconv.ParseFloat(args[0], 32)
		if err != nil {
			return 0, false, fmt.Errorf("bad constant: %w", err)
		}
		return s.x.Insert(exprtree.Constant(float32(c))), true, nil
	case "var":
		if len(args) != 1 {
			return 0, false, fmt.Errorf("var takes 1 argument, have %d", len(args))
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, false, fmt.Errorf("bad variable index: %w", err)
		}
		return s.x.Insert(exprtree.Variable(i)), true, nil
	case "root":
		if len(args) != 1 {
			return 0, false, fmt.Errorf("root takes 1 argument, have %d", len(args))
		}
		r, err := s.ref(args[0])
		if err != nil {
			return 0, false, err
		}
		return 0, false, s.x.SetRoot(r)
	}
	op := binops[cmd]
	if op == nil {
		return 0, false, fmt.Errorf("unknown command %q", f[0])
	}
	if len(args) != 2 {
		return 0, false, fmt.Errorf("%s takes 2 arguments, have %d", cmd, len(args))
	}
	l, err := s.ref(args[0])
	if err != nil {
		return 0, false, err
	}
	r, err := s.ref(args[1])
	if err != nil {
		return 0, false, err
	}
	return s.x.Insert(op(l, r)), true, nil
}

// ref parses a reference to an existing node.
func (s *script) ref(arg string) (exprtree.NodeID, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("bad node id: %w", err)
	}
	id := exprtree.NodeID(i)
	if _, err := s.x.Node(id); err != nil {
		return 0, err
	}
	return id, nil
}

// read runs every line of src.
func (s *script) read(src io.Reader) error {
	sc := bufio.NewScanner(src)
	n := 0
	for sc.Scan() {
		n++
		if _, _, err := s.exec(sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}
