package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zephyrtronium/exprtree"
)

func TestScript(t *testing.T) {
	src := `# (5 + x0) * x1
const 5
var 0
var 1
add 0 1   # sum
MUL 3 2

pow 4 0
root 4
`
	s := newScript()
	if err := s.read(strings.NewReader(src)); err != nil {
		t.Fatal(err)
	}
	want := []exprtree.Node{
		exprtree.Constant(5),
		exprtree.Variable(0),
		exprtree.Variable(1),
		exprtree.Add(0, 1),
		exprtree.Mul(3, 2),
		exprtree.Exp(4, 0),
	}
	var got []exprtree.Node
	for i := 0; i < s.x.Len(); i++ {
		n, err := s.x.Node(exprtree.NodeID(i))
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, n)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong nodes (-want +got):\n%s", diff)
	}
	if s.x.Root() != 4 {
		t.Errorf("wrong root: want 4, got %d", s.x.Root())
	}
	if got := s.x.String(); got != "((5 + Var(0)) * Var(1))" {
		t.Errorf("wrong text: %q", got)
	}
}

func TestScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"unknown", "const 1\nneg 0"},
		{"forward", "const 1\nadd 0 1"},
		{"negative", "const 1\nsub -1 0"},
		{"const", "const one"},
		{"var", "var 1.5"},
		{"arity", "const 1\nmul 0"},
		{"const-arity", "const 1 2"},
		{"root", "const 1\nroot 3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newScript()
			err := s.read(strings.NewReader(c.src))
			if err == nil {
				t.Fatalf("no error from %q", c.src)
			}
			if !strings.HasPrefix(err.Error(), "line ") {
				t.Errorf("error lacks line number: %v", err)
			}
		})
	}
}

func TestEvaluator(t *testing.T) {
	s := newScript()
	if err := s.read(strings.NewReader("var 0\nvar 1\nsub 0 1\n")); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name string
		prec uint
		with [][2]string
		want string
	}{
		{"float32", 0, [][2]string{{"0", "10"}, {"1", "3"}}, "7"},
		{"big", 80, [][2]string{{"1", "3"}, {"0", "10"}}, "7"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ev, err := newEvaluator(c.prec, c.with)
			if err != nil {
				t.Fatal(err)
			}
			r, err := ev.eval(s.x, s.x.Root())
			if err != nil {
				t.Fatal(err)
			}
			if got := fmt.Sprintf("%g", r); got != c.want {
				t.Errorf("wrong result: want %s, got %s", c.want, got)
			}
		})
	}
	if _, err := newEvaluator(0, [][2]string{{"x", "1"}}); err == nil {
		t.Error("no error for bad index")
	}
	if _, err := newEvaluator(0, [][2]string{{"0", "one"}}); err == nil {
		t.Error("no error for bad value")
	}
	ev, _ := newEvaluator(0, [][2]string{{"0", "1"}})
	if _, err := ev.eval(s.x, s.x.Root()); err == nil {
		t.Error("no error for unbound variable")
	}
}

func TestDescribe(t *testing.T) {
	s := newScript()
	if err := s.read(strings.NewReader("var 0\nconst 2\nmul 0 1\n")); err != nil {
		t.Fatal(err)
	}
	ev, err := newEvaluator(0, [][2]string{{"0", "4"}})
	if err != nil {
		t.Fatal(err)
	}
	unbound, _ := newEvaluator(0, nil)
	cases := []struct {
		name string
		ev   *evaluator
		id   exprtree.NodeID
		want string
	}{
		{"value", ev, 2, "2: (Var(0) * 2) = 8\n"},
		{"unbound", unbound, 2, "2: (Var(0) * 2) = unbound variable Var(0) with 0 bindings\n"},
		{"invalid", ev, 9, "invalid node id 9 in expression of 3 nodes\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b bytes.Buffer
			describe(&b, c.ev, s.x, c.id, "%g\n")
			if diff := cmp.Diff(c.want, b.String()); diff != "" {
				t.Errorf("wrong output (-want +got):\n%s", diff)
			}
		})
	}
}
