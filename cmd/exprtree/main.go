package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/zephyrtronium/exprtree"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		with         [][2]string
		echo         bool
		prec         int
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "index=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "node script file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "index=value variable binding (any number of times)", addwith)
	flag.IntVar(&prec, "p", 0, "precision of calculations in bits (0 for float32)")
	flag.BoolVar(&echo, "echo", false, "print expressions")
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must not be negative", prec)
	}

	ev, err := newEvaluator(uint(prec), with)
	if err != nil {
		log.Fatal(err)
	}
	verb += "\n"

	if inname == "" && flag.NArg() == 0 && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive(ev, verb)
		return
	}

	s := newScript()
	if inname != "" || flag.NArg() == 0 {
		if err := readfile(s, inname); err != nil {
			log.Fatal(err)
		}
	}
	for _, arg := range flag.Args() {
		if err := readfile(s, arg); err != nil {
			log.Fatal(err)
		}
	}
	if s.x.Len() == 0 {
		log.Fatal("no nodes")
	}
	if echo {
		fmt.Printf("%v : ", s.x)
	}
	r, err := ev.eval(s.x, s.x.Root())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf(verb, r)
}

// evaluator evaluates with float32 bindings or with a Context, depending on
// the requested precision.
type evaluator struct {
	vars []float32
	ctx  *exprtree.Context
}

func newEvaluator(prec uint, with [][2]string) (*evaluator, error) {
	var ev evaluator
	if prec > 0 {
		ev.ctx = exprtree.NewContext(exprtree.Prec(prec))
	}
	for _, d := range with {
		i, err := strconv.Atoi(d[0])
		if err != nil || i < 0 {
			return nil, fmt.Errorf("bad variable index %q", d[0])
		}
		if ev.ctx != nil {
			v, _, err := big.ParseFloat(d[1], 10, prec, big.ToNearestEven)
			if err != nil {
				return nil, fmt.Errorf("setting %d: %w", i, err)
			}
			ev.ctx.Set(i, v)
			continue
		}
		v, err := strconv.ParseFloat(d[1], 32)
		if err != nil {
			return nil, fmt.Errorf("setting %d: %w", i, err)
		}
		for len(ev.vars) <= i {
			ev.vars = append(ev.vars, float32(0))
		}
		ev.vars[i] = float32(v)
	}
	return &ev, nil
}

func (ev *evaluator) eval(x *exprtree.Expr, id exprtree.NodeID) (interface{}, error) {
	if ev.ctx != nil {
		return ev.ctx.Eval(x, id)
	}
	return x.Eval(id, ev.vars)
}

func readfile(s *script, name string) error {
	var f io.Reader
	switch name {
	case "", "-":
		f = os.Stdin
	default:
		in, err := os.Open(name)
		if err != nil {
			return err
		}
		defer in.Close()
		f = in
	}
	if err := s.read(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// interactive inserts one node per line and prints each new node's text and
// value as it goes.
func interactive(ev *evaluator, verb string) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	s := newScript()
	for {
		line, err := ln.Prompt(strconv.Itoa(s.x.Len()) + "> ")
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, liner.ErrPromptAborted) {
				log.Print(err)
			}
			fmt.Println()
			return
		}
		id, ok, err := s.exec(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		ln.AppendHistory(line)
		if !ok {
			continue
		}
		describe(os.Stdout, ev, s.x, id, verb)
	}
}

// describe writes a node's id, text and value, or the first error in
// producing them.
func describe(w io.Writer, ev *evaluator, x *exprtree.Expr, id exprtree.NodeID, verb string) {
	text, err := x.Format(id)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintf(w, "%d: %s = ", id, text)
	r, err := ev.eval(x, id)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintf(w, verb, r)
}
