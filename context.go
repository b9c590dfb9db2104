package exprtree

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Context holds variable bindings and a precision for evaluating expressions
// to arbitrary precision. Evaluations may share a Context concurrently, but
// Set must not be called concurrently with any other method.
type Context struct {
	vars []*big.Float
	prec uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		index int
		val   *big.Float
	}
	varsopt []*big.Float
	precopt uint
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}
func (precopt) ctxOption() {}

// SetVar sets the value of one variable index in the context.
func SetVar(index int, val *big.Float) ContextOption {
	return varopt{index, val}
}

// SetVars sets the values of variables 0 through len(vals)-1.
func SetVars(vals ...*big.Float) ContextOption {
	return varsopt(vals)
}

// Prec sets the precision of calculations.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: 64}
	return ctx.Clone(opts...)
}

// Eval evaluates the subexpression of x at id. The result is a new value
// with the context's precision.
func (ctx *Context) Eval(x *Expr, id NodeID) (*big.Float, error) {
	return walk[*big.Float](&x.arena, id, ctx)
}

// Set sets the value of a variable. Passing a nil value unbinds it. Returns
// ctx for chaining.
func (ctx *Context) Set(index int, value *big.Float) *Context {
	if index < 0 {
		panic("exprtree: negative variable index")
	}
	if value == nil {
		if index < len(ctx.vars) {
			ctx.vars[index] = nil
		}
		return ctx
	}
	for len(ctx.vars) <= index {
		ctx.vars = append(ctx.vars, nil)
	}
	ctx.vars[index] = new(big.Float).SetPrec(ctx.prec).Set(value)
	return ctx
}

// Lookup returns a copy of the value of a variable. If the variable is
// unbound, the result is nil.
func (ctx *Context) Lookup(index int) *big.Float {
	if index < 0 || index >= len(ctx.vars) || ctx.vars[index] == nil {
		return nil
	}
	return new(big.Float).Copy(ctx.vars[index])
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{prec: ctx.prec}
	// Find the precision first. Loop backward so we apply the last one.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			n.prec = uint(p)
			break
		}
	}
	n.vars = make([]*big.Float, 0, len(ctx.vars))
	for _, v := range ctx.vars {
		if v != nil && n.prec != ctx.prec {
			v = new(big.Float).SetPrec(n.prec).Set(v)
		}
		n.vars = append(n.vars, v)
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.Set(opt.index, opt.val)
		case varsopt:
			for i, v := range opt {
				n.Set(i, v)
			}
		case precopt:
			// Already done.
		default:
			panic("exprtree: unknown option type")
		}
	}
	return &n
}

func (ctx *Context) leaf(id NodeID, n Node) (*big.Float, error) {
	switch n.Kind {
	case KindConstant:
		if math.IsNaN(float64(n.Const)) {
			return nil, &DomainError{Node: id, Op: "Constant"}
		}
		return new(big.Float).SetPrec(ctx.prec).SetFloat64(float64(n.Const)), nil
	case KindVariable:
		if n.Var < 0 || n.Var >= len(ctx.vars) || ctx.vars[n.Var] == nil {
			return nil, &UnboundVariableError{Var: n.Var, Len: len(ctx.vars)}
		}
		return new(big.Float).Copy(ctx.vars[n.Var]), nil
	}
	panic("exprtree: invalid leaf " + n.String())
}

func (ctx *Context) binary(id NodeID, op NodeKind, l, r *big.Float) (z *big.Float, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(big.ErrNaN); !ok {
			panic(p)
		}
		// big.Float panics on results like ∞-∞ and 0/0.
		z, err = nil, &DomainError{X: r, Node: id, Op: op.String()}
	}()
	switch op {
	case KindAdd:
		return l.Add(l, r), nil
	case KindSub:
		return l.Sub(l, r), nil
	case KindMul:
		return l.Mul(l, r), nil
	case KindDiv:
		return l.Quo(l, r), nil
	case KindExp:
		return ctx.pow(id, l, r)
	}
	panic("exprtree: invalid operator " + op.String())
}

// pow computes l^r into l. Special cases follow math.Pow where big.Float can
// represent the result.
func (ctx *Context) pow(id NodeID, l, r *big.Float) (*big.Float, error) {
	if r.Sign() == 0 {
		return l.SetInt64(1), nil
	}
	if r.IsInf() {
		// Only |l| matters: (-1)^±Inf is 1 like 1^±Inf.
		l.Abs(l)
		c := l.Cmp(one)
		switch {
		case c == 0:
			l.SetInt64(1)
		case (c > 0) == (r.Sign() > 0):
			l.SetInf(false)
		default:
			l.SetInt64(0)
		}
		return l, nil
	}
	odd := false
	if l.Signbit() {
		switch {
		case r.IsInt():
			i, _ := r.Int(nil)
			odd = i.Bit(0) != 0
		case l.Sign() != 0 && !l.IsInf():
			// A finite negative base has a real power only for integer
			// exponents.
			return nil, &DomainError{X: l, Node: id, Op: KindExp.String()}
		}
	}
	l.Abs(l)
	switch {
	case l.Sign() == 0:
		if r.Sign() < 0 {
			l.SetInf(false)
		}
	case l.IsInf():
		if r.Sign() < 0 {
			l.SetInt64(0)
		}
	default:
		bigfloat.Pow(l, l, r)
	}
	if odd {
		l.Neg(l)
	}
	return l, nil
}

var one = big.NewFloat(1)
