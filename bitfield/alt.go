package bitfield

import "gtpv1c/gtperr"

// Alt is a discriminated alternative: exactly one of Branches is decoded
// or encoded, chosen by evaluating Selector. An unrecognised selector
// value falls back to Default when one is supplied.
type Alt struct {
	name     string
	Selector func() int64
	Branches map[int64]Node
	Default  Node
	trans    TransFunc
	active   Node
}

// NewAlt declares a named alternative. selector is evaluated at both
// Decode and Encode time to choose the active branch.
func NewAlt(name string, selector func() int64, branches map[int64]Node, def Node) *Alt {
	return &Alt{name: name, Selector: selector, Branches: branches, Default: def}
}

func (a *Alt) Name() string { return a.name }

// WithTrans attaches a presence callback to the alternative as a whole.
func (a *Alt) WithTrans(f TransFunc) *Alt {
	a.trans = f
	return a
}

func (a *Alt) Transparent() bool {
	if a.trans != nil {
		return a.trans()
	}
	return false
}

func (a *Alt) resolve() (Node, error) {
	key := a.Selector()
	if n, ok := a.Branches[key]; ok {
		return n, nil
	}
	if a.Default != nil {
		return a.Default, nil
	}
	return nil, gtperr.ErrInvalidAlternative
}

func (a *Alt) Decode(c *Cursor) error {
	if a.Transparent() {
		a.active = nil
		return nil
	}
	n, err := a.resolve()
	if err != nil {
		return err
	}
	a.active = n
	return n.Decode(c)
}

func (a *Alt) Encode(w *Writer) error {
	if a.Transparent() {
		return nil
	}
	n, err := a.resolve()
	if err != nil {
		return err
	}
	a.active = n
	return n.Encode(w)
}

// Active returns the branch chosen by the most recent Decode or Encode.
func (a *Alt) Active() Node { return a.active }
