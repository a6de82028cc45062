package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// VarResolver resolves {{var}} placeholders in content strings.
// It supports the built-in {{$year}}.
//
// This lives in domain because it does not depend on YAML/FS/HTTP. Only stdlib.
type VarResolver struct {
	now func() time.Time
}

// VarResolverOption configures VarResolver.
type VarResolverOption func(*VarResolver)

// WithNow overrides the clock (useful for tests).
func WithNow(now func() time.Time) VarResolverOption {
	return func(r *VarResolver) { r.now = now }
}

func NewVarResolver(opts ...VarResolverOption) *VarResolver {
	r := &VarResolver{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RuntimeResolver caches built-ins for a single resolution session (e.g. one
// page render) so repeated {{$year}} across fields stays consistent.
type RuntimeResolver struct {
	base     Vars
	builtins Vars
	inner    *VarResolver
}

func (r *VarResolver) NewRuntime(vars Vars) *RuntimeResolver {
	baseCopy := Vars{}
	for k, v := range vars {
		baseCopy[k] = v
	}

	return &RuntimeResolver{
		base: baseCopy,
		builtins: Vars{
			"$year": strconv.Itoa(r.now().UTC().Year()),
		},
		inner: r,
	}
}

// ResolveString resolves placeholders in a string.
func (rr *RuntimeResolver) ResolveString(s string) (string, error) {
	return rr.inner.resolveStringWith(rr.base, rr.builtins, s)
}

// ResolveNode resolves placeholders in every text node and attribute value
// under n. It returns a copy and does not mutate the input tree.
func (rr *RuntimeResolver) ResolveNode(n *Node) (*Node, error) {
	if n == nil {
		return nil, nil
	}

	out := &Node{Tag: n.Tag}

	if n.IsText() {
		t, err := rr.ResolveString(n.Text)
		if err != nil {
			return nil, err
		}
		out.Text = t
		return out, nil
	}

	for _, a := range n.Attrs {
		v, err := rr.ResolveString(a.Value)
		if err != nil {
			return nil, wrapField(err, fmt.Sprintf("<%s %s>", n.Tag, a.Key))
		}
		out.Attrs = append(out.Attrs, Attr{Key: a.Key, Value: v})
	}

	for _, k := range n.Kids {
		rk, err := rr.ResolveNode(k)
		if err != nil {
			return nil, err
		}
		out.Kids = append(out.Kids, rk)
	}

	return out, nil
}

func (r *VarResolver) resolveStringWith(vars Vars, builtins Vars, s string) (string, error) {
	// Fast path: no token start.
	if !strings.Contains(s, "{{") {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s) + 16)

	for i := 0; i < len(s); {
		if i+1 < len(s) && s[i] == '{' && s[i+1] == '{' {
			start := i + 2

			end := strings.Index(s[start:], "}}")
			if end < 0 {
				return "", &OpError{
					Op:   "vars.resolve",
					Kind: KindInvalidConfig,
					Err:  fmt.Errorf("%w: unclosed placeholder", ErrInvalidConfig),
				}
			}
			end = start + end

			name := strings.TrimSpace(s[start:end])
			if name == "" {
				return "", &OpError{
					Op:   "vars.resolve",
					Kind: KindInvalidConfig,
					Err:  fmt.Errorf("%w: empty placeholder", ErrInvalidConfig),
				}
			}

			val, ok := builtins[name]
			if !ok {
				val, ok = vars[name]
			}
			if !ok {
				return "", &OpError{
					Op:   "vars.resolve",
					Kind: KindMissingVar,
					Err:  fmt.Errorf("%w: %s", ErrMissingVar, name),
				}
			}

			b.WriteString(val)
			i = end + 2
			continue
		}

		b.WriteByte(s[i])
		i++
	}

	return b.String(), nil
}

func wrapField(err error, field string) error {
	// Keep Kind information, but add context about which field was being resolved.
	return &OpError{
		Op:   "vars.resolve",
		Kind: kindFrom(err),
		Err:  fmt.Errorf("%s: %w", field, err),
	}
}

func kindFrom(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindExecution
}
