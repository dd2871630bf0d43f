package ir

import (
	"fmt"

	"github.com/roach88/bisect/internal/search"
)

// Sequence is a homogeneous list of integers or strings. Its elements are
// expected to be sorted for lookups; Sequence does not enforce that, see
// FirstUnsorted.
type Sequence struct {
	kind Kind
	ints []int64
	strs []string
}

// ParseSequence parses tokens into a Sequence of the given kind. With KindAuto
// the sequence is KindInt when every token is an integer, KindString
// otherwise. An empty token list yields an empty KindInt sequence under
// KindAuto.
func ParseSequence(tokens []string, kind Kind) (Sequence, error) {
	if kind == KindAuto || kind == "" {
		kind = InferKind(tokens)
	}

	seq := Sequence{kind: kind}
	switch kind {
	case KindInt:
		seq.ints = make([]int64, 0, len(tokens))
	case KindString:
		seq.strs = make([]string, 0, len(tokens))
	default:
		return Sequence{}, fmt.Errorf("invalid kind %q", kind)
	}

	for i, tok := range tokens {
		v, err := ParseValue(tok, kind)
		if err != nil {
			return Sequence{}, fmt.Errorf("element[%d]: %w", i, err)
		}
		seq.append(v)
	}
	return seq, nil
}

// SequenceOf converts decoded scalars (from YAML, JSON or CUE) into a
// Sequence. See Token for the accepted scalar types.
func SequenceOf(values []any, kind Kind) (Sequence, error) {
	tokens, err := Tokens(values)
	if err != nil {
		return Sequence{}, err
	}
	return ParseSequence(tokens, kind)
}

// Tokens applies Token to every element.
func Tokens(values []any) ([]string, error) {
	tokens := make([]string, len(values))
	for i, v := range values {
		tok, err := Token(v)
		if err != nil {
			return nil, fmt.Errorf("element[%d]: %w", i, err)
		}
		tokens[i] = tok
	}
	return tokens, nil
}

// InferKind returns KindInt when every token is an integer and KindString
// otherwise. No tokens infers KindInt.
func InferKind(tokens []string) Kind {
	for _, tok := range tokens {
		if _, err := ParseValue(tok, KindInt); err != nil {
			return KindString
		}
	}
	return KindInt
}

func (s *Sequence) append(v Value) {
	switch val := v.(type) {
	case Int:
		s.ints = append(s.ints, int64(val))
	case String:
		s.strs = append(s.strs, string(val))
	}
}

// Kind returns the element kind.
func (s Sequence) Kind() Kind {
	return s.kind
}

// Len returns the number of elements.
func (s Sequence) Len() int {
	if s.kind == KindString {
		return len(s.strs)
	}
	return len(s.ints)
}

// At returns the element at index i.
func (s Sequence) At(i int) Value {
	if s.kind == KindString {
		return String(s.strs[i])
	}
	return Int(s.ints[i])
}

// Values returns the elements as Values.
func (s Sequence) Values() []Value {
	out := make([]Value, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// ParseTarget parses a target token with the sequence's kind.
func (s Sequence) ParseTarget(token string) (Value, error) {
	kind := s.kind
	if kind == "" {
		kind = KindInt
	}
	v, err := ParseValue(token, kind)
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	return v, nil
}

// Index returns the position of an element equal to target, or
// search.NotFound. A target of a different kind is ErrKindMismatch.
func (s Sequence) Index(target Value) (int, error) {
	i, _, err := s.lookup(target, false)
	return i, err
}

// Trace is Index plus the probes taken.
func (s Sequence) Trace(target Value) (int, []search.Step, error) {
	return s.lookup(target, true)
}

func (s Sequence) lookup(target Value, trace bool) (int, []search.Step, error) {
	switch t := target.(type) {
	case Int:
		if s.kind == KindString {
			return search.NotFound, nil, fmt.Errorf("%w: int target in string sequence", ErrKindMismatch)
		}
		if trace {
			i, steps := search.Trace(s.ints, int64(t))
			return i, steps, nil
		}
		return search.Index(s.ints, int64(t)), nil, nil
	case String:
		if s.kind != KindString {
			return search.NotFound, nil, fmt.Errorf("%w: string target in int sequence", ErrKindMismatch)
		}
		if trace {
			i, steps := search.Trace(s.strs, string(t))
			return i, steps, nil
		}
		return search.Index(s.strs, string(t)), nil, nil
	default:
		return search.NotFound, nil, fmt.Errorf("%w: %T", ErrUnsupportedType, target)
	}
}

// FirstUnsorted returns the first index whose element sorts before its
// predecessor, or search.NotFound if the sequence is sorted.
func (s Sequence) FirstUnsorted() int {
	if s.kind == KindString {
		return search.FirstUnsorted(s.strs)
	}
	return search.FirstUnsorted(s.ints)
}

// ParseLookup parses a target and its sequence together. With KindAuto the
// kind is inferred over both, so "search foo" against an empty sequence is a
// string lookup rather than an integer parse error.
func ParseLookup(target string, tokens []string, kind Kind) (Sequence, Value, error) {
	if kind == KindAuto || kind == "" {
		kind = InferKind(append([]string{target}, tokens...))
	}
	seq, err := ParseSequence(tokens, kind)
	if err != nil {
		return Sequence{}, nil, err
	}
	t, err := seq.ParseTarget(target)
	if err != nil {
		return Sequence{}, nil, err
	}
	return seq, t, nil
}
