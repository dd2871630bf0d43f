package ir

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Errors returned while parsing or comparing values.
var (
	ErrKindMismatch    = errors.New("kind mismatch")
	ErrNotInteger      = errors.New("not an integer")
	ErrUnsupportedType = errors.New("unsupported element type")
)

// Kind identifies the element type of a sequence.
type Kind string

const (
	// KindAuto infers KindInt when every token is an integer, KindString otherwise.
	KindAuto   Kind = "auto"
	KindInt    Kind = "int"
	KindString Kind = "string"
)

// ValidKinds lists the accepted kind names.
var ValidKinds = []Kind{KindAuto, KindInt, KindString}

// ParseKind parses a kind name. The empty string means KindAuto.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindAuto, nil
	}
	for _, k := range ValidKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid kind %q: must be one of %v", s, ValidKinds)
}

// Value is a sealed interface over the element types a Sequence can hold.
// Only Int and String implement it.
type Value interface {
	Kind() Kind
	String() string
	irValue()
}

// Int is a 64-bit integer element.
type Int int64

func (Int) irValue() {}

// Kind returns KindInt.
func (Int) Kind() Kind { return KindInt }

func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }

// MarshalJSON encodes an Int as a JSON number.
func (v Int) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

// String is an NFC-normalized string element. Construct it with NewString
// or ParseValue so the normalization invariant holds.
type String string

func (String) irValue() {}

// Kind returns KindString.
func (String) Kind() Kind { return KindString }

func (v String) String() string { return string(v) }

// MarshalJSON encodes a String as a JSON string.
func (v String) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

// NewString returns s normalized to NFC.
func NewString(s string) String {
	return String(norm.NFC.String(s))
}

// ParseValue converts a token into a Value of the given kind.
// KindAuto yields an Int when the token is an integer and a String otherwise.
func ParseValue(token string, kind Kind) (Value, error) {
	switch kind {
	case KindInt:
		n, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", token, ErrNotInteger)
		}
		return Int(n), nil
	case KindString:
		return NewString(token), nil
	case KindAuto, "":
		if v, err := ParseValue(token, KindInt); err == nil {
			return v, nil
		}
		return NewString(token), nil
	default:
		return nil, fmt.Errorf("invalid kind %q", kind)
	}
}

// Compare orders a against b: negative if a sorts first, zero if equal,
// positive otherwise. Values of different kinds do not compare.
func Compare(a, b Value) (int, error) {
	switch av := a.(type) {
	case Int:
		bv, ok := b.(Int)
		if !ok {
			return 0, fmt.Errorf("%w: int vs %s", ErrKindMismatch, b.Kind())
		}
		switch {
		case av < bv:
			return -1, nil
		case av > bv:
			return 1, nil
		}
		return 0, nil
	case String:
		bv, ok := b.(String)
		if !ok {
			return 0, fmt.Errorf("%w: string vs %s", ErrKindMismatch, b.Kind())
		}
		return strings.Compare(string(av), string(bv)), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedType, a)
	}
}

// Token renders a decoded YAML, JSON or CUE scalar as a token for ParseValue.
// Integral numbers and strings are accepted; floats, booleans and null are
// rejected.
func Token(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint64:
		if val > math.MaxInt64 {
			return "", fmt.Errorf("%d: %w", val, ErrNotInteger)
		}
		return strconv.FormatUint(val, 10), nil
	case json.Number:
		if _, err := strconv.ParseInt(val.String(), 10, 64); err != nil {
			return "", fmt.Errorf("%s: %w", val, ErrNotInteger)
		}
		return val.String(), nil
	case float64, float32:
		return "", fmt.Errorf("floats are forbidden: %v: %w", val, ErrUnsupportedType)
	case nil:
		return "", fmt.Errorf("null: %w", ErrUnsupportedType)
	default:
		return "", fmt.Errorf("%T: %w", v, ErrUnsupportedType)
	}
}
