package solitaire

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownExpansion = errors.New("unknown expansion policy")

/*
	Expansion decides when a node's children are built. Eager builds the
	whole reachable tree up front, which costs memory in proportion to the
	number of move sequences. Lazy builds children on first access. Both
	visit nodes in the same order.
*/
type Expansion int

const (
	Eager Expansion = iota
	Lazy
)

func ParseExpansion(name string) (Expansion, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "eager":
		return Eager, nil
	case "lazy":
		return Lazy, nil
	}
	return Eager, fmt.Errorf("%q: %w", name, ErrUnknownExpansion)
}

func (e Expansion) String() string {
	if e == Lazy {
		return "lazy"
	}
	return "eager"
}

func (e Expansion) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Expansion) UnmarshalText(text []byte) error {
	parsed, err := ParseExpansion(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func (e Expansion) MarshalYAML() (interface{}, error) {
	return e.String(), nil
}

func (e *Expansion) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	return e.UnmarshalText([]byte(name))
}
