package policies

import "reqspec/internal/types"

// ExtrasPolicy decides which optional-dependency groups of a manifest are
// pulled in.
type ExtrasPolicy struct {
	Mode  types.ExtrasMode
	names map[types.ExtraName]struct{}
}

func NewExtrasPolicy(spec types.ExtrasSpecification) ExtrasPolicy {
	policy := ExtrasPolicy{Mode: spec.Mode}
	if spec.Mode == types.ExtrasModeSome {
		policy.names = make(map[types.ExtraName]struct{}, len(spec.Names))
		for _, name := range spec.Names {
			policy.names[name] = struct{}{}
		}
	}
	return policy
}

func NoExtras() ExtrasPolicy {
	return NewExtrasPolicy(types.ExtrasSpecification{Mode: types.ExtrasModeNone})
}

func AllExtras() ExtrasPolicy {
	return NewExtrasPolicy(types.ExtrasSpecification{Mode: types.ExtrasModeAll})
}

func SomeExtras(names ...types.ExtraName) ExtrasPolicy {
	return NewExtrasPolicy(types.ExtrasSpecification{Mode: types.ExtrasModeSome, Names: names})
}

// Enabled reports whether groups should be visited at all. An empty
// selection is still enabled; it just never matches.
func (p ExtrasPolicy) Enabled() bool {
	return p.Mode != types.ExtrasModeNone
}

func (p ExtrasPolicy) Contains(name types.ExtraName) bool {
	switch p.Mode {
	case types.ExtrasModeAll:
		return true
	case types.ExtrasModeSome:
		_, ok := p.names[name]
		return ok
	default:
		return false
	}
}
