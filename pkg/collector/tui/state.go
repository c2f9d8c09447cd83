package tui

// State tracks collected answers keyed by field name.
type State struct {
	values map[string]any
}

// NewState seeds the state with prefilled values. The input map is copied.
func NewState(prefill map[string]any) *State {
	values := make(map[string]any, len(prefill))
	for k, v := range prefill {
		values[k] = v
	}
	return &State{values: values}
}

// Values returns the current value map (mutable).
func (s *State) Values() map[string]any {
	if s == nil {
		return nil
	}
	return s.values
}

// GetValue returns the answer stored under name.
func (s *State) GetValue(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[name]
	return v, ok
}

// SetValue stores an answer.
func (s *State) SetValue(name string, value any) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[name] = value
}
