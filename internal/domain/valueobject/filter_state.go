package valueobject

// FilterState is the user-controlled view filter. The With* methods return a
// modified copy so a state handed to a filter run is never changed under it.
type FilterState struct {
	GeometryTypeEnabled map[GeometryType]bool
	NameQuery           string
}

func DefaultFilterState() FilterState {
	enabled := make(map[GeometryType]bool, len(KnownGeometryTypes))
	for _, t := range KnownGeometryTypes {
		enabled[t] = true
	}
	return FilterState{GeometryTypeEnabled: enabled}
}

// IsTypeEnabled reports whether features of type t pass the type toggles.
// Only known types can be switched off; a type without an entry is enabled.
func (s FilterState) IsTypeEnabled(t GeometryType) bool {
	if !t.IsKnown() {
		return true
	}
	enabled, ok := s.GeometryTypeEnabled[t]
	return !ok || enabled
}

func (s FilterState) WithGeometryType(t GeometryType, enabled bool) FilterState {
	next := make(map[GeometryType]bool, len(s.GeometryTypeEnabled)+1)
	for k, v := range s.GeometryTypeEnabled {
		next[k] = v
	}
	next[t] = enabled

	return FilterState{GeometryTypeEnabled: next, NameQuery: s.NameQuery}
}

func (s FilterState) WithNameQuery(query string) FilterState {
	return FilterState{GeometryTypeEnabled: s.GeometryTypeEnabled, NameQuery: query}
}
