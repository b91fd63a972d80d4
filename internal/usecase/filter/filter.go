// Package filter selects the features visible under a FilterState.
package filter

import (
	"strings"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
)

// Apply returns the features of fs that pass state, in their original order.
// fs is never modified.
func Apply(fs []entity.Feature, state valueobject.FilterState) []entity.Feature {
	query := strings.ToLower(state.NameQuery)

	visible := make([]entity.Feature, 0, len(fs))
	for _, f := range fs {
		if !state.IsTypeEnabled(f.GeometryType()) {
			continue
		}
		if query != "" && !nameMatches(f, query) {
			continue
		}
		visible = append(visible, f)
	}

	return visible
}

func nameMatches(f entity.Feature, lowerQuery string) bool {
	name, ok := f.Properties.Name()
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(name), lowerQuery)
}
