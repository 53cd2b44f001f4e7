package league

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrUnsupportedLeague is returned when a league name is not in the registry.
var ErrUnsupportedLeague = errors.New("league is not supported")

// Spec describes a supported league: the user-facing name and the path
// segment the provider uses for it (e.g. "basketball/nba").
type Spec struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Registry is the fixed set of supported leagues. It is immutable after
// construction and safe for concurrent reads.
type Registry struct {
	byName map[string]Spec
	order  []string
}

// NewRegistry builds the registry with the full set of supported leagues.
func NewRegistry() *Registry {
	specs := []Spec{
		{Name: "nfl", Path: "football/nfl"},
		{Name: "nba", Path: "basketball/nba"},
		{Name: "mlb", Path: "baseball/mlb"},
		{Name: "nhl", Path: "hockey/nhl"},
		{Name: "mls", Path: "soccer/usa.1"},
		{Name: "premier-league", Path: "soccer/eng.1"},
		{Name: "la-liga", Path: "soccer/esp.1"},
		{Name: "bundesliga", Path: "soccer/ger.1"},
		{Name: "serie-a", Path: "soccer/ita.1"},
		{Name: "ligue-1", Path: "soccer/fra.1"},
		{Name: "uefa-champions", Path: "soccer/uefa.champions"},
		{Name: "uefa-europa", Path: "soccer/uefa.europa"},
		{Name: "ncaa-football", Path: "football/college-football"},
		{Name: "ncaa-mens-basketball", Path: "basketball/mens-college-basketball"},
	}

	r := &Registry{byName: make(map[string]Spec, len(specs))}
	for _, s := range specs {
		r.byName[s.Name] = s
		r.order = append(r.order, s.Name)
	}
	return r
}

// Lookup resolves a league name to its spec. Matching is case-insensitive.
// An unknown name returns ErrUnsupportedLeague; when a close match exists the
// error message carries a suggestion.
func (r *Registry) Lookup(name string) (Spec, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if spec, ok := r.byName[key]; ok {
		return spec, nil
	}

	if matches := fuzzy.RankFindNormalizedFold(key, r.order); len(matches) > 0 {
		sort.Sort(matches)
		return Spec{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnsupportedLeague, name, matches[0].Target)
	}
	return Spec{}, fmt.Errorf("%w: %q", ErrUnsupportedLeague, name)
}

// List returns all supported leagues in registration order.
func (r *Registry) List() []Spec {
	specs := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		specs = append(specs, r.byName[name])
	}
	return specs
}
