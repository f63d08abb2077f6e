package render

import "strings"

// Built-in generator ids. Saved designer templates use snowflake ids,
// so the names never collide.
const (
	DefaultGeneratorID = "default"
	ExtrapeGeneratorID = "extrape"
)

// Registry is the catalog of built-in invoice documents, keyed by
// template id. Lookups are case-insensitive.
type Registry struct {
	generators map[string]Renderer
}

func NewRegistry() *Registry {
	r := &Registry{generators: map[string]Renderer{}}
	r.Register(DefaultGeneratorID, NewRenderer())
	r.Register(ExtrapeGeneratorID, NewExtrapeRenderer())
	return r
}

func (r *Registry) Register(id string, gen Renderer) {
	r.generators[strings.ToLower(strings.TrimSpace(id))] = gen
}

func (r *Registry) Lookup(id string) (Renderer, bool) {
	gen, ok := r.generators[strings.ToLower(strings.TrimSpace(id))]
	return gen, ok
}

// Default returns the fallback document used when no template matches.
func (r *Registry) Default() Renderer {
	return r.generators[DefaultGeneratorID]
}
