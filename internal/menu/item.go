// Package menu declares the read-only contract navigation components program
// against. Building and mutating menu trees is the host application's job;
// consumers only ever walk items through these interfaces.
package menu

type ItemStatus int

const (
	ItemStatusDeactivated ItemStatus = iota
	ItemStatusActive
)

// Menu is the owning collection an item points back to.
type Menu interface {
	ID() string
	Name() string
}

// Item is one navigation entry. ParentID is empty for root items; the
// attribute and data lookups fall back to the given default when the key is
// absent.
type Item interface {
	ID() string
	Name() string
	URL() string
	ParentID() string
	Attributes() *Attributes
	Attribute(name, def string) string
	Get(key string, def any) any
	Menu() Menu
	String() string
}

// Attributes is an ordered string-to-string mapping. Iteration follows
// insertion order; setting an existing key keeps its position.
type Attributes struct {
	keys   []string
	values map[string]string
}

func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]string)}
}

func (a *Attributes) Set(name, value string) *Attributes {
	if _, ok := a.values[name]; !ok {
		a.keys = append(a.keys, name)
	}
	a.values[name] = value
	return a
}

func (a *Attributes) Get(name, def string) string {
	if v, ok := a.values[name]; ok {
		return v
	}
	return def
}

func (a *Attributes) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

func (a *Attributes) Len() int {
	return len(a.keys)
}
