package menu

// StaticMenu is a fixed, in-code menu. It satisfies Menu for components that
// only need the back-reference.
type StaticMenu struct {
	MenuID   string
	MenuName string
}

func (m *StaticMenu) ID() string   { return m.MenuID }
func (m *StaticMenu) Name() string { return m.MenuName }

// StaticItem is the canonical Item implementation for menus defined in
// configuration or code.
type StaticItem struct {
	ItemID  string
	Label   string
	Target  string
	Parent  string
	Attrs   *Attributes
	DataBag map[string]any
	Owner   Menu
}

func (i *StaticItem) ID() string       { return i.ItemID }
func (i *StaticItem) Name() string     { return i.Label }
func (i *StaticItem) URL() string      { return i.Target }
func (i *StaticItem) ParentID() string { return i.Parent }

func (i *StaticItem) Attributes() *Attributes {
	if i.Attrs == nil {
		i.Attrs = NewAttributes()
	}
	return i.Attrs
}

func (i *StaticItem) Attribute(name, def string) string {
	if i.Attrs == nil {
		return def
	}
	return i.Attrs.Get(name, def)
}

func (i *StaticItem) Get(key string, def any) any {
	if v, ok := i.DataBag[key]; ok {
		return v
	}
	return def
}

func (i *StaticItem) Menu() Menu { return i.Owner }

// String renders the display name, falling back to the URL for unnamed
// items.
func (i *StaticItem) String() string {
	if i.Label != "" {
		return i.Label
	}
	return i.Target
}
