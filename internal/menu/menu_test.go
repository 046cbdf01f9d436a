package menu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttributes_InsertionOrder(t *testing.T) {
	t.Parallel()

	attrs := NewAttributes().
		Set("class", "nav-item").
		Set("data-depth", "0").
		Set("rel", "nofollow")

	require.Equal(t, []string{"class", "data-depth", "rel"}, attrs.Keys())
	require.Equal(t, 3, attrs.Len())

	// overwriting keeps the original position
	attrs.Set("data-depth", "1")
	require.Equal(t, []string{"class", "data-depth", "rel"}, attrs.Keys())
	require.Equal(t, "1", attrs.Get("data-depth", ""))
}

func TestAttributes_GetDefault(t *testing.T) {
	t.Parallel()

	attrs := NewAttributes().Set("class", "active")

	require.Equal(t, "active", attrs.Get("class", "fallback"))
	require.Equal(t, "fallback", attrs.Get("missing", "fallback"))
}

func TestStaticItem(t *testing.T) {
	t.Parallel()

	owner := &StaticMenu{MenuID: "main", MenuName: "Main navigation"}
	item := &StaticItem{
		ItemID:  "blog",
		Label:   "Blog",
		Target:  "/blog",
		Parent:  "root",
		Attrs:   NewAttributes().Set("class", "nav-item"),
		DataBag: map[string]any{"weight": 10},
		Owner:   owner,
	}

	require.Equal(t, "blog", item.ID())
	require.Equal(t, "Blog", item.Name())
	require.Equal(t, "/blog", item.URL())
	require.Equal(t, "root", item.ParentID())
	require.Equal(t, owner, item.Menu())

	require.Equal(t, "nav-item", item.Attribute("class", ""))
	require.Equal(t, "x", item.Attribute("missing", "x"))

	require.Equal(t, 10, item.Get("weight", 0))
	require.Equal(t, 99, item.Get("missing", 99))
}

func TestStaticItem_Defaults(t *testing.T) {
	t.Parallel()

	item := &StaticItem{Target: "/blog"}

	// nil attribute bag still answers lookups
	require.Equal(t, "def", item.Attribute("class", "def"))
	require.NotNil(t, item.Attributes())
	require.Zero(t, item.Attributes().Len())

	require.Equal(t, "def", item.Get("anything", "def"))
}

func TestStaticItem_String(t *testing.T) {
	t.Parallel()

	named := &StaticItem{Label: "Blog", Target: "/blog"}
	require.Equal(t, "Blog", named.String())

	unnamed := &StaticItem{Target: "/blog"}
	require.Equal(t, "/blog", unnamed.String())
}
