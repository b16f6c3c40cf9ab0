package xmltree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiofrance/robotkw/pkg/xmltree"
)

func TestNode_Attr(t *testing.T) {
	t.Parallel()

	node := &xmltree.Node{Tag: "kw", Attrs: map[string]string{"name": "", "type": "setup"}}

	value, ok := node.Attr("name")
	assert.True(t, ok)
	assert.Empty(t, value)

	value, ok = node.Attr("library")
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestNode_ChildOnlyMatchesDirectChildren(t *testing.T) {
	t.Parallel()

	root, err := xmltree.ParseString(`<kw name="outer">
    <kw name="inner"><status status="FAIL"/></kw>
</kw>`)
	require.NoError(t, err)

	assert.Nil(t, root.Child("status"))
	assert.NotNil(t, root.Child("kw").Child("status"))
}

func TestNode_ChildReturnsFirstMatch(t *testing.T) {
	t.Parallel()

	root, err := xmltree.ParseString(`<kw><status status="PASS"/><status status="FAIL"/></kw>`)
	require.NoError(t, err)

	status := root.Child("status")
	require.NotNil(t, status)
	assert.Equal(t, "PASS", status.Attrs["status"])
}

func TestNode_ChildrenByTag(t *testing.T) {
	t.Parallel()

	root, err := xmltree.ParseString(`<kw>
    <kw name="first"><kw name="nested"/></kw>
    <status status="PASS"/>
    <kw name="second"/>
</kw>`)
	require.NoError(t, err)

	children := root.ChildrenByTag("kw")
	require.Len(t, children, 2)
	assert.Equal(t, "first", children[0].Attrs["name"])
	assert.Equal(t, "second", children[1].Attrs["name"])

	assert.Empty(t, root.ChildrenByTag("doc"))
}
