package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/catalog"
)

func fullSelection(t *testing.T, c *catalog.Catalog) *catalog.Selection {
	t.Helper()
	sel := catalog.NewSelection(c)
	require.NoError(t, sel.SetCategory("iPhone"))
	sel.SetYear(2024)
	require.NoError(t, sel.SetItem("iPhone 15 Pro"))
	require.NoError(t, sel.SetStorage("256GB"))
	require.NoError(t, sel.SetColor("Black Titanium"))
	return sel
}

func TestCascadeCategoryResetsEverything(t *testing.T) {
	sel := fullSelection(t, testCatalog(t))

	require.NoError(t, sel.SetCategory("Watch"))
	assert.Equal(t, "Watch", sel.Category)
	assert.Zero(t, sel.Year)
	assert.Empty(t, sel.Item)
	assert.Empty(t, sel.Storage)
	assert.Empty(t, sel.Color)
}

func TestCascadeYearResetsItemAndLeaves(t *testing.T) {
	sel := fullSelection(t, testCatalog(t))

	sel.SetYear(2023)
	assert.Equal(t, "iPhone", sel.Category)
	assert.Equal(t, 2023, sel.Year)
	assert.Empty(t, sel.Item)
	assert.Empty(t, sel.Storage)
	assert.Empty(t, sel.Color)
}

func TestCascadeItemResetsLeaves(t *testing.T) {
	sel := fullSelection(t, testCatalog(t))

	require.NoError(t, sel.SetItem("iPhone 16"))
	assert.Empty(t, sel.Storage)
	assert.Empty(t, sel.Color)
}

func TestSetItemRequiresValidBucketValue(t *testing.T) {
	c := testCatalog(t)
	sel := catalog.NewSelection(c)
	require.NoError(t, sel.SetCategory("iPhone"))
	sel.SetYear(2024)

	assert.ErrorIs(t, sel.SetItem("iPhone 3G"), catalog.ErrItemNotFound)
	assert.Empty(t, sel.Item)

	// empty value just clears
	require.NoError(t, sel.SetItem(""))
}

func TestLeafValuesMustComeFromTheItemLists(t *testing.T) {
	c := testCatalog(t)
	sel := catalog.NewSelection(c)
	require.NoError(t, sel.SetCategory("iPhone"))
	sel.SetYear(2024)
	require.NoError(t, sel.SetItem("iPhone 15 Pro"))

	assert.ErrorIs(t, sel.SetStorage("1TB"), catalog.ErrStorageNotOffered)
	assert.Empty(t, sel.Storage)
	assert.ErrorIs(t, sel.SetColor("Vermelho"), catalog.ErrColorNotOffered)
	assert.Empty(t, sel.Color)

	// no item chosen at all: any leaf value is out of place
	blank := catalog.NewSelection(c)
	assert.ErrorIs(t, blank.SetStorage("128GB"), catalog.ErrStorageNotOffered)
}

func TestEmptyBucketIsNormalState(t *testing.T) {
	c := testCatalog(t)
	sel := catalog.NewSelection(c)
	require.NoError(t, sel.SetCategory("Mac"))
	sel.SetYear(2022)

	assert.Empty(t, sel.Items())
	assert.ErrorIs(t, sel.SetItem("MacBook"), catalog.ErrItemNotFound)
}

func TestDraft(t *testing.T) {
	c := testCatalog(t)

	sel := fullSelection(t, c)
	d, err := sel.Draft()
	require.NoError(t, err)
	assert.Equal(t, catalog.ProductDraft{
		Category: "iPhone",
		Name:     "iPhone 15 Pro",
		Model:    "iPhone 15 Pro",
		Storage:  "256GB",
		Color:    "Black Titanium",
	}, d)

	// leaves are optional
	partial := catalog.NewSelection(c)
	require.NoError(t, partial.SetCategory("Watch"))
	partial.SetYear(2024)
	require.NoError(t, partial.SetItem("Apple Watch Series 10"))
	d, err = partial.Draft()
	require.NoError(t, err)
	assert.Empty(t, d.Storage)

	// but category+item are not
	incomplete := catalog.NewSelection(c)
	require.NoError(t, incomplete.SetCategory("iPhone"))
	_, err = incomplete.Draft()
	assert.ErrorIs(t, err, catalog.ErrIncompleteSelection)
}

func TestSelectionOptionListsFollowTheCursor(t *testing.T) {
	c := testCatalog(t)
	sel := catalog.NewSelection(c)

	assert.Empty(t, sel.Years())
	require.NoError(t, sel.SetCategory("iPhone"))
	assert.Equal(t, []int{2024, 2023}, sel.Years())
	assert.Empty(t, sel.Items())
	sel.SetYear(2024)
	assert.Len(t, sel.Items(), 2)
}
