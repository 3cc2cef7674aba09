package drive

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalLess_NumbersByValue(t *testing.T) {
	assert.True(t, NaturalLess("infografis-2.png", "infografis-10.png"))
	assert.False(t, NaturalLess("infografis-10.png", "infografis-2.png"))
	assert.True(t, NaturalLess("hari 9.jpg", "hari 11.jpg"))
}

func TestNaturalLess_CaseInsensitive(t *testing.T) {
	assert.True(t, NaturalLess("Apel.png", "banana.png"))
	assert.True(t, NaturalLess("apel.png", "Banana.png"))
}

func TestNaturalLess_ZeroPadding(t *testing.T) {
	// equal value: fewer leading zeros first
	assert.True(t, NaturalLess("img-1.png", "img-01.png"))
	assert.True(t, NaturalLess("img-01.png", "img-2.png"))
}

func TestNaturalLess_PrefixOrder(t *testing.T) {
	assert.True(t, NaturalLess("peta", "peta-update"))
	assert.False(t, NaturalLess("peta-update", "peta"))
}

func TestNaturalLess_SortsGalleryOrder(t *testing.T) {
	names := []string{
		"Update 10.png",
		"update 2.png",
		"peta.jpg",
		"update 1.png",
	}
	sort.Slice(names, func(i, j int) bool { return NaturalLess(names[i], names[j]) })

	assert.Equal(t, []string{"peta.jpg", "update 1.png", "update 2.png", "Update 10.png"}, names)
}
