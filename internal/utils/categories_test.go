package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoriesRoundTrip(t *testing.T) {
	ids := []string{"cultura_teatro", "desporto_futebol", "bemestar_yoga"}

	stored := EncodeCategories(ids)
	decoded := DecodeTags(stored)

	assert.ElementsMatch(t, ids, decoded)
}

func TestEncodeCategoriesDropsUnknownTags(t *testing.T) {
	stored := EncodeCategories([]string{"cultura_teatro", "not_a_category"})

	assert.ElementsMatch(t, []string{"cultura_teatro"}, DecodeTags(stored))
}

func TestEncodeCategoriesEmptySelectionIsNull(t *testing.T) {
	assert.Nil(t, EncodeCategories(nil))
	assert.Nil(t, EncodeCategories([]string{"not_a_category"}))
}

func TestFreguesiasRoundTrip(t *testing.T) {
	ids := []string{"ermesinde", "alfena"}

	stored := EncodeFreguesias(ids)

	assert.ElementsMatch(t, ids, DecodeTags(stored))
}

func TestEncodeFreguesiasDropsUnknownParishes(t *testing.T) {
	stored := EncodeFreguesias([]string{"valongo", "porto"})

	assert.ElementsMatch(t, []string{"valongo"}, DecodeTags(stored))
	assert.Nil(t, EncodeFreguesias([]string{"porto"}))
}

func TestDecodeTagsMalformedBlob(t *testing.T) {
	assert.Empty(t, DecodeTags([]byte("{broken")))
	assert.Empty(t, DecodeTags(nil))
}
