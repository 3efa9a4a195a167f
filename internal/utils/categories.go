package utils

import (
	"encoding/json"

	"github.com/accvalongo/associa/internal/types"
	"gorm.io/datatypes"
)

// EncodeCategories serializes a set of category tag IDs for storage,
// dropping anything outside the fixed vocabulary. An empty selection is
// stored as NULL, matching the clear-by-omission semantics of the form.
func EncodeCategories(ids []string) datatypes.JSON {
	return encodeTags(ids, types.ValidCategory)
}

// EncodeFreguesias serializes a set of parish IDs the same way.
func EncodeFreguesias(ids []string) datatypes.JSON {
	return encodeTags(ids, types.ValidFreguesia)
}

func encodeTags(ids []string, valid func(string) bool) datatypes.JSON {
	var kept []string

	for _, id := range ids {
		if valid(id) {
			kept = append(kept, id)
		}
	}

	if len(kept) == 0 {
		return nil
	}

	encoded, err := json.Marshal(kept)

	if err != nil {
		return nil
	}

	return datatypes.JSON(encoded)
}

// DecodeTags parses a stored tag blob back into an ID list. Malformed
// blobs decode to an empty list, never an error.
func DecodeTags(stored datatypes.JSON) []string {
	if len(stored) == 0 {
		return []string{}
	}

	var ids []string

	if err := json.Unmarshal(stored, &ids); err != nil {
		return []string{}
	}

	return ids
}
