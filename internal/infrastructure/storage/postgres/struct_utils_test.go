package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stockyard/internal/core/entity"
	"stockyard/internal/core/id"
)

type mockCatalog struct {
	entity.Catalog
	SKU  string `db:"sku" json:"sku"`
	Unit string `db:"unit" json:"unit"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expectedCols := []string{
		"id", "deletion_mark", "version", "attributes",
		"code", "name", "parent_id", "is_folder",
		"sku", "unit",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
}

func TestStructToMap(t *testing.T) {
	cat := mockCatalog{
		Catalog: entity.Catalog{
			BaseCatalog: entity.BaseCatalog{
				BaseEntity: entity.BaseEntity{
					ID:           id.New(),
					DeletionMark: true,
					Version:      5,
				},
			},
			Code: "ITM-2026-00001",
			Name: "Euro pallet",
		},
		SKU:  "PAL-EUR",
		Unit: "pcs",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "ITM-2026-00001", m["code"])
	assert.Equal(t, "Euro pallet", m["name"])
	assert.Equal(t, "PAL-EUR", m["sku"])
	assert.Equal(t, "pcs", m["unit"])
}

func TestStructToMap_PointerAndNonStruct(t *testing.T) {
	cat := &mockCatalog{SKU: "X"}
	m := StructToMap(cat)
	assert.Equal(t, "X", m["sku"])

	assert.Nil(t, StructToMap(42))
}
