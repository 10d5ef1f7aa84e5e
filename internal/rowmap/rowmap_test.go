package rowmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToCamelRenamesKeys(t *testing.T) {
	row := Record{
		"id":              "abc",
		"created_at":      time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		"whatsapp_number": "+60123456789",
		"is_active":       true,
	}

	got := ToCamel(row)

	assert.Equal(t, "abc", got["id"])
	assert.Equal(t, "+60123456789", got["whatsappNumber"])
	assert.Equal(t, true, got["isActive"])
	assert.Contains(t, got, "createdAt")
	assert.NotContains(t, got, "whatsapp_number")
}

func TestToCamelRecursesIntoNestedRecords(t *testing.T) {
	row := Record{
		"id": "p1",
		"category": Record{
			"id":         "c1",
			"sort_order": 3,
		},
	}

	got := ToCamel(row)

	nested, ok := got["category"].(Record)
	assert.True(t, ok)
	assert.Equal(t, 3, nested["sortOrder"])
	assert.NotContains(t, nested, "sort_order")
}

func TestToCamelMapsSlicesElementWise(t *testing.T) {
	row := Record{
		"items": []Record{
			{"product_id": "p1"},
			{"product_id": "p2"},
		},
		"tags": []interface{}{"a", "b"},
	}

	got := ToCamel(row)

	items := got["items"].([]Record)
	assert.Equal(t, "p1", items[0]["productId"])
	assert.Equal(t, "p2", items[1]["productId"])
	assert.Equal(t, []interface{}{"a", "b"}, got["tags"])
}

func TestToCamelIsIdempotent(t *testing.T) {
	row := Record{
		"categoryId": "c1",
		"createdAt":  time.Now(),
		"images":     []interface{}{"a.jpg"},
	}

	once := ToCamel(row)
	twice := ToCamel(once)

	assert.Equal(t, once, twice)
}

func TestToCamelDoesNotRecurseIntoTimes(t *testing.T) {
	ts := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	got := ToCamel(Record{"clicked_at": ts})
	assert.Equal(t, ts, got["clickedAt"])
}

func TestToCamelNilInNilOut(t *testing.T) {
	assert.Nil(t, ToCamel(nil))
}

func TestSliceToCamel(t *testing.T) {
	rows := []Record{{"is_active": false}, {"is_active": true}}
	got := SliceToCamel(rows)
	assert.Len(t, got, 2)
	assert.Equal(t, false, got[0]["isActive"])
	assert.Equal(t, true, got[1]["isActive"])
}
