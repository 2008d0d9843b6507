package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint(t *testing.T) {
	want := map[string]int{"AA": 10, "AB": 9, "BB": 8, "BC": 7, "CC": 6, "CD": 5, "DD": 4, "FF": 0}
	for symbol, points := range want {
		got, ok := Point(symbol)
		assert.True(t, ok, symbol)
		assert.Equal(t, points, got, symbol)
	}

	_, ok := Point("")
	assert.False(t, ok)
	_, ok = Point("aa")
	assert.False(t, ok, "lookup is case sensitive, callers normalize first")
}

func TestGrades_ReturnsCopy(t *testing.T) {
	g := Grades()
	g[0] = "ZZ"

	assert.Equal(t, GradeAA, Grades()[0])
	assert.Len(t, Grades(), 8)
}

func TestNext(t *testing.T) {
	t.Run("should walk forward from unassigned", func(t *testing.T) {
		assert.Equal(t, "AA", Next("", 1))
		assert.Equal(t, "AB", Next("AA", 1))
	})

	t.Run("should wrap after FF", func(t *testing.T) {
		assert.Equal(t, "", Next("FF", 1))
	})

	t.Run("should walk backwards", func(t *testing.T) {
		assert.Equal(t, "FF", Next("", -1))
		assert.Equal(t, "", Next("AA", -1))
	})

	t.Run("unknown symbol restarts from unassigned", func(t *testing.T) {
		assert.Equal(t, "AA", Next("Q", 1))
	})
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "AB", Normalize(" ab "))
	assert.Equal(t, "", Normalize("  "))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.00", FormatIndex(0))
	assert.Equal(t, "8.08", FormatIndex(8.0816))
	assert.Equal(t, "10.00", FormatIndex(10))
	assert.Equal(t, "8", FormatCredits(8))
	assert.Equal(t, "3.5", FormatCredits(3.5))
}
