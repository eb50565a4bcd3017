package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleFields(t *testing.T) {
	var g Game
	err := json.Unmarshal([]byte(`{"id":7,"players":4,"catalogue":"12","participants":["Alice"," ","Bob"]}`), &g)
	require.NoError(t, err)
	assert.Equal(t, ID("7"), g.ID)
	assert.Equal(t, Text("4"), g.Players)
	assert.Equal(t, ID("12"), g.Catalogue)
	assert.Equal(t, Names("Alice, Bob"), g.Participants)

	var e Event
	err = json.Unmarshal([]byte(`{"id":"3","price":null,"game":"Catan"}`), &e)
	require.NoError(t, err)
	assert.Equal(t, ID("3"), e.ID)
	assert.Equal(t, Text(""), e.Price)
	assert.Equal(t, Text("Catan"), e.Game)

	var c CatalogueEntry
	err = json.Unmarshal([]byte(`{"difficulty":2.25,"releaseYear":1995}`), &c)
	require.NoError(t, err)
	assert.Equal(t, Text("2.25"), c.Difficulty)
	assert.Equal(t, Text("1995"), c.ReleaseYear)
}

func TestFlexibleFields_RejectsObjects(t *testing.T) {
	var e Event
	err := json.Unmarshal([]byte(`{"price":{"amount":5}}`), &e)
	require.Error(t, err)
}

func TestNames_WithOrganizer(t *testing.T) {
	assert.Equal(t, "Sam", Names("").WithOrganizer("Sam"))
	assert.Equal(t, "Sam, Alice, Bob", Names("Alice, Bob").WithOrganizer("Sam"))
	assert.Equal(t, "Alice", Names("Alice").WithOrganizer(""))
}

func TestPaginationWindow(t *testing.T) {
	tests := []struct {
		name      string
		p         PaginationParams
		total     int
		wantStart int
		wantEnd   int
	}{
		{"first page", PaginationParams{Page: 1, PageSize: 10}, 25, 0, 10},
		{"last partial page", PaginationParams{Page: 3, PageSize: 10}, 25, 20, 25},
		{"past the end", PaginationParams{Page: 5, PageSize: 10}, 25, 25, 25},
		{"no page size", PaginationParams{Page: 1}, 25, 0, 25},
		{"page zero", PaginationParams{Page: 0, PageSize: 10}, 25, 0, 10},
		{"huge page", PaginationParams{Page: math.MaxInt, PageSize: 20}, 25, 25, 25},
		{"huge page size", PaginationParams{Page: 2, PageSize: math.MaxInt}, 25, 25, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.p.Window(tt.total)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
