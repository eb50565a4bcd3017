package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boardbevy/internal/delivery/http/helpers"
	"boardbevy/internal/delivery/http/middleware"
	"boardbevy/internal/domain"
	"boardbevy/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueController_Browse(t *testing.T) {
	fake := &fakeCatalogueService{
		entries: []*domain.CatalogueEntry{{ID: "1", Title: "Catan", Players: "3-4"}},
		total:   21,
	}
	ctrl := NewCatalogueController(testLogger, fake)
	rr := httptest.NewRecorder()

	ctrl.Browse(rr, httptest.NewRequest(http.MethodGet, "/catalogue?title=cat&players=3&difficulty=2.5&duration=60&page=2&page_size=10", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.CatalogueQuery{Title: "cat", Players: "3", Difficulty: "2.5", Duration: "60"}, fake.lastQuery)
	assert.Equal(t, domain.PaginationParams{Page: 2, PageSize: 10}, fake.lastPage)

	var body struct {
		Data helpers.Page[domain.CatalogueEntry] `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "Catan", body.Data.Items[0].Title)
	assert.Equal(t, helpers.PaginationMeta{Page: 2, PageSize: 10, Total: 21, TotalPages: 3}, body.Data.Pagination)
}

func TestCatalogueController_Browse_EmptyIsArray(t *testing.T) {
	ctrl := NewCatalogueController(testLogger, &fakeCatalogueService{})
	rr := httptest.NewRecorder()

	ctrl.Browse(rr, httptest.NewRequest(http.MethodGet, "/catalogue", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"items":[]`)
}

func TestCatalogueController_Suggest(t *testing.T) {
	fake := &fakeCatalogueService{titles: []*domain.CatalogueTitle{{ID: "1", Title: "Catan"}}}
	ctrl := NewCatalogueController(testLogger, fake)
	rr := httptest.NewRecorder()

	ctrl.Suggest(rr, httptest.NewRequest(http.MethodGet, "/catalogue/suggest?q=ca&limit=5", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ca", fake.lastText)
	assert.Equal(t, 5, fake.lastLimit)
	assert.JSONEq(t, `{"data":[{"id":"1","title":"Catan"}],"error":null}`, rr.Body.String())
}

func TestCatalogueController_Lookup(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
	}{
		{name: "hits", wantStatus: http.StatusOK},
		{name: "empty query", fakeErr: domain.ErrValidation, wantStatus: http.StatusBadRequest},
		{name: "bgg down", fakeErr: fmt.Errorf("bgg search: %w", domain.ErrUpstream), wantStatus: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCatalogueService{results: []*domain.LookupResult{{ID: "13", Name: "Catan"}}, err: tt.fakeErr}
			ctrl := NewCatalogueController(testLogger, fake)
			rr := httptest.NewRecorder()

			ctrl.Lookup(rr, httptest.NewRequest(http.MethodGet, "/catalogue/lookup?q=catan", nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "catan", fake.lastText)
		})
	}
}

func TestCatalogueController_Details(t *testing.T) {
	fake := &fakeCatalogueService{details: &domain.CatalogueEntry{Title: "Catan", Players: "3-4", Difficulty: "2.3"}}
	ctrl := NewCatalogueController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/catalogue/lookup/13", nil)
	req.SetPathValue("bggID", "13")
	rr := httptest.NewRecorder()

	ctrl.Details(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "13", fake.lastText)
	assert.Contains(t, rr.Body.String(), `"difficulty":"2.3"`)
}

func TestCatalogueController_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		admin      bool
		fakeErr    error
		wantStatus int
	}{
		{name: "admin creates", body: `{"title":" Onirim ","players":"1-2","difficulty":"1.5"}`, admin: true, wantStatus: http.StatusCreated},
		{name: "missing title", body: `{"players":"1-2"}`, admin: true, wantStatus: http.StatusBadRequest},
		{name: "anonymous", body: `{"title":"Onirim"}`, fakeErr: domain.ErrForbidden, wantStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCatalogueService{err: tt.fakeErr}
			ctrl := NewCatalogueController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/catalogue", bytes.NewBufferString(tt.body))
			if tt.admin {
				req = req.WithContext(middleware.SetAuth(req.Context(), adminCtx))
			}
			rr := httptest.NewRecorder()

			ctrl.Create(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.True(t, fake.lastAuth.IsAdmin)
				assert.Equal(t, domain.Text("1-2"), fake.lastEntry.Players)
				assert.Contains(t, rr.Body.String(), `"id":"c-1"`)
			}
		})
	}
}

func TestCatalogueController_UpdateAndDelete(t *testing.T) {
	fake := &fakeCatalogueService{}
	ctrl := NewCatalogueController(testLogger, fake)

	req := httptest.NewRequest(http.MethodPut, "/catalogue/c-9", bytes.NewBufferString(`{"title":"Onirim"}`))
	req.SetPathValue("id", "c-9")
	req = req.WithContext(middleware.SetAuth(req.Context(), adminCtx))
	rr := httptest.NewRecorder()
	ctrl.Update(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.ID("c-9"), fake.lastID)

	req = httptest.NewRequest(http.MethodDelete, "/catalogue/c-9", nil)
	req.SetPathValue("id", "c-9")
	req = req.WithContext(middleware.SetAuth(req.Context(), adminCtx))
	rr = httptest.NewRecorder()
	ctrl.Delete(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.True(t, fake.lastAuth.IsAdmin)
}

func TestCatalogueController_Browse_HugePage(t *testing.T) {
	fake := &fakeCatalogueService{}
	ctrl := NewCatalogueController(testLogger, fake)
	rr := httptest.NewRecorder()

	ctrl.Browse(rr, httptest.NewRequest(http.MethodGet, "/catalogue?page=9223372036854775807", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, helpers.MaxPage, fake.lastPage.Page)
}

// memCatalogue is a domain.CatalogueRepository over a fixed slice.
type memCatalogue struct{ entries []*domain.CatalogueEntry }

func (m *memCatalogue) List(context.Context) ([]*domain.CatalogueEntry, error) { return m.entries, nil }
func (m *memCatalogue) Titles(context.Context) ([]*domain.CatalogueTitle, error) { return nil, nil }
func (m *memCatalogue) Create(context.Context, *domain.CatalogueEntry) error { return nil }
func (m *memCatalogue) Update(context.Context, *domain.CatalogueEntry) error { return nil }
func (m *memCatalogue) Delete(context.Context, domain.ID) error { return nil }

func TestCatalogueController_Browse_PageBeyondList(t *testing.T) {
	repo := &memCatalogue{entries: []*domain.CatalogueEntry{{ID: "1", Title: "Catan"}, {ID: "2", Title: "Chess"}}}
	ctrl := NewCatalogueController(testLogger, services.NewCatalogueService(repo, nil, time.Second))

	for _, page := range []string{"9223372036854775807", "1000000", "2"} {
		t.Run(page, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/catalogue?page_size=100&page="+page, nil)

			require.NotPanics(t, func() { ctrl.Browse(rr, req) })

			require.Equal(t, http.StatusOK, rr.Code)
			var body struct {
				Data helpers.Page[domain.CatalogueEntry] `json:"data"`
			}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Empty(t, body.Data.Items)
			assert.Equal(t, 2, body.Data.Pagination.Total)
		})
	}
}
