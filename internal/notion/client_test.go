package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/radiusdt/wellwave-hub/internal/config"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(config.NotionConfig{
		Token:   "secret-token",
		BaseURL: srv.URL,
		Version: "2022-06-28",
		Timeout: 5 * time.Second,
	}, zaptest.NewLogger(t), nil)
}

func pagesNamed(prefix string, from, n int) []Page {
	out := make([]Page, 0, n)
	for i := from; i < from+n; i++ {
		out = append(out, Page{ID: fmt.Sprintf("%s-%d", prefix, i)})
	}
	return out
}

func TestClientQueryFollowsCursors(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/databases/db-1/query", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2022-06-28", r.Header.Get("Notion-Version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(100), body["page_size"])

		resp := queryResponse{}
		switch body["start_cursor"] {
		case nil:
			next := "c2"
			resp.Results = pagesNamed("p", 0, 100)
			resp.HasMore, resp.NextCursor = true, &next
		case "c2":
			resp.Results = pagesNamed("p", 100, 20)
		default:
			t.Errorf("unexpected cursor %v", body["start_cursor"])
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	pages, err := client.QueryDatabase(context.Background(), "db-1", nil)
	require.NoError(t, err)
	assert.Len(t, pages, 120)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "p-119", pages[119].ID)
}

func TestClientQueryHonoursLimit(t *testing.T) {
	var sizes []float64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		size := body["page_size"].(float64)
		sizes = append(sizes, size)

		next := "more"
		_ = json.NewEncoder(w).Encode(queryResponse{
			Results:    pagesNamed("p", len(sizes)*1000, int(size)),
			HasMore:    true,
			NextCursor: &next,
		})
	})

	pages, err := client.QueryDatabase(context.Background(), "db", &QueryRequest{Limit: 150})
	require.NoError(t, err)
	assert.Len(t, pages, 150)
	assert.Equal(t, []float64{100, 50}, sizes)
}

func TestClientQuerySendsFilterAndSorts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Filter *Filter `json:"filter"`
			Sorts  []Sort  `json:"sorts"`
			Limit  *int    `json:"Limit"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if !assert.NotNil(t, body.Filter) {
			return
		}
		assert.Equal(t, "캠페인", body.Filter.Property)
		assert.Equal(t, "camp-1", body.Filter.Relation.Contains)
		assert.Equal(t, []Sort{{Property: "날짜", Direction: Descending}}, body.Sorts)
		assert.Nil(t, body.Limit)
		_ = json.NewEncoder(w).Encode(queryResponse{})
	})

	_, err := client.QueryDatabase(context.Background(), "db", &QueryRequest{
		Filter: RelationContains("캠페인", "camp-1"),
		Sorts:  []Sort{SortBy("날짜", Descending)},
		Limit:  70,
	})
	require.NoError(t, err)
}

func TestClientDecodesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"object":"error","status":400,"code":"validation_error","message":"body failed validation"}`))
	})

	_, err := client.RetrievePage(context.Background(), "page-1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode())
	assert.Equal(t, "validation_error", apiErr.Code)
	assert.Equal(t, "body failed validation", err.Error())
}

func TestClientWrites(t *testing.T) {
	var got []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		got = append(got, r.Method+" "+r.URL.Path)

		switch {
		case r.Method == http.MethodPost:
			assert.Equal(t, map[string]any{"database_id": "db"}, body["parent"])
			props := body["properties"].(map[string]any)
			assert.Contains(t, props, "브랜드명")
		case body["archived"] != nil:
			assert.Equal(t, true, body["archived"])
		default:
			props := body["properties"].(map[string]any)
			email := props["이메일"].(map[string]any)
			v, present := email["email"]
			assert.True(t, present)
			assert.Nil(t, v)
		}
		_ = json.NewEncoder(w).Encode(Page{ID: "new-page"})
	})

	ctx := context.Background()
	p, err := client.CreatePage(ctx, "db", Properties{"브랜드명": TitleValue("웰웨이브")})
	require.NoError(t, err)
	assert.Equal(t, "new-page", p.ID)

	_, err = client.UpdatePage(ctx, "new-page", Properties{"이메일": EmailValueOf("")})
	require.NoError(t, err)

	require.NoError(t, client.ArchivePage(ctx, "new-page"))

	assert.Equal(t, []string{
		"POST /pages",
		"PATCH /pages/new-page",
		"PATCH /pages/new-page",
	}, got)
}

func TestClientRetrieveDatabase(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/databases/db-9", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"db-9","properties":{"상태":{"type":"status","status":{"options":[{"id":"s1","name":"진행중","color":"blue"}]}}}}`))
	})

	db, err := client.RetrieveDatabase(context.Background(), "db-9")
	require.NoError(t, err)
	assert.Equal(t, []Option{{ID: "s1", Name: "진행중", Color: "blue"}}, db.Options("상태"))
	assert.Empty(t, db.Options("missing"))
	assert.NotNil(t, db.Options("missing"))
}
