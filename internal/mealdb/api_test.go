package mealdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/mealfinder/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{BaseURL: srv.URL + "/api/json/v1/1/search.php"})
	require.NoError(t, err)
	return c
}

func TestSearch_DecodesMeals(t *testing.T) {
	t.Parallel()

	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("s")
		assert.Equal(t, "/api/json/v1/1/search.php", r.URL.Path)
		_, _ = w.Write([]byte(`{"meals":[
			{"idMeal":"1","strMeal":"Chicken Curry","strMealThumb":"url1","strSource":"http://x","strYoutube":null},
			{"idMeal":"2","strMeal":"Chicken Soup","strMealThumb":"url2","strSource":"","strYoutube":"http://yt"}
		]}`))
	})

	meals, err := c.Search(context.Background(), "Chicken")
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "Chicken", gotQuery)
	assert.Equal(t, Text("Chicken Curry"), meals[0].Name)
	assert.Equal(t, Text("url1"), meals[0].Thumbnail)
	assert.Equal(t, Text("http://x"), meals[0].Source)
	assert.Equal(t, Text(""), meals[0].Youtube)
	assert.Equal(t, Text("http://yt"), meals[1].Youtube)
}

func TestSearch_NullMealsIsNil(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"meals":null}`))
	})

	meals, err := c.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Nil(t, meals)
}

func TestSearch_EmptyArrayIsNotNil(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"meals":[]}`))
	})

	meals, err := c.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.NotNil(t, meals)
	assert.Empty(t, meals)
}

func TestSearch_MalformedRecordsDoNotFailResponse(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"meals":[
			{"strMeal":"First"},
			42,
			null,
			{"strMeal":7,"strMealThumb":"thumb"},
			{"strMeal":"Last"}
		]}`))
	})

	meals, err := c.Search(context.Background(), "x")
	require.NoError(t, err)
	require.Len(t, meals, 5)
	assert.Equal(t, Text("First"), meals[0].Name)
	assert.Equal(t, Meal{}, meals[1])
	assert.Equal(t, Meal{}, meals[2])
	assert.Equal(t, Text(""), meals[3].Name)
	assert.Equal(t, Text("thumb"), meals[3].Thumbnail)
	assert.Equal(t, Text("Last"), meals[4].Name)
}

func TestSearch_EncodesTerm(t *testing.T) {
	t.Parallel()

	var rawQuery, decoded string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		decoded = r.URL.Query().Get("s")
		_, _ = w.Write([]byte(`{"meals":null}`))
	})

	_, err := c.Search(context.Background(), "mac & cheese #1")
	require.NoError(t, err)
	assert.Equal(t, "mac & cheese #1", decoded)
	assert.Equal(t, "s=mac+%26+cheese+%231", rawQuery)
}

func TestSearch_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})

	meals, err := c.Search(context.Background(), "x")
	assert.Nil(t, meals)
	var statusErr *apperrors.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestSearch_InvalidBody(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	_, err := c.Search(context.Background(), "x")
	var decodeErr *apperrors.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestSearch_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c, err := NewClient(Options{BaseURL: base + "/search.php"})
	require.NoError(t, err)

	_, err = c.Search(context.Background(), "x")
	var fetchErr *apperrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.URL, "s=x")
}

func TestSearch_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	c, err := NewClient(Options{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.Search(context.Background(), "x")
	var fetchErr *apperrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Options{})
	require.Error(t, err)
}

func TestSearchURL_KeepsExistingQuery(t *testing.T) {
	t.Parallel()

	c, err := NewClient(Options{BaseURL: "https://example.test/search.php?key=1"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/search.php?key=1&s=Beef", c.SearchURL("Beef"))
}
