package hackernews_api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v0/item/1.json":
			_, _ = w.Write([]byte(`{"id":1,"type":"story","kids":[2,3],"descendants":2,"title":"Show HN"}`))
		case "/v0/item/2.json":
			_, _ = w.Write([]byte(`null`))
		case "/v0/item/3.json":
			_, _ = w.Write([]byte(`[1,2]`))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	client := NewClientWithHTTP(srv.URL+"/v0/", srv.Client(), nil)

	t.Run("decodes an item", func(t *testing.T) {
		item, err := client.GetItem(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, []int64{2, 3}, item.Kids)
		require.NotNil(t, item.Descendants)
		assert.Equal(t, 2, *item.Descendants)
	})

	t.Run("null body is a missing item", func(t *testing.T) {
		item, err := client.GetItem(context.Background(), 2)
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("non-object body is rejected", func(t *testing.T) {
		_, err := client.GetItem(context.Background(), 3)
		assert.ErrorIs(t, err, ErrNotObject)
	})

	t.Run("non-2xx surfaces the status", func(t *testing.T) {
		_, err := client.GetItem(context.Background(), 4)
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.HTTPStatus())
	})
}

func TestClient_ItemURL(t *testing.T) {
	client := NewClientWithHTTP("https://hacker-news.firebaseio.com/v0/", http.DefaultClient, nil)
	assert.Equal(t, "https://hacker-news.firebaseio.com/v0/item/42.json", client.ItemURL(42))
}
