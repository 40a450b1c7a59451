package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subgrip/internal/domain"
)

func TestSubscriptionsDecodesAndAuthenticates(t *testing.T) {
	t.Parallel()

	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(SubscriptionsResponse{
			Subscriptions: []domain.Subscription{
				{ID: "s1", Name: "main", URL: "https://example.com/sub"},
				{ID: "s2", Name: "backup"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok123", time.Second)
	subs, err := c.Subscriptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, "/api/subscriptions", gotPath)
	require.Len(t, subs, 2)
	assert.Equal(t, "main", subs[0].Name)
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(NodesResponse{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.Nodes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestRefreshSubscriptionHitsPerIDPath(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/subscriptions/s1/refresh", r.URL.Path)
		json.NewEncoder(w).Encode(domain.Subscription{
			ID:     "s1",
			Status: domain.SubStatus{NodeCount: 42, Delta: 3},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	sub, err := c.RefreshSubscription(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 42, sub.Status.NodeCount)
	assert.Equal(t, 3, sub.Status.Delta)
}

func TestDeleteNodesSendsIDs(t *testing.T) {
	t.Parallel()

	var got struct {
		IDs []string `json:"ids"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	require.NoError(t, c.DeleteNodes(context.Background(), []string{"n1", "n2"}))
	assert.Equal(t, []string{"n1", "n2"}, got.IDs)
}

func TestMoveToProfileBody(t *testing.T) {
	t.Parallel()

	var got moveRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	err := c.MoveToProfile(context.Background(), domain.KindNode, []string{"n1"}, "work")
	require.NoError(t, err)

	assert.Equal(t, domain.KindNode, got.Kind)
	assert.Equal(t, "work", got.Profile)
}

func TestExportReturnsContent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ExportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, domain.KindSubscription, req.Kind)
		json.NewEncoder(w).Encode(ExportResponse{Content: "vmess://abc\nvless://def"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	content, err := c.Export(context.Background(), domain.KindSubscription, []string{"s1"}, "links")
	require.NoError(t, err)
	assert.Contains(t, content, "vmess://abc")
}

func TestErrorPayloadBecomesAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid subscription url"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.CreateSubscription(context.Background(), domain.Subscription{Name: "x"})
	require.Error(t, err)

	apiErr := AsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "invalid subscription url", apiErr.Message)
}

func TestErrorFallsBackToHTTPStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	err := c.CreateProfile(context.Background(), "work")
	require.Error(t, err)

	apiErr := AsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "500")
}

func TestCanceledContextAborts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ProfilesResponse{})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, "", time.Second)
	_, err := c.Profiles(ctx)
	assert.Error(t, err)
}
