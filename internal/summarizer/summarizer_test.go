package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"sentiment_dashboard/core/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply(t *testing.T) {
	reply := "Sure!\nPros:\n- Fast shipping\n-  Great support \n- \nnot a bullet\n\nCons:\n- Damaged boxes\n--Late refunds"
	got := ParseReply(reply)
	assert.Equal(t, []Item{{"Fast shipping", 1}, {"Great support", 1}}, got.Pros)
	assert.Equal(t, []Item{{"Damaged boxes", 1}, {"Late refunds", 1}}, got.Cons)
}

func TestParseReplyWithoutHeaders(t *testing.T) {
	got := ParseReply("- orphan line")
	assert.Empty(t, got.Pros)
	assert.Empty(t, got.Cons)
}

func TestBuildPromptSkipsEmptySummaries(t *testing.T) {
	p := BuildPrompt([]string{"good", "", "nice"}, []string{"bad"})
	assert.Contains(t, p, "top positive points:\ngood ; nice\n")
	assert.Contains(t, p, "top negative points:\nbad\n")
	assert.Contains(t, p, "Pros:\n- <pro1>")
}

func TestSummarizeDisabledWithoutKey(t *testing.T) {
	c := New(Settings{})
	_, err := c.Summarize(context.Background(), nil, nil)
	assert.True(t, errors.Is(err, common.ErrSummarizerDisabled))
}

func completionServer(t *testing.T, status int, content string, hits *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req["model"])
		assert.EqualValues(t, 200, req["max_tokens"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"upstream down","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "cmpl-1",
			"object":  "chat.completion",
			"choices": []map[string]interface{}{{"index": 0, "message": map[string]string{"role": "assistant", "content": content}}},
		})
	}))
}

func TestSummarizeAgainstCompatibleServer(t *testing.T) {
	var hits int32
	srv := completionServer(t, http.StatusOK, "Pros:\n- Quick\nCons:\n- Pricey", &hits)
	defer srv.Close()

	c := New(Settings{APIKey: "test", BaseURL: srv.URL + "/v1", Model: "gpt-4o", Temperature: 0.7, MaxTokens: 200})
	got, err := c.Summarize(context.Background(), []string{"quick delivery"}, []string{"too expensive"})
	require.NoError(t, err)
	assert.Equal(t, []Item{{"Quick", 1}}, got.Pros)
	assert.Equal(t, []Item{{"Pricey", 1}}, got.Cons)
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
}

func TestSummarizeFailureOpensBreaker(t *testing.T) {
	var hits int32
	srv := completionServer(t, http.StatusInternalServerError, "", &hits)
	defer srv.Close()

	c := New(Settings{APIKey: "test", BaseURL: srv.URL + "/v1"})
	for i := 0; i < 5; i++ {
		_, err := c.Summarize(context.Background(), []string{"a"}, []string{"b"})
		var appErr *common.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, common.StatusBadGateway, appErr.StatusCode)
	}
	// The breaker trips after three consecutive failures; later calls never reach the server.
	assert.LessOrEqual(t, atomic.LoadInt32(&hits), int32(3))
}
