package aiextract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ajauregui69/livo-backend/constants"
)

func modelServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":"quota"}`))
			return
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestExtractFieldsOK(t *testing.T) {
	content := `{"fields":{"monthly_income":"20000","employer_name":"Acme Corp"},"confidence":88,"analysis":"clean payroll slip","risk_level":"low"}`
	srv := modelServer(t, content, http.StatusOK)
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Timeout: 5 * time.Second}, nil)
	out, err := c.ExtractFields(context.Background(), constants.Payroll, "payroll text")
	require.NoError(t, err)

	assert.Equal(t, "ai", out.Source)
	assert.InDelta(t, 88.0, out.Confidence, 0.001)
	assert.False(t, out.NeedsReview)
	require.Len(t, out.Fields, 2)

	m := out.FieldMap()
	assert.Equal(t, "20000", m["monthly_income"])
	assert.Equal(t, "Acme Corp", m["employer_name"])
	for _, f := range out.Fields {
		assert.Equal(t, constants.MethodAI, f.Method)
		assert.InDelta(t, 88.0, f.Confidence, 0.001)
	}
	assert.Contains(t, out.Notes, "analysis: clean payroll slip")
}

func TestExtractFieldsReviewThreshold(t *testing.T) {
	// 74 is below the stricter AI threshold even though the rule engine
	// would accept it.
	content := `{"fields":{"monthly_income":"20000","employer_name":"Acme"},"confidence":74}`
	srv := modelServer(t, content, http.StatusOK)
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	out, err := c.ExtractFields(context.Background(), constants.Payroll, "payroll text")
	require.NoError(t, err)
	assert.True(t, out.NeedsReview)

	// A lowered configured threshold accepts the same response.
	c = NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, ReviewThreshold: 70}, nil)
	out, err = c.ExtractFields(context.Background(), constants.Payroll, "payroll text")
	require.NoError(t, err)
	assert.False(t, out.NeedsReview)
}

func TestExtractFieldsMinFieldShortfall(t *testing.T) {
	content := `{"fields":{"current_balance":"5000"},"confidence":90}`
	srv := modelServer(t, content, http.StatusOK)
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	out, err := c.ExtractFields(context.Background(), constants.BankStatement, "statement text")
	require.NoError(t, err)
	assert.True(t, out.NeedsReview)
}

func TestExtractFieldsMalformedResponse(t *testing.T) {
	// confidence above the schema maximum must fail validation
	content := `{"fields":{"a":"1"},"confidence":140}`
	srv := modelServer(t, content, http.StatusOK)
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	_, err := c.ExtractFields(context.Background(), constants.Payroll, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestExtractFieldsHTTPError(t *testing.T) {
	srv := modelServer(t, "", http.StatusTooManyRequests)
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	_, err := c.ExtractFields(context.Background(), constants.Payroll, "text")
	require.Error(t, err)
}

func TestAvailable(t *testing.T) {
	assert.True(t, NewClient(Config{APIKey: "k"}, nil).Available())
}
