package stub

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alclearn/admin-console/internal/model"
	"github.com/alclearn/admin-console/internal/validator"
)

func newTestServer(t *testing.T) (*httptest.Server, *State) {
	t.Helper()
	validator.Setup()
	state := NewState("test-secret", time.Hour)
	srv := httptest.NewServer(state.Router(nil, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv, state
}

func login(t *testing.T, srv *httptest.Server, email, password string) (model.LoginResponse, int) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := http.Post(srv.URL+"/users/login/", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out model.LoginResponse
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return out, resp.StatusCode
}

func authedGet(t *testing.T, srv *httptest.Server, token, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestLoginIssuesTokenPair(t *testing.T) {
	srv, _ := newTestServer(t)

	out, status := login(t, srv, AdminEmail, AdminPassword)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, out.User.IsStaff)
	assert.NotEmpty(t, out.Tokens.Access)
	assert.NotEmpty(t, out.Tokens.Refresh)
}

func TestLoginWrongPassword(t *testing.T) {
	srv, _ := newTestServer(t)

	_, status := login(t, srv, AdminEmail, "nope")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestProtectedRoutesRequireBearer(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/questions/books/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRejectNonStaff(t *testing.T) {
	srv, _ := newTestServer(t)

	out, status := login(t, srv, ReaderEmail, ReaderPass)
	require.Equal(t, http.StatusOK, status)
	require.False(t, out.User.IsStaff)

	resp := authedGet(t, srv, out.Tokens.Access, "/questions/books/")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestBundleServesBothMatchingShapes(t *testing.T) {
	srv, state := newTestServer(t)

	out, _ := login(t, srv, AdminEmail, AdminPassword)

	var bookID int64
	state.mu.Lock()
	for id := range state.books {
		bookID = id
	}
	state.mu.Unlock()

	resp := authedGet(t, srv, out.Tokens.Access, fmt.Sprintf("/questions/books/%d/questions/", bookID))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw struct {
		Questions struct {
			Matching []struct {
				Pairs json.RawMessage `json:"matching_pairs"`
			} `json:"matching"`
		} `json:"questions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	require.Len(t, raw.Questions.Matching, 2)

	// The first item goes out in the legacy column shape, the second flat.
	var columns []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw.Questions.Matching[0].Pairs, &columns))
	require.Len(t, columns, 2)
	assert.Contains(t, columns[0], "left_item")
	assert.Contains(t, columns[1], "right_item")

	var flat []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw.Questions.Matching[1].Pairs, &flat))
	require.Len(t, flat, 2)
	assert.Contains(t, flat[0], "match_key")

	// Both shapes still decode into the same pair model.
	var pairs model.PairList
	require.NoError(t, json.Unmarshal(raw.Questions.Matching[0].Pairs, &pairs))
	require.Len(t, pairs, 2)
	assert.Equal(t, "Dog", pairs[0].LeftItem)
}

func TestMatchingCreateValidatesPairsCount(t *testing.T) {
	srv, _ := newTestServer(t)
	out, _ := login(t, srv, AdminEmail, AdminPassword)

	payload := map[string]any{
		"book":       3,
		"difficulty": "easy",
		"text":       "Mismatch",
		"input_matching_pairs": []map[string]string{
			{"match_key": "A", "left_item": "x", "right_item": "y"},
			{"match_key": "B", "left_item": "p", "right_item": "q"},
		},
		"pairs_count": 5,
	}
	body, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/questions/matching-questions/", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+out.Tokens.Access)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTrueFalseRejectsBooleanAnswer(t *testing.T) {
	srv, _ := newTestServer(t)
	out, _ := login(t, srv, AdminEmail, AdminPassword)

	body := []byte(`{"book": 3, "difficulty": "easy", "text": "S", "is_true": true}`)
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/questions/truefalse-questions/", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+out.Tokens.Access)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestResetConfirmToken(t *testing.T) {
	srv, _ := newTestServer(t)

	post := func(token string) int {
		body := []byte(`{"new_password": "fresh-password"}`)
		resp, err := http.Post(
			srv.URL+"/users/reset-password-confirm/42/"+token+"/",
			"application/json", bytes.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusOK, post(ResetToken))
	assert.Equal(t, http.StatusBadRequest, post("wrong-token"))
}
