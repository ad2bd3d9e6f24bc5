package cli

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/mchmarny/gunghap/pkg/config"
	"github.com/mchmarny/gunghap/pkg/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, normalize bool) *httptest.Server {
	t.Helper()
	c := config.Default()
	c.Normalize = normalize
	s := httptest.NewServer(makeRouter(&appConfig{Config: c}))
	t.Cleanup(s.Close)
	return s
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, false)

	resp, err := http.Get(s.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMatchAPI_Query(t *testing.T) {
	s := newTestServer(t, false)

	q := url.Values{"a": {"장하은"}, "b": {"김운학"}, "letters": {"true"}}
	resp, err := http.Get(s.URL + "/api/match?" + q.Encode())
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	res := decodeBody[match.Result](t, resp)
	want, err := match.Compute("장하은", "김운학")
	require.NoError(t, err)
	assert.Equal(t, want.Score, res.Score)
	assert.Equal(t, want.Trace, res.Trace)
	assert.Len(t, res.Letters, 6)
}

func TestMatchAPI_Body(t *testing.T) {
	s := newTestServer(t, false)

	resp, err := http.Post(s.URL+"/api/match", "application/json", strings.NewReader(`{"a": "가", "b": "나"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	res := decodeBody[match.Result](t, resp)
	assert.Equal(t, "가나", res.Merged)
	assert.Equal(t, 8, res.Score)
	assert.Empty(t, res.Letters)
}

func TestMatchAPI_Insufficient(t *testing.T) {
	s := newTestServer(t, false)

	resp, err := http.Post(s.URL+"/api/match", "application/json", strings.NewReader(`{"a": " ", "b": "가"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, match.ErrInsufficientInput.Error(), body["error"])
}

func TestMatchAPI_BadJSON(t *testing.T) {
	s := newTestServer(t, false)

	resp, err := http.Post(s.URL+"/api/match", "application/json", strings.NewReader(`{"a": `))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.NotEmpty(t, body["error"])
}

func TestMatchAPI_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t, false)

	req, err := http.NewRequest(http.MethodDelete, s.URL+"/api/match", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestStrokesAPI(t *testing.T) {
	s := newTestServer(t, true)

	q := url.Values{"text": {"가b"}}
	resp, err := http.Get(s.URL + "/api/strokes?" + q.Encode())
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decodeBody[[]*match.Letter](t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, "가", list[0].Char)
	assert.Equal(t, 4, list[0].Strokes)
	assert.Equal(t, "b", list[1].Char)
}

func TestServer_PortInUse(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	port := l.Addr().(*net.TCPAddr).Port
	_, err = runApp(t, "server", "--port", strconv.Itoa(port))
	assert.Error(t, err)
}
