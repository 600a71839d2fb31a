package httpclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAuthorization(t *testing.T) {
	rsp := &http.Response{Header: http.Header{}}
	rsp.Header.Set("www-authenticate",
		`Digest realm="default", nonce="AuBc1PiKNAENMTYxNz", opaque="00000000000000000000000000000000", algorithm=MD5, qop="auth"`)

	auth, err := getAuthorization("operator", "secret", rsp)
	require.NoError(t, err)
	assert.Equal(t, "operator", auth.Username)
	assert.Equal(t, "secret", auth.Password)
	assert.Equal(t, "default", auth.Realm)
	assert.Equal(t, "AuBc1PiKNAENMTYxNz", auth.NONCE)
	assert.Equal(t, "auth", auth.QOP)
	assert.Equal(t, "MD5", auth.Algorithm)
}

func TestGetAuthorizationMalformedHeader(t *testing.T) {
	rsp := &http.Response{Header: http.Header{}}
	rsp.Header.Set("www-authenticate", "Digest")
	_, err := getAuthorization("operator", "secret", rsp)
	assert.Error(t, err)
}

func TestGetAuthString(t *testing.T) {
	auth := &authenticationRealm{
		Username:  "operator",
		Password:  "secret",
		Realm:     "default",
		NONCE:     "abc",
		QOP:       "auth",
		Opaque:    "0000",
		Algorithm: "MD5",
	}
	header, err := getAuthString(auth, "/rest/v2/caches", "GET", 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(header, "Digest "))
	assert.Contains(t, header, `username="operator"`)
	assert.Contains(t, header, `realm="default"`)
	assert.Contains(t, header, `uri="/rest/v2/caches"`)
	assert.Contains(t, header, `qop="auth", nc=00000000`)
	assert.Contains(t, header, `opaque="0000"`)
	assert.Contains(t, header, `algorithm="MD5"`)
}

func TestDigestChallengeRetried(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.Header.Get("Authorization") == "" {
			w.Header().Set("WWW-Authenticate", `Digest realm="default", nonce="abc", qop="auth"`)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Digest "))
		fmt.Fprint(w, "ok")
	}))
	defer server.Close()

	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)

	client := New("operator", "secret", "http")
	rsp, err := client.Get(serverURL.Host+"/rest/v2/caches", nil)
	require.NoError(t, err)
	defer rsp.Body.Close()

	assert.Equal(t, http.StatusOK, rsp.StatusCode)
	assert.Equal(t, 2, requests)
}

func TestDigestRetryLeavesCallerHeadersUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.Header().Set("WWW-Authenticate", `Digest realm="default", nonce="abc", qop="auth"`)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, "ok")
	}))
	defer server.Close()

	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)

	headers := map[string]string{"Accept": "application/json"}
	client := New("operator", "secret", "http")
	rsp, err := client.Get(serverURL.Host+"/rest/v2/caches", headers)
	require.NoError(t, err)
	defer rsp.Body.Close()

	assert.Equal(t, map[string]string{"Accept": "application/json"}, headers)
}

func TestSessionClientKeepsCookie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("JSESSIONID"); err != nil {
			http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "abc123", Path: "/"})
		}
		fmt.Fprint(w, "1")
	}))
	defer server.Close()

	client, err := NewSession()
	require.NoError(t, err)

	_, err = client.Get(server.URL + "/serial")
	require.NoError(t, err)
	assert.Equal(t, "abc123", client.SessionID(server.URL))

	_, err = client.Get(server.URL + "/serial")
	require.NoError(t, err)
	assert.Equal(t, "abc123", client.SessionID(server.URL))
}
