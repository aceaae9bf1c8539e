package routes

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/truethari/SocialMedia-API/app/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestServer(t *testing.T) *mux.Router {
	db := setupTestDB(t)
	cfg := &config.Config{
		Addr:      ":0",
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		LogLevel:  "info",
	}
	log, _ := logtest.NewNullLogger()
	return SetupRoutes(db, cfg, log)
}

// doJSON performs a request against the router. An empty token leaves the
// request unauthenticated.
func doJSON(router *mux.Router, method, path, token, body string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// signup creates an account and returns its ID.
func signup(t *testing.T, router *mux.Router, fName, email string) int {
	t.Helper()

	body := fmt.Sprintf(`{"fName":%q,"lName":"Tester","email":%q,"password":"secret123"}`, fName, email)
	w := doJSON(router, "POST", "/api/signup", "", body)
	require.Equal(t, 201, w.Code, w.Body.String())

	var created struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	return created.ID
}

// signin logs an account in and returns its token.
func signin(t *testing.T, router *mux.Router, email string) string {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":"secret123"}`, email)
	w := doJSON(router, "POST", "/api/signin", "", body)
	require.Equal(t, 200, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// createPost creates a post for the token holder and returns its ID.
func createPost(t *testing.T, router *mux.Router, token, title string) int {
	t.Helper()

	body := fmt.Sprintf(`{"title":%q,"body":"written in a test"}`, title)
	w := doJSON(router, "POST", "/api/posts", token, body)
	require.Equal(t, 201, w.Code, w.Body.String())

	var created struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	return created.ID
}
