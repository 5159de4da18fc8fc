package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"roadtrip/internal/auth"
	"roadtrip/internal/store"
)

type testEnv struct {
	router      *gin.Engine
	users       *store.MemoryUserStore
	regulations *store.MemoryRegulationStore
	plans       *store.MemoryRoutePlanStore
	tokens      *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:       store.NewMemoryUserStore(),
		regulations: store.NewMemoryRegulationStore(),
		plans:       store.NewMemoryRoutePlanStore(),
		tokens:      auth.NewTokenService("test-secret", 30*time.Minute, 30*time.Minute),
	}
	env.router = gin.New()
	Routes(env.router, env.users, env.regulations, env.plans, env.tokens)
	return env
}

func (env *testEnv) do(t *testing.T, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body failed: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) register(t *testing.T, email, password, fullName string) auth.TokenPair {
	t.Helper()

	w := env.do(t, "POST", "/register", "", gin.H{
		"email":     email,
		"password":  password,
		"full_name": fullName,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register failed: %d (%s)", w.Code, w.Body.String())
	}

	var pair auth.TokenPair
	if err := json.Unmarshal(w.Body.Bytes(), &pair); err != nil {
		t.Fatalf("decode register response failed: %v", err)
	}
	return pair
}

func subjectOf(t *testing.T, tokens *auth.TokenService, token string) string {
	t.Helper()
	claims, err := tokens.Decode(token)
	if err != nil {
		t.Fatalf("decode token failed: %v", err)
	}
	return auth.UserID(claims)
}

func TestRegisterThenLoginSameSubject(t *testing.T) {
	env := newTestEnv(t)

	registered := env.register(t, "a@x.com", "pw1", "A")

	w := env.do(t, "POST", "/login", "", gin.H{"email": "a@x.com", "password": "pw1"})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d (%s)", w.Code, w.Body.String())
	}
	var loggedIn auth.TokenPair
	if err := json.Unmarshal(w.Body.Bytes(), &loggedIn); err != nil {
		t.Fatalf("decode login response failed: %v", err)
	}

	regSub := subjectOf(t, env.tokens, registered.AccessToken)
	loginSub := subjectOf(t, env.tokens, loggedIn.AccessToken)
	if regSub == "" || regSub != loginSub {
		t.Fatalf("expected consistent subject, got %q vs %q", regSub, loginSub)
	}
	if registered.AccessToken == loggedIn.AccessToken {
		t.Fatal("expected a fresh access token on login")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@x.com", "pw1", "A")

	w := env.do(t, "POST", "/register", "", gin.H{
		"email":     "a@x.com",
		"password":  "other",
		"full_name": "B",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", w.Code)
	}

	users, err := env.users.All(context.Background())
	if err != nil {
		t.Fatalf("listing users failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected a single account, got %d", len(users))
	}
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/register", "", gin.H{
		"email":     "not-an-email",
		"password":  "pw1",
		"full_name": "A",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed email, got %d", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@x.com", "pw1", "A")

	w := env.do(t, "POST", "/login", "", gin.H{"email": "a@x.com", "password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}

	// Unknown email yields the same status and message, no enumeration.
	w2 := env.do(t, "POST", "/login", "", gin.H{"email": "b@x.com", "password": "pw1"})
	if w2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", w2.Code)
	}
	if w.Body.String() != w2.Body.String() {
		t.Fatalf("expected identical error bodies, got %s vs %s", w.Body.String(), w2.Body.String())
	}
}

func TestRefreshEchoesSameRefreshToken(t *testing.T) {
	env := newTestEnv(t)
	pair := env.register(t, "a@x.com", "pw1", "A")

	w := env.do(t, "POST", "/refresh", "", gin.H{"refresh_token": pair.RefreshToken})
	if w.Code != http.StatusOK {
		t.Fatalf("refresh failed: %d (%s)", w.Code, w.Body.String())
	}

	var refreshed auth.TokenPair
	if err := json.Unmarshal(w.Body.Bytes(), &refreshed); err != nil {
		t.Fatalf("decode refresh response failed: %v", err)
	}
	if refreshed.RefreshToken != pair.RefreshToken {
		t.Fatal("expected the same refresh token to be echoed back")
	}
	if subjectOf(t, env.tokens, refreshed.AccessToken) != subjectOf(t, env.tokens, pair.AccessToken) {
		t.Fatal("expected refreshed access token to keep the subject")
	}
}

func TestRefreshRejectsInvalidToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/refresh", "", gin.H{"refresh_token": "garbage"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid refresh token, got %d", w.Code)
	}

	// Well-signed token whose user_id claim is empty.
	empty, err := env.tokens.IssueRefreshToken("")
	if err != nil {
		t.Fatalf("IssueRefreshToken returned error: %v", err)
	}
	w = env.do(t, "POST", "/refresh", "", gin.H{"refresh_token": empty})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing user_id claim, got %d", w.Code)
	}
}

func TestMyUser(t *testing.T) {
	env := newTestEnv(t)
	pair := env.register(t, "a@x.com", "pw1", "Alice")

	w := env.do(t, "GET", "/my_user", pair.AccessToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("my_user failed: %d (%s)", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode my_user response failed: %v", err)
	}
	if body["email"] != "a@x.com" || body["full_name"] != "Alice" || body["role"] != "USER" {
		t.Fatalf("unexpected projection: %v", body)
	}
	if _, leaked := body["hashed_password"]; leaked {
		t.Fatal("hashed password must never be serialized")
	}

	w = env.do(t, "GET", "/my_user", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestReadUserByID(t *testing.T) {
	env := newTestEnv(t)
	pair := env.register(t, "a@x.com", "pw1", "Alice")
	userID := subjectOf(t, env.tokens, pair.AccessToken)

	w := env.do(t, "GET", "/read_user/"+userID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("read_user failed: %d (%s)", w.Code, w.Body.String())
	}

	w = env.do(t, "GET", "/read_user/not-a-hex-id", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id format, got %d", w.Code)
	}

	w = env.do(t, "GET", "/read_user/bbbbbbbbbbbbbbbbbbbbbbbb", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", w.Code)
	}
}

func TestAllUsersRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	pair := env.register(t, "a@x.com", "pw1", "Alice")

	w := env.do(t, "GET", "/all_users", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	w = env.do(t, "GET", "/all_users", pair.AccessToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for USER role, got %d", w.Code)
	}
}
