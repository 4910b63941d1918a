package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/AzizElBechir/AzPay/internal/auth"
	"github.com/AzizElBechir/AzPay/internal/domain"
	"github.com/AzizElBechir/AzPay/internal/middleware"
	"github.com/AzizElBechir/AzPay/internal/session"
	"github.com/AzizElBechir/AzPay/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// --- in-memory fakes for the store and session interfaces ---

type fakeUserStore struct {
	users  map[string]*domain.User
	nextID uint
}

func (f *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeTxStore struct {
	txs map[string]domain.Transaction
}

func (f *fakeTxStore) Create(_ context.Context, tx *domain.Transaction) error {
	f.txs[tx.ID] = *tx
	return nil
}

func (f *fakeTxStore) GetByID(_ context.Context, id string) (*domain.Transaction, error) {
	tx, ok := f.txs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &tx, nil
}

func (f *fakeTxStore) ListByUser(_ context.Context, userID uint) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, tx := range f.txs {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

type fakeSessionStore struct {
	sessions map[string]*session.Session
	nextID   int
}

func (f *fakeSessionStore) Create(_ context.Context, userID uint) (*session.Session, error) {
	f.nextID++
	sess := &session.Session{ID: "sess-" + strconv.Itoa(f.nextID), UserID: userID}
	f.sessions[sess.ID] = sess
	return sess, nil
}

func (f *fakeSessionStore) Get(_ context.Context, id string) (*session.Session, error) {
	sess, ok := f.sessions[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return sess, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

// --- test app wiring ---

type testApp struct {
	router   *gin.Engine
	users    *fakeUserStore
	txs      *fakeTxStore
	sessions *fakeSessionStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppSecure(t, false)
}

func newTestAppSecure(t *testing.T, secure bool) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &fakeUserStore{users: map[string]*domain.User{}}
	txs := &fakeTxStore{txs: map[string]domain.Transaction{}}
	sessions := &fakeSessionStore{sessions: map[string]*session.Session{}}
	authSvc := auth.NewService(users, auth.BcryptHasher{})

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	RegisterRoutes(r, authSvc, sessions, txs, testSecret, secure)

	return &testApp{router: r, users: users, txs: txs, sessions: sessions}
}

func (a *testApp) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	a.router.ServeHTTP(w, req)
	return w
}

// signup registers a fresh account and returns its session cookie
func (a *testApp) signup(t *testing.T, email, password, name string) *http.Cookie {
	t.Helper()
	w := a.postForm("/signup", url.Values{
		"email":    {email},
		"password": {password},
		"name":     {name},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	return sessionCookie(t, w)
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.CookieName && ck.Value != "" {
			return ck
		}
	}
	t.Fatal("session cookie not set")
	return nil
}
