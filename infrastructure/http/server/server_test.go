package server_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"party-lab/auth"
	"party-lab/balancer"
	"party-lab/domain"
	"party-lab/errors"
	httpserver "party-lab/infrastructure/http/server"
	"party-lab/mocks"
	"party-lab/services"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	handler    http.Handler
	issuer     *auth.TokenIssuer
	auth       *mocks.MockIAuthService
	characters *mocks.MockICharacterService
	parties    *mocks.MockIPartyService
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		issuer:     auth.NewTokenIssuer("an-unguessable-test-secret", time.Hour),
		auth:       mocks.NewMockIAuthService(ctrl),
		characters: mocks.NewMockICharacterService(ctrl),
		parties:    mocks.NewMockIPartyService(ctrl),
	}
	f.handler = httpserver.NewServer(f.auth, f.characters, f.parties, f.issuer, prometheus.NewRegistry(), slog.Default()).Handler()
	return f
}

func (f fixture) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, r)
	return w
}

func (f fixture) token(t *testing.T, role domain.Role) string {
	token, err := f.issuer.Issue(domain.Session{UserID: "u-1", Username: "gandalf", Role: role})
	require.NoError(t, err)
	return token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegister(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.auth.EXPECT().
		Register(gomock.Any(), auth.RegisterRequest{Username: "frodo", Password: "ringbearer", Role: "player"}).
		Return(domain.Session{Username: "frodo", Role: domain.RolePlayer}, nil)

	w := f.do(t, http.MethodPost, "/register", `{"username":"frodo","password":"ringbearer","role":"player"}`, "")

	req.Equal(http.StatusOK, w.Code)
	req.Equal("user registered", decode[map[string]string](t, w)["message"])
	req.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRegister_Duplicate(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(domain.Session{}, errors.ErrUserAlreadyExists)

	w := f.do(t, http.MethodPost, "/register", `{"username":"frodo","password":"ringbearer"}`, "")

	req.Equal(http.StatusBadRequest, w.Code)
	req.Equal(errors.ErrUserAlreadyExists.Error(), decode[map[string]string](t, w)["error"])
}

func TestLogin_SetsCookie(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.auth.EXPECT().
		Login(gomock.Any(), auth.LoginRequest{Username: "gandalf", Password: "youshallnotpass"}).
		Return(services.Token("signed"), domain.Session{Username: "gandalf", Role: domain.RoleDM}, nil)

	w := f.do(t, http.MethodPost, "/login", `{"username":"gandalf","password":"youshallnotpass"}`, "")

	req.Equal(http.StatusOK, w.Code)
	body := decode[map[string]string](t, w)
	req.Equal("gandalf", body["user"])
	req.Equal("dm", body["role"])
	req.Equal("signed", body["token"])

	cookies := w.Result().Cookies()
	req.Len(cookies, 1)
	req.Equal("session", cookies[0].Name)
	req.Equal("signed", cookies[0].Value)
	req.True(cookies[0].HttpOnly)
}

func TestLogin_WrongCredentials(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(services.Token(""), domain.Session{}, errors.ErrInvalidCredentials)

	w := f.do(t, http.MethodPost, "/login", `{"username":"gandalf","password":"nope"}`, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/logout", "", "")

	req.Equal(http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	req.Len(cookies, 1)
	req.Equal(-1, cookies[0].MaxAge)
}

func TestProfile_FromCookie(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	token := f.token(t, domain.RoleDM)

	// The session reaches the service through the request context
	f.auth.EXPECT().
		Profile(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (domain.Session, error) {
			session, ok := auth.SessionFromContext(ctx)
			req.True(ok)
			return session, nil
		})

	r := httptest.NewRequest(http.MethodGet, "/profile", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: token})
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	req.Equal(map[string]string{"user": "gandalf", "role": "dm"}, decode[map[string]string](t, w))
}

func TestProfile_Anonymous(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().Profile(gomock.Any()).Return(domain.Session{}, errors.ErrUnauthenticated)

	w := f.do(t, http.MethodGet, "/profile", "", "not-a-token")

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCharacters_CRUD(t *testing.T) {
	f := newFixture(t)
	token := f.token(t, domain.RoleDM)
	aragorn := domain.Character{ID: 1, Name: "Aragorn", Race: "Human", CharClass: "Ranger", Level: 10, Player: "viggo"}

	t.Run("list", func(t *testing.T) {
		req := require.New(t)
		f.characters.EXPECT().List(gomock.Any()).Return([]domain.Character{aragorn}, nil)

		w := f.do(t, http.MethodGet, "/characters", "", "")

		req.Equal(http.StatusOK, w.Code)
		req.Equal([]domain.Character{aragorn}, decode[[]domain.Character](t, w))
	})

	t.Run("create", func(t *testing.T) {
		req := require.New(t)
		f.characters.EXPECT().
			Create(gomock.Any(), services.CharacterInput{Name: "Aragorn", Race: "Human", CharClass: "Ranger", Level: 10, Player: "viggo"}).
			Return(aragorn, nil)

		w := f.do(t, http.MethodPost, "/characters",
			`{"name":"Aragorn","race":"Human","char_class":"Ranger","level":10,"player":"viggo"}`, token)

		req.Equal(http.StatusOK, w.Code)
		req.Equal(aragorn, decode[domain.Character](t, w))
	})

	t.Run("partial update", func(t *testing.T) {
		req := require.New(t)
		updated := aragorn
		updated.Level = 11
		f.characters.EXPECT().
			Update(gomock.Any(), domain.CharacterID(1), services.CharacterPatch{Level: lo.ToPtr(11)}).
			Return(updated, nil)

		w := f.do(t, http.MethodPut, "/characters/1", `{"level":11}`, token)

		req.Equal(http.StatusOK, w.Code)
		req.Equal(11, decode[domain.Character](t, w).Level)
	})

	t.Run("update of a missing character", func(t *testing.T) {
		f.characters.EXPECT().Update(gomock.Any(), domain.CharacterID(9), gomock.Any()).Return(domain.Character{}, errors.ErrCharacterNotFound)

		w := f.do(t, http.MethodPut, "/characters/9", `{"level":2}`, token)

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		w := f.do(t, http.MethodDelete, "/characters/abc", "", token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete forbidden for players", func(t *testing.T) {
		f.characters.EXPECT().Delete(gomock.Any(), domain.CharacterID(1)).Return(errors.ErrForbidden)

		w := f.do(t, http.MethodDelete, "/characters/1", "", f.token(t, domain.RolePlayer))

		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		f.characters.EXPECT().Delete(gomock.Any(), domain.CharacterID(1)).Return(nil)

		w := f.do(t, http.MethodDelete, "/characters/1", "", token)

		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGenerateParties(t *testing.T) {
	f := newFixture(t)
	token := f.token(t, domain.RoleDM)
	parties := []domain.Party{
		{{ID: 1, Name: "Aragorn", CharClass: "Ranger", Level: 10}},
		{{ID: 2, Name: "Gimli", CharClass: "Fighter", Level: 8}},
	}

	t.Run("legacy bare array", func(t *testing.T) {
		req := require.New(t)
		f.parties.EXPECT().
			Generate(gomock.Any(), services.GenerateRequest{IDs: []domain.CharacterID{1, 2}}).
			Return(balancer.Result{Parties: parties}, nil)

		w := f.do(t, http.MethodPost, "/generate-parties", ` [1, 2]`, token)

		req.Equal(http.StatusOK, w.Code)
		req.Equal(parties, decode[[]domain.Party](t, w))
	})

	t.Run("full request", func(t *testing.T) {
		req := require.New(t)
		f.parties.EXPECT().
			Generate(gomock.Any(), services.GenerateRequest{
				IDs:      []domain.CharacterID{1, 2},
				MinSize:  1,
				MaxSize:  2,
				Strategy: "random",
				Seed:     lo.ToPtr(uint64(7)),
			}).
			Return(balancer.Result{Parties: parties}, nil)

		w := f.do(t, http.MethodPost, "/generate-parties",
			`{"ids":[1,2],"min_size":1,"max_size":2,"strategy":"random","seed":7}`, token)

		req.Equal(http.StatusOK, w.Code)
	})

	t.Run("unknown ids", func(t *testing.T) {
		req := require.New(t)
		f.parties.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(balancer.Result{}, errors.NewUnknownEntityError(42))

		w := f.do(t, http.MethodPost, "/generate-parties", `[1, 42]`, token)

		req.Equal(http.StatusNotFound, w.Code)
		req.Equal("unknown entity: character ids [42]", decode[map[string]string](t, w)["error"])
	})

	t.Run("invalid bounds", func(t *testing.T) {
		f.parties.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(balancer.Result{}, errors.ErrInvalidConfiguration)

		w := f.do(t, http.MethodPost, "/generate-parties", `{"ids":[1],"min_size":5,"max_size":2}`, token)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/generate-parties", `[1, "two"]`, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("internal errors are hidden", func(t *testing.T) {
		req := require.New(t)
		f.parties.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(balancer.Result{}, stderrors.New("badger closed"))

		w := f.do(t, http.MethodPost, "/generate-parties", `[1]`, token)

		req.Equal(http.StatusInternalServerError, w.Code)
		req.Equal("internal error", decode[map[string]string](t, w)["error"])
	})
}

func TestPreflightAndHealth(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	w := f.do(t, http.MethodOptions, "/generate-parties", "", "")
	req.Equal(http.StatusNoContent, w.Code)
	req.Contains(w.Header().Get("Access-Control-Allow-Methods"), "DELETE")

	w = f.do(t, http.MethodGet, "/healthz", "", "")
	req.Equal(http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/metrics", "", "")
	req.Equal(http.StatusOK, w.Code)
}

func TestFrontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>party lab</h1>"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "image"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "image", "dragon.svg"), []byte("<svg/>"), 0o600))

	ctrl := gomock.NewController(t)
	characters := mocks.NewMockICharacterService(ctrl)
	handler := httpserver.NewServer(
		mocks.NewMockIAuthService(ctrl), characters, mocks.NewMockIPartyService(ctrl),
		auth.NewTokenIssuer("an-unguessable-test-secret", time.Hour), nil, slog.Default(),
	).WithFrontend(dir).Handler()

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	t.Run("should serve the index at the root", func(t *testing.T) {
		w := get("/")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "party lab")
	})

	t.Run("should serve nested assets", func(t *testing.T) {
		w := get("/image/dragon.svg")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "<svg/>", w.Body.String())
	})

	t.Run("should keep API routes ahead of static files", func(t *testing.T) {
		characters.EXPECT().List(gomock.Any()).Return([]domain.Character{}, nil)
		w := get("/characters")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("should answer 404 for missing files", func(t *testing.T) {
		require.Equal(t, http.StatusNotFound, get("/missing.js").Code)
	})
}

func TestFrontend_NotMountedByDefault(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/", "", "")

	require.Equal(t, http.StatusNotFound, w.Code)
}
