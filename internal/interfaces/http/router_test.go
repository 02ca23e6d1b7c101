package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/crm-api/internal/application/usecase"
	"github.com/careconnect/crm-api/internal/domain/entity"
	apphttp "github.com/careconnect/crm-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de rutas — el router real con un repo de notificaciones stub
// ──────────────────────────────────────────────────────────────────────────────

type stubNotificationRepo struct {
	marked    []string
	markedAll bool
}

func (s *stubNotificationRepo) Create(*entity.Notification) error { return nil }

func (s *stubNotificationRepo) ListByUser(string) ([]*entity.Notification, error) {
	return nil, nil
}

func (s *stubNotificationRepo) MarkRead(id, userID string) (int64, error) {
	s.marked = append(s.marked, id)
	return 1, nil
}

func (s *stubNotificationRepo) MarkAllRead(string) error {
	s.markedAll = true
	return nil
}

func buildRouterApp(repo *stubNotificationRepo) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		NotificationUC: usecase.NewNotificationUseCase(repo),
		JWTSecret:      testJWTSecret,
	})
	return app
}

func doAuthorized(t *testing.T, app *fiber.App, method, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", tokenFor(t, testIdentity, testExpMin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// El front marca las notificaciones leídas con POST; el verbo está fijado aquí
// para que ningún cambio de router lo rompa en silencio.
func TestRouter_MarcarLeidaUsaPOST(t *testing.T) {
	repo := &stubNotificationRepo{}
	app := buildRouterApp(repo)

	resp := doAuthorized(t, app, http.MethodPost, "/api/notifications/n1/read")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"n1"}, repo.marked, "el id de la ruta llega al repo")
}

func TestRouter_MarcarTodasLeidasUsaPOST(t *testing.T) {
	repo := &stubNotificationRepo{}
	app := buildRouterApp(repo)

	resp := doAuthorized(t, app, http.MethodPost, "/api/notifications/read-all")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, repo.markedAll)
}

func TestRouter_MarcarLeidasConPUTNoExiste(t *testing.T) {
	app := buildRouterApp(&stubNotificationRepo{})

	for _, path := range []string{"/api/notifications/n1/read", "/api/notifications/read-all"} {
		resp := doAuthorized(t, app, http.MethodPut, path)
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode,
			"PUT %s no debe estar registrado", path)
	}
}

func TestRouter_NotificacionesSinTokenRetorna401(t *testing.T) {
	app := buildRouterApp(&stubNotificationRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/notifications/read-all", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
