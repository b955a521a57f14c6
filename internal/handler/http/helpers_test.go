package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-autonav/internal/config"
	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/mock"
	"github.com/MKhiriev/go-autonav/internal/service"
	"github.com/MKhiriev/go-autonav/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

const (
	testAdminID = "0195f0a4-0000-7000-8000-0000000000a1"
	testUserID  = "0195f0a4-0000-7000-8000-0000000000b2"
	testTagID   = "0195f0a4-0000-7000-8000-0000000000c3"
)

var (
	testAdmin = models.NewPrincipal(models.User{ID: testAdminID, Username: "root", Role: models.RoleAdministrator})
	testUser  = models.NewPrincipal(models.User{ID: testUserID, Username: "alice", Role: models.RoleStandard})
)

// testServices bundles the gomock doubles behind a *service.Services.
type testServices struct {
	auth      *mock.MockAuthService
	guard     *mock.MockGuardService
	users     *mock.MockUserService
	tags      *mock.MockTagService
	anchors   *mock.MockAnchorService
	waypoints *mock.MockWaypointService
	appInfo   *mock.MockAppInfoService
}

func newTestServices(t *testing.T) (*testServices, *service.Services) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &testServices{
		auth:      mock.NewMockAuthService(ctrl),
		guard:     mock.NewMockGuardService(ctrl),
		users:     mock.NewMockUserService(ctrl),
		tags:      mock.NewMockTagService(ctrl),
		anchors:   mock.NewMockAnchorService(ctrl),
		waypoints: mock.NewMockWaypointService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}

	return m, &service.Services{
		AuthService:     m.auth,
		GuardService:    m.guard,
		UserService:     m.users,
		TagService:      m.tags,
		AnchorService:   m.anchors,
		WaypointService: m.waypoints,
		AppInfoService:  m.appInfo,
	}
}

func newTestRouter(t *testing.T, cfg config.App) (*testServices, *chi.Mux) {
	t.Helper()

	m, services := newTestServices(t)
	return m, NewHandler(services, cfg, logger.Nop()).Init()
}

// expectPrincipal makes the guard resolve "tok-<username>" to principal and
// lets the real role rule decide the gate.
func (m *testServices) expectPrincipal(principal models.Principal) {
	m.guard.EXPECT().
		Authenticate(gomock.Any(), "tok-"+principal.Username).
		Return(principal, nil).
		AnyTimes()
	m.guard.EXPECT().
		RequireRole(principal, gomock.Any()).
		DoAndReturn(func(p models.Principal, role models.Role) error {
			if !p.HasRole(role) {
				return service.ErrForbidden
			}
			return nil
		}).
		AnyTimes()
}

func doRequest(router http.Handler, method, target, body string, principal *models.Principal) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if principal != nil {
		req.Header.Set("Authorization", "Bearer tok-"+principal.Username)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
