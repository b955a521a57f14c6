package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-autonav/internal/config"
	"github.com/MKhiriev/go-autonav/internal/store"
	"github.com/MKhiriev/go-autonav/internal/utils"
	"github.com/MKhiriev/go-autonav/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListTags_AnyRole(t *testing.T) {
	m, router := newTestRouter(t, config.App{})
	m.expectPrincipal(testUser)
	m.tags.EXPECT().List(gomock.Any()).Return([]models.Tag{{ID: testTagID, Name: "forklift"}}, nil)

	rr := doRequest(router, http.MethodGet, "/tags/all", "", &testUser)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "forklift")
}

func TestCreateTag(t *testing.T) {
	m, router := newTestRouter(t, config.App{})
	m.expectPrincipal(testAdmin)
	m.tags.EXPECT().
		Create(gomock.Any(), models.TagRequest{Name: "forklift", Address: "aa:bb"}).
		Return(models.Tag{ID: testTagID, Name: "forklift", Address: "aa:bb"}, nil)

	rr := doRequest(router, http.MethodPost, "/tags", `{"name":"forklift","address":"aa:bb"}`, &testAdmin)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestAnchorPosition(t *testing.T) {
	m, router := newTestRouter(t, config.App{})
	m.expectPrincipal(testAdmin)
	m.anchors.EXPECT().
		UpdatePosition(gomock.Any(), testTagID, models.PositionRequest{PosX: 1.5, PosY: -2}).
		Return(models.Anchor{ID: testTagID, PosX: 1.5, PosY: -2}, nil)

	rr := doRequest(router, http.MethodPatch, "/anchors/"+testTagID+"/position", `{"pos_x":1.5,"pos_y":-2}`, &testAdmin)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetWaypoint_NotFound(t *testing.T) {
	m, router := newTestRouter(t, config.App{})
	m.expectPrincipal(testUser)
	m.waypoints.EXPECT().Get(gomock.Any(), testTagID).Return(models.Waypoint{}, store.ErrNotFound)

	rr := doRequest(router, http.MethodGet, "/waypoints/"+testTagID, "", &testUser)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ─────────────────────────────────────────────
// POST /position
// ─────────────────────────────────────────────

func TestReportPosition_Unsigned(t *testing.T) {
	m, router := newTestRouter(t, config.App{})
	now := time.Now().UTC()
	m.tags.EXPECT().
		ReportPosition(gomock.Any(), models.TagPositionReport{Address: "aa:bb", PosX: 3, PosY: 4}).
		Return(models.Tag{ID: testTagID, Address: "aa:bb", LastContact: &now}, nil)

	rr := doRequest(router, http.MethodPost, "/position", `{"address":"aa:bb","pos_x":3,"pos_y":4}`, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestReportPosition_UnknownAddress(t *testing.T) {
	m, router := newTestRouter(t, config.App{})
	m.tags.EXPECT().ReportPosition(gomock.Any(), gomock.Any()).Return(models.Tag{}, store.ErrNotFound)

	rr := doRequest(router, http.MethodPost, "/position", `{"address":"ff:ff","pos_x":0,"pos_y":0}`, nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestReportPosition_Signed(t *testing.T) {
	const key = "hardware-key"
	body := `{"address":"aa:bb","pos_x":3,"pos_y":4}`
	signer := utils.NewBodySigner([]byte(key))

	tests := []struct {
		name       string
		signature  string
		wantStatus int
		wantCall   bool
	}{
		{name: "valid signature", signature: signer.SignHex([]byte(body)), wantStatus: http.StatusOK, wantCall: true},
		{name: "missing signature", signature: "", wantStatus: http.StatusBadRequest},
		{name: "wrong key", signature: utils.NewBodySigner([]byte("other")).SignHex([]byte(body)), wantStatus: http.StatusBadRequest},
		{name: "not hex", signature: "xyz", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestRouter(t, config.App{PositionSignKey: key})
			if tt.wantCall {
				m.tags.EXPECT().ReportPosition(gomock.Any(), gomock.Any()).Return(models.Tag{ID: testTagID}, nil)
			}

			req := httptest.NewRequest(http.MethodPost, "/position", strings.NewReader(body))
			if tt.signature != "" {
				req.Header.Set(utils.SignatureHeader, tt.signature)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
