package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-case-tracker/internal/service"
)

func TestHealth_ReportsVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "release", version: "1.2.3", want: `{"success":true,"message":"Server is running","version":"1.2.3"}`},
		{name: "unset", version: "", want: `{"success":true,"message":"Server is running","version":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRESTHandler(t, &service.Services{AppInfoService: &mockAppInfoService{version: tt.version}}, nil)

			rec := httptest.NewRecorder()
			h.health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}
