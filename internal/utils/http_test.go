package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantStatus int
		wantBody   string
		wantErr    bool
	}{
		{
			name:       "case created",
			data:       map[string]any{"success": true, "data": map[string]string{"title": "Broken lock"}},
			status:     http.StatusCreated,
			wantStatus: http.StatusCreated,
			wantBody:   `{"data":{"title":"Broken lock"},"success":true}`,
		},
		{
			name:       "route not found",
			data:       map[string]any{"success": false, "message": "Route not found"},
			status:     http.StatusNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"Route not found","success":false}`,
		},
		{
			name:       "unencodable payload",
			data:       func() {},
			status:     http.StatusOK,
			wantStatus: http.StatusInternalServerError,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != len(tt.wantBody) {
				t.Errorf("wrote %d bytes, want %d", n, len(tt.wantBody))
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if got := w.Body.String(); got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
		})
	}
}

type credentialsBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func TestDecodeBody_JSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"a@b.c","password":"pw"}`))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")

	var got credentialsBody
	if err := DecodeBody(r, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Username != "a@b.c" || got.Password != "pw" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestDecodeBody_NoContentTypeIsJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"x"}`))

	var got credentialsBody
	if err := DecodeBody(r, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Username != "x" {
		t.Errorf("expected username x, got %q", got.Username)
	}
}

func TestDecodeBody_Form(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("username=a%40b.c&password=pw&password=ignored"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var got credentialsBody
	if err := DecodeBody(r, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Username != "a@b.c" || got.Password != "pw" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestDecodeBody_MalformedJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":`))
	r.Header.Set("Content-Type", "application/json")

	var got credentialsBody
	if err := DecodeBody(r, &got); err == nil {
		t.Fatal("expected error for malformed json")
	}
}

func TestDecodeBody_UnsupportedType(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("<xml/>"))
	r.Header.Set("Content-Type", "application/xml")

	var got credentialsBody
	err := DecodeBody(r, &got)
	if !errors.Is(err, ErrUnsupportedBody) {
		t.Fatalf("expected ErrUnsupportedBody, got %v", err)
	}
}
