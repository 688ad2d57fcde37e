package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type echoPayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"email"`
}

func validateRequest(t *testing.T, contentType, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "http://example.local/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	var dst echoPayload
	err := ValidateJSON(rec, req, &dst)
	return rec, err
}

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantErr     bool
		wantStatus  int
	}{
		{"valid", "application/json", `{"name":"Asha","email":"asha@example.com"}`, false, http.StatusOK},
		{"charset suffix accepted", "application/json; charset=utf-8", `{"name":"Asha"}`, false, http.StatusOK},
		{"wrong content type", "text/plain", `{"name":"Asha"}`, true, http.StatusUnsupportedMediaType},
		{"malformed body", "application/json", `{"name":`, true, http.StatusBadRequest},
		{"unknown field rejected", "application/json", `{"name":"Asha","admin":true}`, true, http.StatusBadRequest},
		{"validation failure", "application/json", `{"name":"Asha","email":"nope"}`, true, http.StatusBadRequest},
		{"missing required field", "application/json", `{"email":"asha@example.com"}`, true, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := validateRequest(t, tt.contentType, tt.body)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateJSON error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !tt.wantErr && rec.Code != http.StatusOK {
				t.Errorf("status = %d for valid payload, want untouched recorder (200)", rec.Code)
			}
		})
	}
}
