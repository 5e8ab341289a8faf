package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func registerAndExtractAuthCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := jsonRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":        email,
		"password":     password,
		"display_name": "Test User",
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == "steady_auth" && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in register response")
	return ""
}

func jsonRequest(t *testing.T, app *fiber.App, method string, path string, authCookie string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload for %s %s: %v", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()

	defer response.Body.Close()
	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func expectStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()

	if response.StatusCode != expected {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d (body: %s)", expected, response.StatusCode, body)
	}
}
