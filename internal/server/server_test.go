package server

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"users-api/internal/user"
)

func makeApp() *fiber.App {
	repo := user.NewInMemoryRepository(nil)
	handler := user.NewHandler(user.NewService(repo))
	return New(handler)
}

func TestHealthRoute(t *testing.T) {
	app := makeApp()

	res, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if string(body) != "Hello" {
		t.Fatalf("unexpected greeting %q", body)
	}
}

func TestInvalidRoute(t *testing.T) {
	app := makeApp()

	for _, req := range []struct{ method, path string }{
		{"PATCH", "/users/1"},
		{"GET", "/nope"},
		{"POST", "/users/1"},
	} {
		res, err := app.Test(httptest.NewRequest(req.method, req.path, nil))
		if err != nil {
			t.Fatalf("%s %s failed: %v", req.method, req.path, err)
		}
		if res.StatusCode != fiber.StatusNotFound {
			t.Fatalf("%s %s: expected 404, got %d", req.method, req.path, res.StatusCode)
		}

		raw, _ := io.ReadAll(res.Body)
		decoded := map[string]any{}
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("%s %s: decoding body %q: %v", req.method, req.path, raw, err)
		}
		if decoded["success"] != false || decoded["message"] != "Invalid route" {
			t.Fatalf("%s %s: unexpected envelope %v", req.method, req.path, decoded)
		}
		if decoded["path"] != req.path {
			t.Fatalf("%s %s: expected echoed path, got %v", req.method, req.path, decoded["path"])
		}
	}
}

func TestRegisteredRoutesMatchBeforeCatchAll(t *testing.T) {
	app := makeApp()

	// a specific route must not fall through to the catch-all
	res, err := app.Test(httptest.NewRequest("GET", "/users", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 from the list route, got %d", res.StatusCode)
	}
}
