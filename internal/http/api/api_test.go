package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/habittrack/habittrack/internal/db"
	"github.com/habittrack/habittrack/internal/store"
)

const testDemoUserID = "demo-user-1"

// newTestAPI builds a gin engine over a fresh in-memory database with the
// demo data seeded.
func newTestAPI(t *testing.T) (*gin.Engine, *store.GormStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, errOpen := db.Open(dsn)
	if errOpen != nil {
		t.Fatalf("open database: %v", errOpen)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}
	if errSeed := db.EnsureDemoData(conn, testDemoUserID); errSeed != nil {
		t.Fatalf("seed: %v", errSeed)
	}

	st := store.NewGormStore(conn)
	engine := gin.New()
	RegisterRoutes(engine, st, testDemoUserID)
	return engine, st
}

// doRequest issues a request against the engine and decodes the JSON body
// into out when non-nil.
func doRequest(t *testing.T, engine *gin.Engine, method, path string, body any, out any) int {
	t.Helper()

	var payload []byte
	if body != nil {
		var errMarshal error
		payload, errMarshal = json.Marshal(body)
		if errMarshal != nil {
			t.Fatalf("marshal body: %v", errMarshal)
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if out != nil {
		if errDecode := json.Unmarshal(rec.Body.Bytes(), out); errDecode != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), errDecode)
		}
	}
	return rec.Code
}

func TestHealthz(t *testing.T) {
	engine, _ := newTestAPI(t)

	var body map[string]string
	code := doRequest(t, engine, http.MethodGet, "/healthz", nil, &body)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestIdentityHeader(t *testing.T) {
	engine, st := newTestAPI(t)

	other, errUser := st.CreateUser(context.Background(), store.CreateUserParams{
		Username: "alex", Name: "Alex",
	})
	if errUser != nil {
		t.Fatalf("create user: %v", errUser)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("X-User-Id", other.ID)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if errDecode := json.Unmarshal(rec.Body.Bytes(), &body); errDecode != nil {
		t.Fatalf("decode: %v", errDecode)
	}
	if body["username"] != "alex" {
		t.Fatalf("expected alex, got %v", body["username"])
	}
}
