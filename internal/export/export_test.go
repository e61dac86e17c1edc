package export

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/sahilparmar-7/ams/internal/store"
)

// stubFetcher serves canned documents, matching string filter values the way
// the real store would.
type stubFetcher struct {
	data map[string][]store.Document
}

func (s *stubFetcher) Fetch(ctx context.Context, collection string, filter bson.M) ([]store.Document, error) {
	var out []store.Document
	for _, doc := range s.data[collection] {
		match := true
		for k, v := range filter {
			want, _ := v.(string)
			if doc.Str(k) != want {
				match = false
				break
			}
		}
		if match {
			out = append(out, store.Normalize(doc))
		}
	}
	return out, nil
}

func testFetcher() *stubFetcher {
	return &stubFetcher{data: map[string][]store.Document{
		store.Users: {
			{"id": "c1", "name": "Asha Rao", "email": "asha@example.com", "role": "coach", "status": "active", "academyId": "A1"},
			{"id": "c2", "name": "Vikram Iyer", "email": "vikram@example.com", "role": "coach", "status": "active", "academyId": "A1"},
			{"id": "u9", "name": "Owner", "email": "owner@example.com", "role": "owner", "status": "active", "academyId": "A1"},
		},
		store.PlayerData: {
			{"id": "p1", "name": "Rohan Mehta", "position": "Striker", "age": 14, "academyId": "A1",
				"attributes": map[string]any{"Attack": 8.0, "pace": 6.0, "Defense": 7.0, "passing": 5.0}},
			{"id": "p2", "name": "Kabir Shah", "position": "Keeper", "age": 13, "academyId": "A1"},
			{"id": "p3", "name": "Dev Patel", "position": "Midfield", "age": 15, "academyId": "A1"},
		},
		store.Batches: {
			{"id": "b1", "name": "U-14 Morning", "academyId": "A1",
				"coachIds": []any{"c1", "c2"}, "players": []any{"p1", "p2", "p3"}, "createdBy": "c1"},
		},
		store.Sessions: {
			{"id": "s1", "name": "Evening Drills", "academyId": "A1", "date": "2026-01-05",
				"startTime": "17:00", "endTime": "18:30", "assignedBatch": "b1",
				"assignedPlayers": []any{"p1", "p2"}, "status": "upcoming", "isRecurring": false},
		},
		store.Finance: {
			{"transactionId": "TXN-abc", "description": "Monthly fees, term 1", "amount": 5000.0,
				"quantity": 1, "type": "income", "date": "2026-01-01", "status": "active", "academyId": "A1"},
		},
	}}
}

func exportRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	controller := NewExportController(testFetcher(), zap.NewNop())

	r := gin.New()
	r.GET("/api/db/export", controller.Export)
	r.GET("/api/db/export/sessions-csv", controller.SessionsCSV)
	r.GET("/api/db/export/csv", controller.CollectionCSV)
	r.GET("/api/db/export/xlsx", controller.Workbook)
	return r
}

func TestExportWebViewEnvelope(t *testing.T) {
	r := exportRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/db/export?academyId=A1&collection=players", nil)
	req.Header.Set("X-Requested-With", "com.example.amswrapper")
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var env struct {
		ApkExport     bool   `json:"apkExport"`
		Filename      string `json:"filename"`
		Mime          string `json:"mime"`
		ContentBase64 string `json:"contentBase64"`
		OriginalSize  int    `json:"originalSize"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !env.ApkExport {
		t.Error("apkExport = false, want true")
	}
	if env.Mime != "application/json" {
		t.Errorf("mime = %q, want application/json", env.Mime)
	}
	decoded, err := base64.StdEncoding.DecodeString(env.ContentBase64)
	if err != nil {
		t.Fatalf("contentBase64 is not valid base64: %v", err)
	}
	if len(decoded) != env.OriginalSize {
		t.Errorf("decoded length = %d, originalSize = %d", len(decoded), env.OriginalSize)
	}
	var payload map[string][]map[string]any
	if err := json.Unmarshal(decoded, &payload); err != nil {
		t.Fatalf("decoded content is not JSON: %v", err)
	}
	if len(payload["players"]) != 3 {
		t.Errorf("players in payload = %d, want 3", len(payload["players"]))
	}
}

func TestExportWebViewNavigationHTML(t *testing.T) {
	r := exportRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/db/export?academyId=A1&collection=coaches", nil)
	req.Header.Set("X-Requested-With", "com.example.amswrapper")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	body := w.Body.String()
	start := strings.Index(body, `id="export-data">`)
	end := strings.Index(body, "</textarea>")
	if start < 0 || end < 0 {
		t.Fatal("response has no export textarea")
	}
	encoded := body[start+len(`id="export-data">`) : end]
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("textarea content is not valid base64: %v", err)
	}
	if !json.Valid(decoded) {
		t.Error("decoded textarea content is not JSON")
	}
}

func TestExportPlainJSONAttachment(t *testing.T) {
	r := exportRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/db/export?academyId=A1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q, want attachment", cd)
	}
	var payload map[string][]map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	for _, name := range exportOrder {
		if _, ok := payload[name]; !ok {
			t.Errorf("all-export payload missing %q", name)
		}
	}
}

func TestExportRejectsUnknownCollection(t *testing.T) {
	r := exportRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/db/export?academyId=A1&collection=nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSessionsCSVSchema(t *testing.T) {
	now := time.Date(2026, 1, 5, 17, 30, 0, 0, time.UTC)
	doc, err := buildSessionsCSV(context.Background(), testFetcher(), "A1", now)
	if err != nil {
		t.Fatalf("buildSessionsCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(doc, "\n"), "\n")
	wantHeader := "Session ID,Session Name,Is Recurring,Parent Session ID,Occurrence Date,Date,Start Time,End Time,Duration,Status,Days,Assigned Batch ID,Assigned Batch Name,Assigned Players IDs,Assigned Players Names,Assigned Coaches IDs,Assigned Coaches Names,Academy ID,Notes"
	if lines[0] != wantHeader {
		t.Errorf("header = %q\nwant %q", lines[0], wantHeader)
	}
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}

	cells := strings.Split(lines[1], ",")
	if len(cells) != 19 {
		t.Fatalf("data row has %d cells, want 19", len(cells))
	}
	if cells[8] != "90" {
		t.Errorf("Duration = %q, want 90", cells[8])
	}
	// 17:30 sits inside the 17:00-18:30 window.
	if cells[9] != "ongoing" {
		t.Errorf("Status = %q, want ongoing", cells[9])
	}
	if cells[12] != "U-14 Morning" {
		t.Errorf("Assigned Batch Name = %q, want U-14 Morning", cells[12])
	}
	if cells[13] != "p1;p2" {
		t.Errorf("Assigned Players IDs = %q, want p1;p2", cells[13])
	}
	if cells[14] != "Rohan Mehta;Kabir Shah" {
		t.Errorf("Assigned Players Names = %q", cells[14])
	}
	if cells[16] != "Asha Rao;Vikram Iyer" {
		t.Errorf("Assigned Coaches Names = %q", cells[16])
	}
}

func TestBatchReportLayout(t *testing.T) {
	doc, err := buildBatchReport(context.Background(), testFetcher(), "A1")
	if err != nil {
		t.Fatalf("buildBatchReport: %v", err)
	}

	lines := strings.Split(doc, "\n")
	want := []string{
		"Batch:,U-14 Morning",
		"Coach ID,Coach Name,Email",
		"c1,Asha Rao,asha@example.com",
		"c2,Vikram Iyer,vikram@example.com",
		"Player ID,Player Name,Position",
		"p1,Rohan Mehta,Striker",
		"p2,Kabir Shah,Keeper",
		"p3,Dev Patel,Midfield",
		"", "", "", // three blank separator lines
		"", // trailing newline
	}
	if len(lines) != len(want) {
		t.Fatalf("line count = %d, want %d\n%q", len(lines), len(want), doc)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestCollectionCSVCoachHeaders(t *testing.T) {
	r := exportRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/db/export/csv?academyId=A1&collection=coaches", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	lines := strings.Split(w.Body.String(), "\n")
	if lines[0] != "id,name,email,status,academyId" {
		t.Errorf("coach header = %q", lines[0])
	}
	// Two coaches, not the owner.
	if got := len(lines) - 2; got != 2 {
		t.Errorf("coach rows = %d, want 2", got)
	}
}

func TestCollectionCSVEscapesFields(t *testing.T) {
	r := exportRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/db/export/csv?academyId=A1&collection=finances", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"Monthly fees, term 1"`) {
		t.Errorf("comma-bearing description not quoted:\n%s", w.Body.String())
	}
}

func TestExportAcademyScopeMismatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	controller := NewExportController(testFetcher(), zap.NewNop())

	r := gin.New()
	r.GET("/api/db/export", func(c *gin.Context) {
		c.Set("auth_academy_id", "A2")
		controller.Export(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/db/export?academyId=A1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestWorkbookContainsAllSheets(t *testing.T) {
	r := exportRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/db/export/xlsx?academyId=A1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("Content-Type = %q", ct)
	}
	// XLSX files are zip archives.
	if body := w.Body.Bytes(); len(body) < 4 || string(body[:2]) != "PK" {
		t.Error("response body is not a zip archive")
	}
}
