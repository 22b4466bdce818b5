package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"jadwal/internal/analyzer"
	"jadwal/internal/importer"
	"jadwal/internal/model"
	"jadwal/internal/store"
)

type stubAnalyzer struct{}

func (stubAnalyzer) Analyze(ctx context.Context, schedule *model.TraineeSchedule) *analyzer.Analysis {
	return &analyzer.Analysis{Summary: "ok", Tips: []string{}, HardestDay: schedule.TraineeID}
}

const testPassword = "secret"

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("store.New failed: %v", err)
	}

	handler := NewHandler(s, importer.NewCoordinator(s, nil), nil, stubAnalyzer{}, testPassword)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))
	return router, s
}

func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()

	body, _ := json.Marshal(gin.H{"password": testPassword})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d", w.Code)
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("login response: %v", err)
	}
	return resp.Token
}

func rosterUpload(t *testing.T, rows [][]interface{}, deptType string) (*bytes.Buffer, string) {
	t.Helper()

	wb := excelize.NewFile()
	defer wb.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}
		if err := wb.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	var form bytes.Buffer
	writer := multipart.NewWriter(&form)
	part, err := writer.CreateFormFile("file", "roster.xlsx")
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := part.Write(buf.Bytes()); err != nil {
		t.Fatalf("form write failed: %v", err)
	}
	if err := writer.WriteField("deptType", deptType); err != nil {
		t.Fatalf("WriteField failed: %v", err)
	}
	writer.Close()

	return &form, writer.FormDataContentType()
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(gin.H{"password": "wrong"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestUpload_RequiresAdminToken(t *testing.T) {
	router, _ := newTestRouter(t)

	form, contentType := rosterUpload(t, [][]interface{}{{"traineeId"}, {"1"}}, "ENGINES")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", form)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestUpload_EndToEnd(t *testing.T) {
	router, s := newTestRouter(t)
	token := adminToken(t, router)

	form, contentType := rosterUpload(t, [][]interface{}{
		{"traineeId", "name", "day", "course"},
		{"900", "X", "Monday", "MATH101"},
	}, "ENGINES")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", form)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool            `json:"success"`
		Count   int             `json:"count"`
		Data    *model.Database `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response: %v", err)
	}
	if !resp.Success || resp.Count != 1 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Data.Stats.EnginesCount != 1 {
		t.Fatalf("EnginesCount = %d, want 1", resp.Data.Stats.EnginesCount)
	}
	if s.Count() != 1 {
		t.Fatalf("store Count = %d, want 1", s.Count())
	}
}

func TestUpload_UnknownDeptType(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t, router)

	form, contentType := rosterUpload(t, [][]interface{}{{"traineeId"}, {"1"}}, "NOPE")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", form)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpload_MalformedFile(t *testing.T) {
	router, s := newTestRouter(t)
	token := adminToken(t, router)

	var form bytes.Buffer
	writer := multipart.NewWriter(&form)
	part, _ := writer.CreateFormFile("file", "broken.xlsx")
	part.Write([]byte("junk"))
	writer.WriteField("deptType", "ENGINES")
	writer.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", &form)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	if s.Count() != 0 {
		t.Fatalf("store should be untouched")
	}
}

func TestGetSchedule_FoundAndNotFound(t *testing.T) {
	router, s := newTestRouter(t)

	week := make([]model.DaySchedule, 0, 5)
	for _, day := range []string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس"} {
		week = append(week, model.DaySchedule{DayName: day, Courses: []model.Course{}})
	}
	record := &model.TraineeSchedule{TraineeID: "900", TraineeName: "X", Department: "D", Schedule: week}
	if err := s.Merge([]*model.TraineeSchedule{record}, model.DeptEngines); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/schedules/900", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got model.TraineeSchedule
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response: %v", err)
	}
	if got.TraineeName != "X" || len(got.Schedule) != 5 {
		t.Fatalf("got = %+v", got)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/schedules/999", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestResetData(t *testing.T) {
	router, s := newTestRouter(t)
	token := adminToken(t, router)

	week := []model.DaySchedule{{DayName: "الأحد", Courses: []model.Course{}}}
	record := &model.TraineeSchedule{TraineeID: "1", Schedule: week}
	if err := s.Merge([]*model.TraineeSchedule{record}, model.DeptManufacturing); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/data", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var db model.Database
	if err := json.Unmarshal(w.Body.Bytes(), &db); err != nil {
		t.Fatalf("response: %v", err)
	}
	// Records and stats reset together, never one without the other.
	if len(db.Schedules) != 0 || db.Stats != (model.UploadStats{}) {
		t.Fatalf("reset response mixes old state: %+v", db)
	}
}

func TestAnalyze_UsesAnalyzer(t *testing.T) {
	router, _ := newTestRouter(t)

	schedule := model.TraineeSchedule{TraineeID: "900", Schedule: []model.DaySchedule{}}
	body, _ := json.Marshal(schedule)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got analyzer.Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response: %v", err)
	}
	if got.Summary != "ok" || got.HardestDay != "900" {
		t.Fatalf("got = %+v", got)
	}
}
