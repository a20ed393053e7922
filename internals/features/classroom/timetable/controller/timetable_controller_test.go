package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	d "classboard_backend/internals/features/classroom/timetable/dto"
	m "classboard_backend/internals/features/classroom/timetable/model"
)

/* =========================
   In-memory fake repo
   ========================= */

type fakeTimetableRepo struct {
	rows []m.TimetableSlotModel
}

func (f *fakeTimetableRepo) List(ctx context.Context) ([]m.TimetableSlotModel, error) {
	return f.rows, nil
}

func (f *fakeTimetableRepo) Upsert(ctx context.Context, row *m.TimetableSlotModel) error {
	for i := range f.rows {
		if f.rows[i].TimetableSlotDay == row.TimetableSlotDay &&
			f.rows[i].TimetableSlotLessonNumber == row.TimetableSlotLessonNumber {
			f.rows[i].TimetableSlotSubject = row.TimetableSlotSubject
			*row = f.rows[i]
			return nil
		}
	}
	row.TimetableSlotID = uuid.New()
	row.TimetableSlotCreatedAt = time.Now().UTC()
	f.rows = append(f.rows, *row)
	return nil
}

func (f *fakeTimetableRepo) GetByID(ctx context.Context, id uuid.UUID) (*m.TimetableSlotModel, error) {
	for i := range f.rows {
		if f.rows[i].TimetableSlotID == id {
			cp := f.rows[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTimetableRepo) Update(ctx context.Context, row *m.TimetableSlotModel) error {
	for i := range f.rows {
		if f.rows[i].TimetableSlotID == row.TimetableSlotID {
			f.rows[i] = *row
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeTimetableRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.rows {
		if f.rows[i].TimetableSlotID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func newTestApp(repo *fakeTimetableRepo) *fiber.App {
	app := fiber.New()
	ctl := New(repo, validator.New())
	g := app.Group("/api/timetable")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Upsert)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, raw
}

/* =========================
   Tests
   ========================= */

func TestUpsert_CreatesThenOverwrites(t *testing.T) {
	repo := &fakeTimetableRepo{}
	app := newTestApp(repo)

	res, raw := doJSON(t, app, http.MethodPost, "/api/timetable/",
		`{"day":"MONDAY","lessonNumber":3,"subject":"Математик"}`)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var first d.TimetableSlotResponse
	require.NoError(t, json.Unmarshal(raw, &first))
	assert.Equal(t, m.DayMonday, first.Day)
	assert.Equal(t, 3, first.LessonNumber)
	assert.NotEqual(t, uuid.Nil, first.ID)

	// Same cell again: subject replaced, still one row, same id.
	res, raw = doJSON(t, app, http.MethodPost, "/api/timetable/",
		`{"day":"MONDAY","lessonNumber":3,"subject":"Физик"}`)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var second d.TimetableSlotResponse
	require.NoError(t, json.Unmarshal(raw, &second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Физик", second.Subject)
	assert.Len(t, repo.rows, 1)
}

func TestUpsert_RejectsBadBody(t *testing.T) {
	app := newTestApp(&fakeTimetableRepo{})

	for _, body := range []string{
		`{"day":"SUNDAY","lessonNumber":1,"subject":"x"}`,
		`{"day":"MONDAY","lessonNumber":0,"subject":"x"}`,
		`{"day":"MONDAY","lessonNumber":13,"subject":"x"}`,
		`{"day":"MONDAY","lessonNumber":1}`,
		`not json`,
	} {
		res, raw := doJSON(t, app, http.MethodPost, "/api/timetable/", body)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "body: %s", body)
		assert.JSONEq(t, `{"error":"Invalid body"}`, string(raw))
	}
}

func TestList_ReturnsAllSlots(t *testing.T) {
	repo := &fakeTimetableRepo{rows: []m.TimetableSlotModel{
		{TimetableSlotID: uuid.New(), TimetableSlotDay: m.DayMonday, TimetableSlotLessonNumber: 1, TimetableSlotSubject: "a"},
		{TimetableSlotID: uuid.New(), TimetableSlotDay: m.DayFriday, TimetableSlotLessonNumber: 2, TimetableSlotSubject: "b"},
	}}
	app := newTestApp(repo)

	res, raw := doJSON(t, app, http.MethodGet, "/api/timetable/", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var out []d.TimetableSlotResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Len(t, out, 2)
}

func TestPatch_UpdatesSingleField(t *testing.T) {
	id := uuid.New()
	repo := &fakeTimetableRepo{rows: []m.TimetableSlotModel{
		{TimetableSlotID: id, TimetableSlotDay: m.DayTuesday, TimetableSlotLessonNumber: 4, TimetableSlotSubject: "Хими"},
	}}
	app := newTestApp(repo)

	res, raw := doJSON(t, app, http.MethodPatch, "/api/timetable/"+id.String(),
		`{"subject":"Биологи"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var out d.TimetableSlotResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Биологи", out.Subject)
	assert.Equal(t, m.DayTuesday, out.Day)
	assert.Equal(t, 4, out.LessonNumber)
}

func TestPatch_EmptyBodyRejected(t *testing.T) {
	id := uuid.New()
	repo := &fakeTimetableRepo{rows: []m.TimetableSlotModel{
		{TimetableSlotID: id, TimetableSlotDay: m.DayMonday, TimetableSlotLessonNumber: 1, TimetableSlotSubject: "x"},
	}}
	app := newTestApp(repo)

	res, raw := doJSON(t, app, http.MethodPatch, "/api/timetable/"+id.String(), `{}`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.JSONEq(t, `{"error":"Invalid body"}`, string(raw))
}

func TestGetPatchDelete_UnknownID(t *testing.T) {
	app := newTestApp(&fakeTimetableRepo{})
	id := uuid.New().String()

	res, raw := doJSON(t, app, http.MethodGet, "/api/timetable/"+id, "")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.JSONEq(t, `{"error":"Not found"}`, string(raw))

	res, raw = doJSON(t, app, http.MethodPatch, "/api/timetable/"+id, `{"subject":"x"}`)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.JSONEq(t, `{"error":"Not found"}`, string(raw))

	res, raw = doJSON(t, app, http.MethodDelete, "/api/timetable/"+id, "")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.JSONEq(t, `{"error":"Not found"}`, string(raw))
}

func TestDelete_RemovesRow(t *testing.T) {
	id := uuid.New()
	repo := &fakeTimetableRepo{rows: []m.TimetableSlotModel{
		{TimetableSlotID: id, TimetableSlotDay: m.DayMonday, TimetableSlotLessonNumber: 1, TimetableSlotSubject: "x"},
	}}
	app := newTestApp(repo)

	res, raw := doJSON(t, app, http.MethodDelete, "/api/timetable/"+id.String(), "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
	assert.Empty(t, repo.rows)
}

func TestBadUUIDParam(t *testing.T) {
	app := newTestApp(&fakeTimetableRepo{})
	res, _ := doJSON(t, app, http.MethodGet, "/api/timetable/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
