package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dutyDTO "classboard_backend/internals/features/classroom/duty/dto"
	hworkDTO "classboard_backend/internals/features/classroom/homework/dto"
	ttDTO "classboard_backend/internals/features/classroom/timetable/dto"
	ttModel "classboard_backend/internals/features/classroom/timetable/model"
)

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

/* =========================
   Timetable board
   ========================= */

func TestTimetableBoard_LoadAndSave(t *testing.T) {
	slotID := uuid.New()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/timetable", jsonHandler(http.StatusOK,
		`[{"id":"`+slotID.String()+`","day":"MONDAY","lessonNumber":1,"subject":"Математик","createdAt":"2025-04-01T00:00:00Z"}]`))
	mux.HandleFunc("POST /api/timetable", jsonHandler(http.StatusCreated,
		`{"id":"`+slotID.String()+`","day":"MONDAY","lessonNumber":1,"subject":"Физик","createdAt":"2025-04-01T00:00:00Z"}`))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	b := NewTimetableBoard(New(srv.URL))
	require.NoError(t, b.Load(context.Background()))
	assert.Equal(t, BoardLoaded, b.State)
	assert.Empty(t, b.Err)
	require.Len(t, b.Slots, 1)

	// Saving the same cell replaces it in place, no duplicate.
	require.NoError(t, b.SaveCell(context.Background(), ttModel.DayMonday, 1, "Физик"))
	require.Len(t, b.Slots, 1)
	assert.Equal(t, "Физик", b.Slots[0].Subject)
}

func TestTimetableBoard_FailedSaveKeepsSlots(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/timetable", jsonHandler(http.StatusOK,
		`[{"id":"`+uuid.NewString()+`","day":"MONDAY","lessonNumber":1,"subject":"Математик","createdAt":"2025-04-01T00:00:00Z"}]`))
	mux.HandleFunc("POST /api/timetable", jsonHandler(http.StatusInternalServerError,
		`{"error":"Server error"}`))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	b := NewTimetableBoard(New(srv.URL))
	require.NoError(t, b.Load(context.Background()))

	err := b.SaveCell(context.Background(), ttModel.DayMonday, 2, "Хими")
	require.Error(t, err)
	assert.Equal(t, BoardLoaded, b.State)
	assert.Equal(t, "Server error", b.Err)
	assert.Len(t, b.Slots, 1, "loaded data survives a failed save")
}

func TestTimetableBoard_GridAndMaxLesson(t *testing.T) {
	b := &TimetableBoard{Slots: []ttDTO.TimetableSlotResponse{
		{ID: uuid.New(), Day: ttModel.DayMonday, LessonNumber: 1, Subject: "a"},
		{ID: uuid.New(), Day: ttModel.DayMonday, LessonNumber: 9, Subject: "b"},
		{ID: uuid.New(), Day: ttModel.DayFriday, LessonNumber: 3, Subject: "c"},
	}}

	grid := b.Grid()
	assert.Equal(t, "a", grid[ttModel.DayMonday][1].Subject)
	assert.Equal(t, "c", grid[ttModel.DayFriday][3].Subject)
	_, has := grid[ttModel.DayTuesday][1]
	assert.False(t, has)

	assert.Equal(t, 9, b.MaxLesson())
	assert.Equal(t, 7, (&TimetableBoard{}).MaxLesson(), "floor is 7 rows")
}

func TestTodayDay_WeekendShowsFriday(t *testing.T) {
	mon := time.Date(2025, 4, 7, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, ttModel.DayMonday, TodayDay(mon))

	sat := time.Date(2025, 4, 12, 10, 0, 0, 0, time.UTC)
	sun := time.Date(2025, 4, 13, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, ttModel.DayFriday, TodayDay(sat))
	assert.Equal(t, ttModel.DayFriday, TodayDay(sun))
}

func TestCurrentLesson(t *testing.T) {
	at := func(h, min int) time.Time {
		return time.Date(2025, 4, 7, h, min, 0, 0, time.UTC)
	}

	assert.Equal(t, 0, CurrentLesson(at(7, 59), 8), "before school")
	assert.Equal(t, 1, CurrentLesson(at(8, 0), 8))
	assert.Equal(t, 3, CurrentLesson(at(10, 30), 8))
	assert.Equal(t, 8, CurrentLesson(at(15, 59), 8))
	assert.Equal(t, 0, CurrentLesson(at(16, 0), 8), "after school")

	// The grid's row count caps the answer.
	assert.Equal(t, 5, CurrentLesson(at(15, 0), 5))
}

/* =========================
   Homework board
   ========================= */

func TestHomeworkBoard_SubmitTwoPhase(t *testing.T) {
	uploadSrv := httptest.NewServer(jsonHandler(http.StatusOK, `{"url":"https://blob/1.webp"}`))
	defer uploadSrv.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/hwork", jsonHandler(http.StatusCreated,
		`{"id":"`+uuid.NewString()+`","subject":"Математик","title":"Дасгал 5","date":"2025-04-01T00:00:00Z","image":"https://blob/1.webp","images":["https://blob/1.webp"]}`))
	apiSrv := httptest.NewServer(mux)
	defer apiSrv.Close()

	b := NewHomeworkBoard(New(apiSrv.URL), NewUploader(uploadSrv.URL))
	created, err := b.Submit(context.Background(), HomeworkDraft{
		Title:   "Дасгал 5",
		Subject: "Математик",
		Date:    "2025-04-01",
		Files:   []PickedFile{{Name: "photo.png", Data: pngBytes(t, 4, 4)}},
	})
	require.NoError(t, err)
	assert.Equal(t, BoardLoaded, b.State)
	require.Len(t, b.Items, 1)
	assert.Equal(t, created.ID, b.Items[0].ID)
	assert.Equal(t, []string{"https://blob/1.webp"}, b.Items[0].Images)
}

func TestHomeworkBoard_BadFileStopsBeforeNetwork(t *testing.T) {
	var apiCalls int
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
	}))
	defer apiSrv.Close()

	b := NewHomeworkBoard(New(apiSrv.URL), NewUploader(apiSrv.URL))
	_, err := b.Submit(context.Background(), HomeworkDraft{
		Title:   "x",
		Subject: "y",
		Files:   []PickedFile{{Name: "doc.pdf", Data: []byte("%PDF-1.4 not an image")}},
	})
	require.Error(t, err)
	assert.Equal(t, "Зөвхөн JPG / PNG / WEBP зураг зөвшөөрнө.", b.Err)
	assert.Equal(t, 0, apiCalls)
}

func TestHomeworkBoard_FailedCreateKeepsItems(t *testing.T) {
	uploadSrv := httptest.NewServer(jsonHandler(http.StatusOK, `{"url":"https://blob/1.webp"}`))
	defer uploadSrv.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/hwork", jsonHandler(http.StatusOK,
		`[{"id":"`+uuid.NewString()+`","subject":"s","title":"old","date":"2025-03-01T00:00:00Z","image":null,"images":[]}]`))
	mux.HandleFunc("POST /api/hwork", jsonHandler(http.StatusBadRequest, `{"error":"Invalid body"}`))
	apiSrv := httptest.NewServer(mux)
	defer apiSrv.Close()

	b := NewHomeworkBoard(New(apiSrv.URL), NewUploader(uploadSrv.URL))
	require.NoError(t, b.Load(context.Background()))

	_, err := b.Submit(context.Background(), HomeworkDraft{Title: "new", Subject: "s"})
	require.Error(t, err)
	assert.Equal(t, "Invalid body", b.Err)
	require.Len(t, b.Items, 1)
	assert.Equal(t, "old", b.Items[0].Title)
}

func TestHomeworkBoard_GroupByDay(t *testing.T) {
	d1 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	d1b := time.Date(2025, 4, 1, 23, 30, 0, 0, time.UTC)
	d2 := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	b := &HomeworkBoard{Items: []hworkDTO.HomeworkItemResponse{
		{ID: uuid.New(), Title: "c", Date: d2},
		{ID: uuid.New(), Title: "a", Date: d1},
		{ID: uuid.New(), Title: "b", Date: d1b},
	}}

	groups := b.GroupByDay()
	require.Len(t, groups, 2)
	assert.Equal(t, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), groups[0].Day)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, "c", groups[0].Items[0].Title)
	require.Len(t, groups[1].Items, 2)
	assert.Equal(t, "a", groups[1].Items[0].Title)
	assert.Equal(t, "b", groups[1].Items[1].Title)
}

func TestDefaultSubjects(t *testing.T) {
	assert.Len(t, DefaultSubjects, 13)
	assert.Equal(t, "Монгол хэл", DefaultSubjects[0])
}

/* =========================
   Duty board
   ========================= */

func TestDutyBoard_TodayAndNextUpcoming(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 4, d, 0, 0, 0, 0, time.UTC)
	}
	b := &DutyBoard{Schedules: []dutyDTO.DutyScheduleResponse{
		{ID: uuid.New(), Date: day(7)},
		{ID: uuid.New(), Date: day(14)},
		{ID: uuid.New(), Date: day(21)},
	}}

	now := time.Date(2025, 4, 7, 13, 45, 0, 0, time.UTC)
	today := b.Today(now)
	require.NotNil(t, today)
	assert.Equal(t, day(7), today.Date)

	next := b.NextUpcoming(now)
	require.NotNil(t, next)
	assert.Equal(t, day(14), next.Date)

	// A gap day has no schedule; next is still the 14th.
	gap := time.Date(2025, 4, 9, 8, 0, 0, 0, time.UTC)
	assert.Nil(t, b.Today(gap))
	assert.Equal(t, day(14), b.NextUpcoming(gap).Date)

	// Past the last schedule there is nothing upcoming.
	late := time.Date(2025, 4, 22, 8, 0, 0, 0, time.UTC)
	assert.Nil(t, b.NextUpcoming(late))
}

func TestDutyBoard_CreateKeepsDateOrder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/duty", jsonHandler(http.StatusCreated,
		`{"id":"`+uuid.NewString()+`","date":"2025-04-10T00:00:00Z","names":["а","б","в","г","д"],"notes":null,"createdAt":"2025-04-01T00:00:00Z","updatedAt":"2025-04-01T00:00:00Z"}`))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	b := NewDutyBoard(New(srv.URL))
	b.Schedules = []dutyDTO.DutyScheduleResponse{
		{ID: uuid.New(), Date: time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Date: time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC)},
	}
	b.State = BoardLoaded

	_, err := b.Create(context.Background(), dutyDTO.CreateDutyScheduleRequest{
		Date:  "2025-04-10",
		Names: []string{"а", "б", "в", "г", "д"},
	})
	require.NoError(t, err)
	require.Len(t, b.Schedules, 3)
	assert.Equal(t, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), b.Schedules[1].Date)
}

func TestDutyBoard_ConflictSurfacesServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/duty", jsonHandler(http.StatusConflict,
		`{"error":"This date already exists"}`))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	b := NewDutyBoard(New(srv.URL))
	b.State = BoardLoaded

	_, err := b.Create(context.Background(), dutyDTO.CreateDutyScheduleRequest{
		Date:  "2025-04-07",
		Names: []string{"а", "б", "в", "г", "д"},
	})
	require.Error(t, err)
	assert.Equal(t, "This date already exists", b.Err)
	assert.Empty(t, b.Schedules)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}
