// file: internals/client/board.go
package client

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"classboard_backend/internals/configs"
	dutyDTO "classboard_backend/internals/features/classroom/duty/dto"
	hworkDTO "classboard_backend/internals/features/classroom/homework/dto"
	ttDTO "classboard_backend/internals/features/classroom/timetable/dto"
	ttModel "classboard_backend/internals/features/classroom/timetable/model"
)

/* =========================
   Boards

   Per-screen state holders sitting on top of the API client. Each board
   owns one list, a coarse state, and an error message orthogonal to the
   state: a failed save keeps the board Loaded with Err set, so already
   fetched data never disappears under the user.
   ========================= */

type BoardState int

const (
	BoardLoading BoardState = iota
	BoardLoaded
	BoardSubmitting
)

/* =========================
   Timetable board
   ========================= */

type TimetableBoard struct {
	API   *Client
	State BoardState
	Err   string
	Slots []ttDTO.TimetableSlotResponse
}

func NewTimetableBoard(api *Client) *TimetableBoard {
	return &TimetableBoard{API: api, State: BoardLoading}
}

func (b *TimetableBoard) Load(ctx context.Context) error {
	b.State = BoardLoading
	b.Err = ""
	slots, err := b.API.ListTimetable(ctx)
	if err != nil {
		b.State = BoardLoaded
		b.Err = errText(err)
		return err
	}
	b.Slots = slots
	b.State = BoardLoaded
	return nil
}

// SaveCell writes one grid cell. The server upserts by (day, lesson), so
// saving over an existing cell edits it in place.
func (b *TimetableBoard) SaveCell(ctx context.Context, day ttModel.Day, lesson int, subject string) error {
	b.State = BoardSubmitting
	b.Err = ""
	saved, err := b.API.UpsertTimetableSlot(ctx, ttDTO.UpsertTimetableSlotRequest{
		Day:          string(day),
		LessonNumber: lesson,
		Subject:      subject,
	})
	b.State = BoardLoaded
	if err != nil {
		b.Err = errText(err)
		return err
	}
	for i := range b.Slots {
		if b.Slots[i].Day == saved.Day && b.Slots[i].LessonNumber == saved.LessonNumber {
			b.Slots[i] = *saved
			return nil
		}
	}
	b.Slots = append(b.Slots, *saved)
	return nil
}

func (b *TimetableBoard) DeleteCell(ctx context.Context, id uuid.UUID) error {
	b.State = BoardSubmitting
	b.Err = ""
	err := b.API.DeleteTimetableSlot(ctx, id)
	b.State = BoardLoaded
	if err != nil {
		b.Err = errText(err)
		return err
	}
	kept := b.Slots[:0]
	for _, s := range b.Slots {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	b.Slots = kept
	return nil
}

// Grid lays the slots out by day then lesson number for rendering.
func (b *TimetableBoard) Grid() map[ttModel.Day]map[int]ttDTO.TimetableSlotResponse {
	grid := make(map[ttModel.Day]map[int]ttDTO.TimetableSlotResponse, len(ttModel.DaysOrder))
	for _, d := range ttModel.DaysOrder {
		grid[d] = make(map[int]ttDTO.TimetableSlotResponse)
	}
	for _, s := range b.Slots {
		row, ok := grid[s.Day]
		if !ok {
			continue
		}
		row[s.LessonNumber] = s
	}
	return grid
}

// MaxLesson is the number of grid rows: at least 7, stretched to the
// highest saved lesson number.
func (b *TimetableBoard) MaxLesson() int {
	max := 7
	for _, s := range b.Slots {
		if s.LessonNumber > max {
			max = s.LessonNumber
		}
	}
	return max
}

// TodayDay maps now to a school day; weekends show Friday's column.
func TodayDay(now time.Time) ttModel.Day {
	switch now.Weekday() {
	case time.Monday:
		return ttModel.DayMonday
	case time.Tuesday:
		return ttModel.DayTuesday
	case time.Wednesday:
		return ttModel.DayWednesday
	case time.Thursday:
		return ttModel.DayThursday
	default:
		return ttModel.DayFriday
	}
}

// CurrentLesson returns the running lesson number for now, or 0 outside
// school hours. Lessons start at 08:00, one per hour, capped at maxLesson.
func CurrentLesson(now time.Time, maxLesson int) int {
	h := now.Hour()
	if h < 8 || h >= 16 {
		return 0
	}
	lesson := (h - 8) + 1
	if lesson > maxLesson {
		return maxLesson
	}
	return lesson
}

/* =========================
   Homework board
   ========================= */

// HomeworkDraft is the form state: text fields plus picked-but-not-yet
// uploaded files. It survives a failed submit untouched.
type HomeworkDraft struct {
	Title   string
	Subject string
	Date    string // YYYY-MM-DD, empty = today
	Files   []PickedFile
}

type HomeworkBoard struct {
	API      *Client
	Uploader *Uploader
	State    BoardState
	Err      string
	Filter   HomeworkFilter
	Items    []hworkDTO.HomeworkItemResponse
}

func NewHomeworkBoard(api *Client, up *Uploader) *HomeworkBoard {
	return &HomeworkBoard{API: api, Uploader: up, State: BoardLoading}
}

func (b *HomeworkBoard) Load(ctx context.Context) error {
	b.State = BoardLoading
	b.Err = ""
	items, err := b.API.ListHomework(ctx, b.Filter)
	if err != nil {
		b.State = BoardLoaded
		b.Err = errText(err)
		return err
	}
	b.Items = items
	b.State = BoardLoaded
	return nil
}

// Submit runs the two-phase flow: upload every picked file, then create
// the entry with the returned URLs. Any failure keeps the draft so the
// user can retry without re-typing or re-picking.
func (b *HomeworkBoard) Submit(ctx context.Context, draft HomeworkDraft) (*hworkDTO.HomeworkItemResponse, error) {
	b.State = BoardSubmitting
	b.Err = ""

	if err := ValidateFiles(draft.Files, configs.MaxUploadMB); err != nil {
		b.State = BoardLoaded
		b.Err = errText(err)
		return nil, err
	}

	urls, err := b.Uploader.UploadAll(ctx, draft.Files)
	if err != nil {
		b.State = BoardLoaded
		b.Err = errText(err)
		return nil, err
	}

	req := hworkDTO.CreateHomeworkItemRequest{
		Title:   draft.Title,
		Subject: draft.Subject,
		Images:  urls,
	}
	if draft.Date != "" {
		d := draft.Date
		req.Date = &d
	}

	created, err := b.API.CreateHomework(ctx, req)
	b.State = BoardLoaded
	if err != nil {
		b.Err = errText(err)
		return nil, err
	}
	b.Items = append([]hworkDTO.HomeworkItemResponse{*created}, b.Items...)
	return created, nil
}

func (b *HomeworkBoard) Delete(ctx context.Context, id uuid.UUID) error {
	b.State = BoardSubmitting
	b.Err = ""
	err := b.API.DeleteHomework(ctx, id)
	b.State = BoardLoaded
	if err != nil {
		b.Err = errText(err)
		return err
	}
	kept := b.Items[:0]
	for _, it := range b.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	b.Items = kept
	return nil
}

// HomeworkDayGroup is one rendered section: a UTC day and its entries.
type HomeworkDayGroup struct {
	Day   time.Time
	Items []hworkDTO.HomeworkItemResponse
}

// GroupByDay buckets the items by UTC calendar day, newest day first.
// Order inside a bucket follows the list order (already date DESC).
func (b *HomeworkBoard) GroupByDay() []HomeworkDayGroup {
	buckets := map[time.Time][]hworkDTO.HomeworkItemResponse{}
	for _, it := range b.Items {
		d := it.Date.UTC()
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		buckets[day] = append(buckets[day], it)
	}
	groups := make([]HomeworkDayGroup, 0, len(buckets))
	for day, items := range buckets {
		groups = append(groups, HomeworkDayGroup{Day: day, Items: items})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Day.After(groups[j].Day)
	})
	return groups
}

// DefaultSubjects is the subject dropdown of the homework form.
var DefaultSubjects = []string{
	"Монгол хэл",
	"Математик",
	"Биологи",
	"Англи хэл",
	"Түүх",
	"Хими",
	"Физик",
	"Газар зүй",
	"Эрүүл мэнд",
	"Иргэний ёс зүй",
	"Мэдээлэл зүй",
	"Дизайн технологи",
	"Тамир",
}

/* =========================
   Duty board
   ========================= */

type DutyBoard struct {
	API       *Client
	State     BoardState
	Err       string
	Schedules []dutyDTO.DutyScheduleResponse
}

func NewDutyBoard(api *Client) *DutyBoard {
	return &DutyBoard{API: api, State: BoardLoading}
}

func (b *DutyBoard) Load(ctx context.Context) error {
	b.State = BoardLoading
	b.Err = ""
	schedules, err := b.API.ListDuty(ctx)
	if err != nil {
		b.State = BoardLoaded
		b.Err = errText(err)
		return err
	}
	b.Schedules = schedules
	b.State = BoardLoaded
	return nil
}

func (b *DutyBoard) Create(ctx context.Context, req dutyDTO.CreateDutyScheduleRequest) (*dutyDTO.DutyScheduleResponse, error) {
	b.State = BoardSubmitting
	b.Err = ""
	created, err := b.API.CreateDuty(ctx, req)
	b.State = BoardLoaded
	if err != nil {
		b.Err = errText(err)
		return nil, err
	}
	b.Schedules = append(b.Schedules, *created)
	sort.Slice(b.Schedules, func(i, j int) bool {
		return b.Schedules[i].Date.Before(b.Schedules[j].Date)
	})
	return created, nil
}

func (b *DutyBoard) Patch(ctx context.Context, id uuid.UUID, req dutyDTO.PatchDutyScheduleRequest) (*dutyDTO.DutyScheduleResponse, error) {
	b.State = BoardSubmitting
	b.Err = ""
	updated, err := b.API.PatchDuty(ctx, id, req)
	b.State = BoardLoaded
	if err != nil {
		b.Err = errText(err)
		return nil, err
	}
	for i := range b.Schedules {
		if b.Schedules[i].ID == id {
			b.Schedules[i] = *updated
			break
		}
	}
	return updated, nil
}

func (b *DutyBoard) Delete(ctx context.Context, id uuid.UUID) error {
	b.State = BoardSubmitting
	b.Err = ""
	err := b.API.DeleteDuty(ctx, id)
	b.State = BoardLoaded
	if err != nil {
		b.Err = errText(err)
		return err
	}
	kept := b.Schedules[:0]
	for _, s := range b.Schedules {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	b.Schedules = kept
	return nil
}

// Today returns the schedule whose date is now's UTC day, or nil.
func (b *DutyBoard) Today(now time.Time) *dutyDTO.DutyScheduleResponse {
	u := now.UTC()
	day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	for i := range b.Schedules {
		if b.Schedules[i].Date.Equal(day) {
			return &b.Schedules[i]
		}
	}
	return nil
}

// NextUpcoming is the earliest schedule strictly after now's UTC day.
func (b *DutyBoard) NextUpcoming(now time.Time) *dutyDTO.DutyScheduleResponse {
	u := now.UTC()
	day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	var next *dutyDTO.DutyScheduleResponse
	for i := range b.Schedules {
		s := &b.Schedules[i]
		if !s.Date.After(day) {
			continue
		}
		if next == nil || s.Date.Before(next.Date) {
			next = s
		}
	}
	return next
}

// errText keeps only the server message for APIError so boards surface
// the same text the page would have shown.
func errText(err error) string {
	if ae, ok := err.(*APIError); ok && ae.Message != "" {
		return ae.Message
	}
	return err.Error()
}
