// file: internals/client/client.go
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	dutyDTO "classboard_backend/internals/features/classroom/duty/dto"
	hworkDTO "classboard_backend/internals/features/classroom/homework/dto"
	ttDTO "classboard_backend/internals/features/classroom/timetable/dto"
)

/* =========================
   API client

   Typed access to the classboard API. One request per call, no retries:
   failure recovery is the user's re-click, as in the original screens.
   ========================= */

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// APIError is a non-2xx answer; Message carries the server's {"error"} text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		_ = sonic.Unmarshal(raw, &e)
		if e.Error == "" {
			e.Error = strings.TrimSpace(string(raw))
		}
		return &APIError{Status: res.StatusCode, Message: e.Error}
	}

	if out != nil {
		return sonic.Unmarshal(raw, out)
	}
	return nil
}

/* =========================
   Timetable
   ========================= */

func (c *Client) ListTimetable(ctx context.Context) ([]ttDTO.TimetableSlotResponse, error) {
	var out []ttDTO.TimetableSlotResponse
	err := c.do(ctx, http.MethodGet, "/api/timetable", nil, &out)
	return out, err
}

func (c *Client) UpsertTimetableSlot(ctx context.Context, req ttDTO.UpsertTimetableSlotRequest) (*ttDTO.TimetableSlotResponse, error) {
	var out ttDTO.TimetableSlotResponse
	if err := c.do(ctx, http.MethodPost, "/api/timetable", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetTimetableSlot(ctx context.Context, id uuid.UUID) (*ttDTO.TimetableSlotResponse, error) {
	var out ttDTO.TimetableSlotResponse
	if err := c.do(ctx, http.MethodGet, "/api/timetable/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PatchTimetableSlot(ctx context.Context, id uuid.UUID, req ttDTO.PatchTimetableSlotRequest) (*ttDTO.TimetableSlotResponse, error) {
	var out ttDTO.TimetableSlotResponse
	if err := c.do(ctx, http.MethodPatch, "/api/timetable/"+id.String(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTimetableSlot(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/timetable/"+id.String(), nil, nil)
}

/* =========================
   Homework
   ========================= */

// HomeworkFilter narrows ListHomework; empty fields are omitted.
type HomeworkFilter struct {
	Subject string
	Date    string // YYYY-MM-DD
}

func (c *Client) ListHomework(ctx context.Context, f HomeworkFilter) ([]hworkDTO.HomeworkItemResponse, error) {
	q := url.Values{}
	if f.Subject != "" {
		q.Set("subject", f.Subject)
	}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	path := "/api/hwork"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []hworkDTO.HomeworkItemResponse
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) CreateHomework(ctx context.Context, req hworkDTO.CreateHomeworkItemRequest) (*hworkDTO.HomeworkItemResponse, error) {
	var out hworkDTO.HomeworkItemResponse
	if err := c.do(ctx, http.MethodPost, "/api/hwork", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetHomework(ctx context.Context, id uuid.UUID) (*hworkDTO.HomeworkItemResponse, error) {
	var out hworkDTO.HomeworkItemResponse
	if err := c.do(ctx, http.MethodGet, "/api/hwork/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PatchHomework(ctx context.Context, id uuid.UUID, req hworkDTO.PatchHomeworkItemRequest) (*hworkDTO.HomeworkItemResponse, error) {
	var out hworkDTO.HomeworkItemResponse
	if err := c.do(ctx, http.MethodPatch, "/api/hwork/"+id.String(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteHomework(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/hwork/"+id.String(), nil, nil)
}

/* =========================
   Duty
   ========================= */

func (c *Client) ListDuty(ctx context.Context) ([]dutyDTO.DutyScheduleResponse, error) {
	var out []dutyDTO.DutyScheduleResponse
	err := c.do(ctx, http.MethodGet, "/api/duty", nil, &out)
	return out, err
}

func (c *Client) CreateDuty(ctx context.Context, req dutyDTO.CreateDutyScheduleRequest) (*dutyDTO.DutyScheduleResponse, error) {
	var out dutyDTO.DutyScheduleResponse
	if err := c.do(ctx, http.MethodPost, "/api/duty", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDuty(ctx context.Context, id uuid.UUID) (*dutyDTO.DutyScheduleResponse, error) {
	var out dutyDTO.DutyScheduleResponse
	if err := c.do(ctx, http.MethodGet, "/api/duty/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PatchDuty(ctx context.Context, id uuid.UUID, req dutyDTO.PatchDutyScheduleRequest) (*dutyDTO.DutyScheduleResponse, error) {
	var out dutyDTO.DutyScheduleResponse
	if err := c.do(ctx, http.MethodPatch, "/api/duty/"+id.String(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDuty(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/duty/"+id.String(), nil, nil)
}
