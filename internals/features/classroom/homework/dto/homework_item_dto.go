// file: internals/features/classroom/homework/dto/homework_item_dto.go
package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "classboard_backend/internals/features/classroom/homework/model"
	helper "classboard_backend/internals/helpers"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateHomeworkItemRequest struct {
	Title   string   `json:"title"   validate:"required"`
	Subject string   `json:"subject" validate:"required"`
	Date    *string  `json:"date,omitempty"`
	Images  []string `json:"images,omitempty"`
	// Legacy single-URL field; still accepted on create.
	Image *string `json:"image,omitempty"`
}

type PatchHomeworkItemRequest struct {
	Title   *string `json:"title,omitempty"`
	Subject *string `json:"subject,omitempty"`
	// Raw so that an explicit null (clear) is distinguishable from absent.
	Image  json.RawMessage `json:"image,omitempty"`
	Images *[]string       `json:"images,omitempty"`
	Date   *string         `json:"date,omitempty"`
}

func (r *CreateHomeworkItemRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

/* =======================================================
   Image list normalization

   The effective list is the union of `images` and the legacy `image`,
   trimmed and deduplicated in order; the first URL is mirrored back
   into the legacy field.
   ======================================================= */

func NormalizeImageList(images []string, legacy *string) ([]string, error) {
	seen := make(map[string]struct{}, len(images)+1)
	out := make([]string, 0, len(images)+1)

	add := func(u string) error {
		u = strings.TrimSpace(u)
		if u == "" {
			return errors.New("images entries must be non-empty strings")
		}
		if _, ok := seen[u]; ok {
			return nil
		}
		seen[u] = struct{}{}
		out = append(out, u)
		return nil
	}

	for _, u := range images {
		if err := add(u); err != nil {
			return nil, err
		}
	}
	if legacy != nil && strings.TrimSpace(*legacy) != "" {
		_ = add(*legacy)
	}
	return out, nil
}

/* =======================================================
   Convert & Apply
   ======================================================= */

func (r *CreateHomeworkItemRequest) ApplyToModel(dst *m.HomeworkItemModel) error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errors.New("title required")
	}
	subject := strings.TrimSpace(r.Subject)
	if subject == "" {
		return errors.New("subject required")
	}

	date := time.Now()
	if r.Date != nil && strings.TrimSpace(*r.Date) != "" {
		d, err := helper.ParseDateFlexible(*r.Date)
		if err != nil {
			return errors.New("invalid date")
		}
		date = d
	}

	urls, err := NormalizeImageList(r.Images, r.Image)
	if err != nil {
		return err
	}

	dst.HomeworkItemTitle = title
	dst.HomeworkItemSubject = subject
	dst.HomeworkItemDate = date
	dst.SetImageList(urls)
	if len(urls) > 0 {
		dst.HomeworkItemImage = &urls[0]
	} else {
		dst.HomeworkItemImage = nil
	}
	return nil
}

func (p *PatchHomeworkItemRequest) ApplyPatch(dst *m.HomeworkItemModel) error {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return errors.New("Invalid title")
		}
		dst.HomeworkItemTitle = title
	}

	if p.Subject != nil {
		subject := strings.TrimSpace(*p.Subject)
		if subject == "" {
			return errors.New("Invalid subject")
		}
		dst.HomeworkItemSubject = subject
	}

	if len(p.Image) > 0 {
		if string(p.Image) == "null" {
			dst.HomeworkItemImage = nil
		} else {
			var s string
			if err := json.Unmarshal(p.Image, &s); err != nil {
				return errors.New("Invalid image")
			}
			s = strings.TrimSpace(s)
			if s == "" {
				dst.HomeworkItemImage = nil
			} else {
				dst.HomeworkItemImage = &s
			}
		}
	}

	if p.Images != nil {
		urls, err := NormalizeImageList(*p.Images, nil)
		if err != nil {
			return errors.New("Invalid images")
		}
		dst.SetImageList(urls)
	}

	if p.Date != nil {
		if strings.TrimSpace(*p.Date) == "" {
			return errors.New("Invalid date")
		}
		d, err := helper.ParseDateFlexible(*p.Date)
		if err != nil {
			return errors.New("Invalid date")
		}
		dst.HomeworkItemDate = d
	}

	return nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type HomeworkItemResponse struct {
	ID      uuid.UUID `json:"id"`
	Subject string    `json:"subject"`
	Title   string    `json:"title"`
	Date    time.Time `json:"date"`
	Image   *string   `json:"image"`
	Images  []string  `json:"images"`
}

func NewHomeworkItemResponse(src *m.HomeworkItemModel) HomeworkItemResponse {
	return HomeworkItemResponse{
		ID:      src.HomeworkItemID,
		Subject: src.HomeworkItemSubject,
		Title:   src.HomeworkItemTitle,
		Date:    src.HomeworkItemDate,
		Image:   src.HomeworkItemImage,
		Images:  src.ImageList(),
	}
}
