// file: internals/features/classroom/homework/model/homework_item_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   HomeworkItemModel — one assignment entry.

   Images history: the table started with a single `image` URL column;
   `images` (JSON list) is the current representation. The legacy column
   is kept populated with the first URL so old readers keep working.
   ======================================================= */

type HomeworkItemModel struct {
	HomeworkItemID uuid.UUID `gorm:"type:uuid;primaryKey;column:homework_item_id;default:gen_random_uuid()"`

	HomeworkItemSubject string `gorm:"type:text;not null;column:homework_item_subject"`
	HomeworkItemTitle   string `gorm:"type:text;not null;column:homework_item_title"`

	// The assignment's day; views bucket by the UTC calendar day of this.
	HomeworkItemDate time.Time `gorm:"column:homework_item_date;not null;index"`

	HomeworkItemImage  *string        `gorm:"type:text;column:homework_item_image"`
	HomeworkItemImages datatypes.JSON `gorm:"column:homework_item_images"`
}

func (HomeworkItemModel) TableName() string {
	return "homework_items"
}

// ImageList decodes the images column; nil column reads as empty.
func (h *HomeworkItemModel) ImageList() []string {
	if len(h.HomeworkItemImages) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(h.HomeworkItemImages, &out); err != nil {
		return []string{}
	}
	return out
}

// SetImageList encodes urls into the images column.
func (h *HomeworkItemModel) SetImageList(urls []string) {
	if urls == nil {
		urls = []string{}
	}
	raw, _ := json.Marshal(urls)
	h.HomeworkItemImages = datatypes.JSON(raw)
}
