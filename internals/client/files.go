// file: internals/client/files.go
package client

import (
	"fmt"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

/* =========================
   Picked files

   Validation happens before any network call: only jpeg/png/webp, per-file
   size ceiling (default 5 MB). The type is sniffed from the bytes, not
   trusted from the filename.
   ========================= */

// DefaultMaxFileMB caps one picked file.
const DefaultMaxFileMB = 5

var allowedMIME = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

type PickedFile struct {
	Name     string
	Data     []byte
	Modified time.Time
}

// Key matches the original form's dedup key: name + size + mtime.
func (f PickedFile) Key() string {
	return fmt.Sprintf("%s__%d__%d", f.Name, len(f.Data), f.Modified.UnixMilli())
}

// ValidateFiles rejects the whole pick on the first bad file, so a user
// never ends up with a half-accepted selection.
func ValidateFiles(files []PickedFile, maxMB int) error {
	if maxMB <= 0 {
		maxMB = DefaultMaxFileMB
	}
	maxBytes := maxMB * 1024 * 1024
	for _, f := range files {
		mt := mimetype.Detect(f.Data)
		if _, ok := allowedMIME[mt.String()]; !ok {
			return fmt.Errorf("Зөвхөн JPG / PNG / WEBP зураг зөвшөөрнө.")
		}
		if len(f.Data) > maxBytes {
			return fmt.Errorf("%q зураг %dMB-аас их байна.", f.Name, maxMB)
		}
	}
	return nil
}

// PickMode mirrors the two file inputs of the original form.
type PickMode int

const (
	PickReplace PickMode = iota
	PickAppend
)

// MergeFiles applies a pick to the current selection. Append dedups by
// Key, later picks win.
func MergeFiles(current, picked []PickedFile, mode PickMode) []PickedFile {
	if mode == PickReplace {
		return picked
	}
	merged := make([]PickedFile, 0, len(current)+len(picked))
	index := make(map[string]int, len(current))
	for _, f := range current {
		index[f.Key()] = len(merged)
		merged = append(merged, f)
	}
	for _, f := range picked {
		if i, ok := index[f.Key()]; ok {
			merged[i] = f
			continue
		}
		index[f.Key()] = len(merged)
		merged = append(merged, f)
	}
	return merged
}

// RemoveFileAt drops one entry of the selection, keeping order.
func RemoveFileAt(files []PickedFile, idx int) []PickedFile {
	if idx < 0 || idx >= len(files) {
		return files
	}
	out := make([]PickedFile, 0, len(files)-1)
	out = append(out, files[:idx]...)
	out = append(out, files[idx+1:]...)
	return out
}
