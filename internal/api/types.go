package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Level is a randomly selected course. SMM1 responses only fill the common
// fields; the remainder stay at their zero values.
type Level struct {
	ID         string    `json:"id"`
	Year       int64     `json:"year"`
	Title      string    `json:"title"`
	UploadedAt Timestamp `json:"uploaded_at"`
	Attempts   int64     `json:"attempts"`
	Footprints int64     `json:"footprints"`
	Likes      int64     `json:"likes"`

	Description             *string  `json:"description,omitempty"`
	ClearcheckMs            int64    `json:"clearcheck_ms,omitempty"`
	Boos                    int64    `json:"boos,omitempty"`
	Comments                int64    `json:"comments,omitempty"`
	ClearCondition          *int64   `json:"clear_condition,omitempty"`
	ClearConditionMagnitude *int64   `json:"clear_condition_magnitude,omitempty"`
	Style                   string   `json:"style,omitempty"`
	Theme                   string   `json:"theme,omitempty"`
	Tags                    []string `json:"tags,omitempty"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp accepts full RFC 3339 timestamps as well as bare dates, which
// the SMM1 catalogue uses.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("timestamp: unrecognised format %q", raw)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

type markClearedRequest struct {
	LevelID string `json:"level_id"`
	Source  string `json:"source,omitempty"`
}
