package course

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UnmarshalJSON re-hydrates createdAt and lastAccessed into time.Time.  The
// stored form is an RFC3339 string; epoch milliseconds and empty values are
// accepted too so records written by older clients still load.
func (c *Course) UnmarshalJSON(data []byte) error {
	type plain Course
	aux := struct {
		*plain
		CreatedAt    json.RawMessage `json:"createdAt"`
		LastAccessed json.RawMessage `json:"lastAccessed"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	created, err := parseTime(aux.CreatedAt)
	if err != nil {
		return fmt.Errorf("createdAt: %w", err)
	}
	if created != nil {
		c.CreatedAt = *created
	} else {
		c.CreatedAt = time.Time{}
	}

	last, err := parseTime(aux.LastAccessed)
	if err != nil {
		return fmt.Errorf("lastAccessed: %w", err)
	}
	c.LastAccessed = last
	return nil
}

func parseTime(raw json.RawMessage) (*time.Time, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" || s == `""` {
		return nil, nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, str)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unsupported time value %s", s)
	}
	t := time.UnixMilli(ms).UTC()
	return &t, nil
}
