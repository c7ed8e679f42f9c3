package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/epeers/portfoliocalc/internal/util"
)

// FlexibleDate is a JSON date accepting RFC3339 timestamps and every calendar
// date form util.ParseDate understands. It marshals as YYYY-MM-DD.
type FlexibleDate struct {
	time.Time
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexibleDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		f.Time = time.Time{}
		return nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		f.Time = t
		return nil
	}

	t, err := util.ParseDate(s)
	if err != nil {
		return err
	}
	f.Time = t
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexibleDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(util.FormatDate(f.Time))
}
