package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Innings holds innings pitched as a true decimal (182.1 in baseball
// notation parses to 182 + 1/3). The sim's exports use the notation form,
// sometimes quoted, sometimes as a bare number; marshaling always renders
// the notation so downstream consumers see what a box score would show.
type Innings float64

// ParseInnings converts baseball thirds notation ("182.1", "0.2") or a
// plain decimal string into an Innings value. The digit after the dot is
// outs recorded, never a decimal fraction.
func ParseInnings(s string) (Innings, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	whole, frac, found := strings.Cut(s, ".")
	if !found {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("parse innings %q: %w", s, err)
		}
		return Innings(n), nil
	}
	w, err := strconv.ParseFloat(whole, 64)
	if err != nil {
		return 0, fmt.Errorf("parse innings %q: %w", s, err)
	}
	switch frac {
	case "0":
		return Innings(w), nil
	case "1":
		return Innings(w + 1.0/3.0), nil
	case "2":
		return Innings(w + 2.0/3.0), nil
	}
	// Not thirds notation; treat as an ordinary decimal.
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse innings %q: %w", s, err)
	}
	return Innings(n), nil
}

// String renders thirds notation: 182.333... -> "182.1".
func (i Innings) String() string {
	whole := math.Floor(float64(i))
	outs := int(math.Round((float64(i) - whole) * 3))
	if outs >= 3 {
		whole++
		outs = 0
	}
	return fmt.Sprintf("%d.%d", int64(whole), outs)
}

// MarshalJSON renders the notation as a JSON string.
func (i Innings) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// UnmarshalJSON accepts a native number, a quoted notation string, or a
// quoted plain decimal. Exports disagree on which they emit.
func (i *Innings) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := ParseInnings(s)
		if err != nil {
			return err
		}
		*i = v
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*i = Innings(n)
	return nil
}
