package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// Brands is the selectable brand set for the product form. "Other" is
// the catch-all entry.
var Brands = []string{"AudioTech", "TechWear", "SportFit", "HomeEssentials", "BookWorld", "Other"}

// Categories is the selectable category set for the product form.
var Categories = []string{"Electronics", "Footwear", "Clothing", "Home", "Sports", "Books", "Other"}

// Product is a catalog entry as served by the product API. The ID is
// opaque and server-assigned; CreatedAt may be absent and is used for
// display ordering only.
type Product struct {
	ID          ID        `json:"product_id"`
	Name        string    `json:"product_name"`
	Price       float64   `json:"price_new"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`
	CreatedAt   Timestamp `json:"created_at,omitempty"`
}

// Fields are the editable attributes submitted on create and update.
type Fields struct {
	Name        string  `json:"product_name"`
	Price       float64 `json:"price_new"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	VideoURL    string  `json:"video_url"`
}

// ID is an opaque product identifier. Servers disagree on whether ids
// are JSON numbers or strings, so both are accepted on the wire.
type ID string

func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	// Numeric ids round-trip as numbers so the stub and real servers
	// see the same shape they produced.
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil && id != "" {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Timestamp is a creation time that tolerates the assorted string
// formats product services emit. The zero value means "unknown" and
// sorts as oldest.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp { return Timestamp{Time: t} }

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := dateparse.ParseAny(s)
	if err != nil {
		// An unparseable timestamp degrades to "unknown" rather than
		// failing the whole list decode.
		t.Time = time.Time{}
		return nil
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}
