package store

import (
	"strconv"
	"strings"

	"github.com/interiorpro/adminconsole/internal/domain"
)

// DraftMode tracks what the form draft is for.
type DraftMode int

const (
	// DraftClosed means no form is open.
	DraftClosed DraftMode = iota
	// DraftCreating is a new-product form.
	DraftCreating
	// DraftEditing is an edit of an existing id.
	DraftEditing
)

// Draft is the UI-owned scratch copy of a product's editable fields.
// Price is kept as entered text until validation so the form can hold
// partial input. The draft is discarded after a successful submit,
// cancel, or close.
type Draft struct {
	Mode        DraftMode
	ID          domain.ID
	Name        string
	PriceText   string
	Brand       string
	Category    string
	Description string
	ImageURL    string
	VideoURL    string
}

// BeginCreate resets the draft into create mode.
func (d *Draft) BeginCreate() {
	*d = Draft{Mode: DraftCreating}
}

// BeginEdit pre-fills the draft from an existing product.
func (d *Draft) BeginEdit(p domain.Product) {
	*d = Draft{
		Mode:        DraftEditing,
		ID:          p.ID,
		Name:        p.Name,
		PriceText:   strconv.FormatFloat(p.Price, 'f', -1, 64),
		Brand:       p.Brand,
		Category:    p.Category,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		VideoURL:    p.VideoURL,
	}
}

// Reset discards the draft.
func (d *Draft) Reset() {
	*d = Draft{}
}

// Fields validates the required fields and returns the submittable
// field set. Name, price, brand, and category must be non-empty; the
// price must parse as a non-negative number.
func (d *Draft) Fields() (domain.Fields, error) {
	if strings.TrimSpace(d.Name) == "" ||
		strings.TrimSpace(d.PriceText) == "" ||
		d.Brand == "" || d.Category == "" {
		return domain.Fields{}, domain.E(domain.KindValidation,
			"Please fill in all required fields!")
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(d.PriceText), 64)
	if err != nil || price < 0 {
		return domain.Fields{}, domain.E(domain.KindValidation,
			"Price must be a non-negative number")
	}
	return domain.Fields{
		Name:        strings.TrimSpace(d.Name),
		Price:       price,
		Brand:       d.Brand,
		Category:    d.Category,
		Description: strings.TrimSpace(d.Description),
		ImageURL:    strings.TrimSpace(d.ImageURL),
		VideoURL:    strings.TrimSpace(d.VideoURL),
	}, nil
}
