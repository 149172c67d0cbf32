package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/interiorpro/adminconsole/internal/domain"
	"github.com/interiorpro/adminconsole/internal/store"
)

// Form field order. Brand and category are enum selectors; the rest
// are free-text inputs.
const (
	fieldName = iota
	fieldPrice
	fieldBrand
	fieldCategory
	fieldDescription
	fieldImage
	fieldVideo
	fieldCount
)

// formModel is the create/edit product form. Image and video fields
// accept either a URL or a local file path; ctrl+o uploads the file at
// the path and replaces the field with the returned URL.
type formModel struct {
	inputs  [fieldCount]textinput.Model
	brand   int // index into domain.Brands, -1 when unset
	categ   int // index into domain.Categories, -1 when unset
	focus   int
	editing bool
}

func newFormModel(d *store.Draft) formModel {
	m := formModel{brand: -1, categ: -1, editing: d.Mode == store.DraftEditing}
	mk := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		return ti
	}
	m.inputs[fieldName] = mk("Product name", 200)
	m.inputs[fieldPrice] = mk("0.00", 20)
	m.inputs[fieldDescription] = mk("Enter product description...", 500)
	m.inputs[fieldImage] = mk("URL, or local path + ctrl+o to upload", 1024)
	m.inputs[fieldVideo] = mk("URL, or local path + ctrl+o to upload", 1024)

	m.inputs[fieldName].SetValue(d.Name)
	m.inputs[fieldPrice].SetValue(d.PriceText)
	m.inputs[fieldDescription].SetValue(d.Description)
	m.inputs[fieldImage].SetValue(d.ImageURL)
	m.inputs[fieldVideo].SetValue(d.VideoURL)
	m.brand = indexOf(domain.Brands, d.Brand)
	m.categ = indexOf(domain.Categories, d.Category)

	m.inputs[fieldName].Focus()
	return m
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return -1
}

// syncDraft writes the form state back into the draft.
func (m *formModel) syncDraft(d *store.Draft) {
	d.Name = m.inputs[fieldName].Value()
	d.PriceText = m.inputs[fieldPrice].Value()
	d.Description = m.inputs[fieldDescription].Value()
	d.ImageURL = m.inputs[fieldImage].Value()
	d.VideoURL = m.inputs[fieldVideo].Value()
	if m.brand >= 0 {
		d.Brand = domain.Brands[m.brand]
	} else {
		d.Brand = ""
	}
	if m.categ >= 0 {
		d.Category = domain.Categories[m.categ]
	} else {
		d.Category = ""
	}
}

func (m *formModel) setFocus(focus int) tea.Cmd {
	m.focus = focus
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	switch focus {
	case fieldBrand, fieldCategory:
		return nil
	default:
		return m.inputs[focus].Focus()
	}
}

func (m formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.NextField):
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case key.Matches(keyMsg, keys.PrevField):
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case key.Matches(keyMsg, keys.CycleOpt):
			step := 1
			if keyMsg.String() == "left" {
				step = -1
			}
			switch m.focus {
			case fieldBrand:
				m.brand = cycle(m.brand, len(domain.Brands), step)
				return m, nil
			case fieldCategory:
				m.categ = cycle(m.categ, len(domain.Categories), step)
				return m, nil
			}
		}
	}
	switch m.focus {
	case fieldBrand, fieldCategory:
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func cycle(current, n, step int) int {
	if current < 0 {
		if step > 0 {
			return 0
		}
		return n - 1
	}
	return ((current+step)%n + n) % n
}

// uploadTarget returns the asset field the focus is on, if any, and
// the path text entered there.
func (m formModel) uploadTarget() (field int, path string, ok bool) {
	switch m.focus {
	case fieldImage, fieldVideo:
		return m.focus, strings.TrimSpace(m.inputs[m.focus].Value()), true
	}
	return 0, "", false
}

func (m formModel) view(uploading, submitting bool) string {
	title := "Add New Product"
	if m.editing {
		title = "Edit Product"
	}

	label := func(field int, text string) string {
		if field == m.focus {
			return focusedLabelStyle.Render(text)
		}
		return labelStyle.Render(text)
	}
	selector := func(field int, options []string, idx int) string {
		value := "‹ select ›"
		if idx >= 0 {
			value = "‹ " + options[idx] + " ›"
		}
		if field == m.focus {
			return selectedRowStyle.Render(value)
		}
		return value
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(label(fieldName, "Name *") + m.inputs[fieldName].View() + "\n")
	b.WriteString(label(fieldPrice, "Price *") + m.inputs[fieldPrice].View() + "\n")
	b.WriteString(label(fieldBrand, "Brand *") + selector(fieldBrand, domain.Brands, m.brand) + "\n")
	b.WriteString(label(fieldCategory, "Category *") + selector(fieldCategory, domain.Categories, m.categ) + "\n")
	b.WriteString(label(fieldDescription, "Description") + m.inputs[fieldDescription].View() + "\n")
	b.WriteString(label(fieldImage, "Image") + m.inputs[fieldImage].View() + "\n")
	b.WriteString(label(fieldVideo, "Video") + m.inputs[fieldVideo].View() + "\n\n")

	switch {
	case uploading:
		b.WriteString(statStyle.Render("Uploading..."))
	case submitting:
		b.WriteString(statStyle.Render("Saving..."))
	default:
		b.WriteString(helpStyle.Render("enter: save • esc: cancel • tab: next • ←/→: choose • ctrl+o: upload"))
	}
	return overlayStyle.Render(b.String())
}
