package console

import (
	"strings"
	"time"
)

// toast lifetimes follow the dashboard conventions: informational
// toasts fade quickly, warnings and errors linger a little longer,
// loading toasts stay until resolved.
func toastTTL(level ToastLevel) time.Duration {
	switch level {
	case ToastWarning, ToastError:
		return 4 * time.Second
	case ToastLoading:
		return 0
	default:
		return 3 * time.Second
	}
}

type activeToast struct {
	Toast
	expires time.Time
}

// toastModel is the newest-on-top toast area of the view.
type toastModel struct {
	items []activeToast
}

// add appends a toast. A terminal toast resolves the most recent
// loading toast in place, mirroring the update-in-place loading
// pattern of the dashboard.
func (m *toastModel) add(t Toast, now time.Time) {
	var expires time.Time
	if ttl := toastTTL(t.Level); ttl > 0 {
		expires = now.Add(ttl)
	}
	item := activeToast{Toast: t, expires: expires}
	if t.Level != ToastLoading {
		for i := len(m.items) - 1; i >= 0; i-- {
			if m.items[i].Level == ToastLoading {
				m.items[i] = item
				return
			}
		}
	}
	m.items = append(m.items, item)
}

// expire drops toasts whose lifetime has passed.
func (m *toastModel) expire(now time.Time) {
	kept := m.items[:0]
	for _, t := range m.items {
		if t.expires.IsZero() || now.Before(t.expires) {
			kept = append(kept, t)
		}
	}
	m.items = kept
}

func (m *toastModel) active() bool { return len(m.items) > 0 }

func (m *toastModel) view() string {
	if len(m.items) == 0 {
		return ""
	}
	var b strings.Builder
	// Newest first.
	for i := len(m.items) - 1; i >= 0; i-- {
		t := m.items[i]
		style := toastStyles[t.Level]
		prefix := "•"
		if t.Level == ToastLoading {
			prefix = "…"
		}
		b.WriteString(style.Render(prefix + " " + t.Text))
		if i > 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
