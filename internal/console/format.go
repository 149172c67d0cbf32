package console

import (
	"fmt"
	"math"
	"time"

	"github.com/interiorpro/adminconsole/internal/domain"
)

// formatCreated renders a creation timestamp as a relative label.
// A missing timestamp reads "Recently added". The label is cosmetic
// only; the sort policy still treats the product as oldest.
func formatCreated(t domain.Timestamp, now time.Time) string {
	if t.IsZero() {
		return "Recently added"
	}
	diffDays := int(math.Ceil(now.Sub(t.Time).Abs().Hours() / 24))
	switch {
	case diffDays <= 1:
		return "Today"
	case diffDays == 2:
		return "Yesterday"
	case diffDays <= 7:
		return fmt.Sprintf("%d days ago", diffDays-1)
	default:
		return t.Time.Format("2006-01-02")
	}
}

// formatPrice renders a price the way the dashboard shows it.
func formatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}
