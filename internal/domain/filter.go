package domain

// Predicate decides whether a single event passes a filter. Predicates are
// built by the constructors below and composed by sequential EventList.Filter
// calls; applying several yields the intersection in original order.
type Predicate func(Event) bool

// WithinDays returns a predicate that keeps events whose last update is at
// most days calendar days before the current date. Negative values keep
// nothing.
func WithinDays(days int) Predicate {
	today := dateOnly(clock.Now())
	return func(e Event) bool {
		if days < 0 {
			return false
		}
		age := int(today.Sub(dateOnly(e.Date)).Hours() / 24)
		return age >= 0 && age <= days
	}
}

// InCategory returns a predicate that keeps events of exactly the given
// category.
func InCategory(c Category) Predicate {
	return func(e Event) bool {
		return e.Category == c
	}
}

// WithAlert returns a predicate that keeps events with exactly the given
// alert level.
func WithAlert(level AlertLevel) Predicate {
	return func(e Event) bool {
		return e.Alert == level
	}
}
