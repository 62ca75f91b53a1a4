package fluentval

import (
	"fmt"
	"time"
)

// Date rules operate on time.Time values (or pointers to them). Any other
// shape fails. "Now" is read per evaluation, so validators stay reusable
// across requests.

// IsInPast requires a timestamp strictly before now.
func (c *RuleChain[T]) IsInPast() ChainStep[T] {
	return c.add(func(v value) bool {
		return v.shape == shapeTime && v.when.Before(time.Now())
	}, "must be in the past")
}

// IsInFuture requires a timestamp strictly after now.
func (c *RuleChain[T]) IsInFuture() ChainStep[T] {
	return c.add(func(v value) bool {
		return v.shape == shapeTime && v.when.After(time.Now())
	}, "must be in the future")
}

// IsToday requires the timestamp to fall on the current calendar day in the
// value's own location.
func (c *RuleChain[T]) IsToday() ChainStep[T] {
	return c.add(func(v value) bool {
		if v.shape != shapeTime {
			return false
		}
		y1, m1, d1 := v.when.Date()
		y2, m2, d2 := time.Now().In(v.when.Location()).Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	}, "must be today")
}

// MinAge requires a birth date at least years old, counted in whole calendar
// years.
func (c *RuleChain[T]) MinAge(years int) ChainStep[T] {
	return c.add(func(v value) bool {
		return v.shape == shapeTime && ageInYears(v.when, time.Now()) >= years
	}, fmt.Sprintf("must be at least %d years old", years))
}

// MaxAge requires a birth date at most years old.
func (c *RuleChain[T]) MaxAge(years int) ChainStep[T] {
	return c.add(func(v value) bool {
		return v.shape == shapeTime && ageInYears(v.when, time.Now()) <= years
	}, fmt.Sprintf("must be at most %d years old", years))
}

// ageInYears counts completed calendar years between birth and now, backing
// off one year when the birthday has not yet occurred this year.
func ageInYears(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

// IsAfter requires a timestamp strictly after ref.
func (c *RuleChain[T]) IsAfter(ref time.Time) ChainStep[T] {
	return c.add(func(v value) bool {
		return v.shape == shapeTime && v.when.After(ref)
	}, fmt.Sprintf("must be after %s", ref.Format("2006-01-02")))
}

// IsBefore requires a timestamp strictly before ref.
func (c *RuleChain[T]) IsBefore(ref time.Time) ChainStep[T] {
	return c.add(func(v value) bool {
		return v.shape == shapeTime && v.when.Before(ref)
	}, fmt.Sprintf("must be before %s", ref.Format("2006-01-02")))
}

// IsBetweenDates requires start <= value <= end.
func (c *RuleChain[T]) IsBetweenDates(start, end time.Time) ChainStep[T] {
	return c.add(func(v value) bool {
		if v.shape != shapeTime {
			return false
		}
		return !v.when.Before(start) && !v.when.After(end)
	}, fmt.Sprintf("must be between %s and %s", start.Format("2006-01-02"), end.Format("2006-01-02")))
}

// IsWeekday requires a Monday through Friday date.
func (c *RuleChain[T]) IsWeekday() ChainStep[T] {
	return c.add(func(v value) bool {
		if v.shape != shapeTime {
			return false
		}
		wd := v.when.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	}, "must be a weekday (Monday-Friday)")
}

// IsWeekend requires a Saturday or Sunday date.
func (c *RuleChain[T]) IsWeekend() ChainStep[T] {
	return c.add(func(v value) bool {
		if v.shape != shapeTime {
			return false
		}
		wd := v.when.Weekday()
		return wd == time.Saturday || wd == time.Sunday
	}, "must be a weekend day (Saturday or Sunday)")
}
