package domain

import (
	"strconv"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// SnapshotPolicyKind enumerates the shapes a snapshot policy can take.
type SnapshotPolicyKind int

const (
	// SnapshotDaily re-checks snapshots once a day.
	SnapshotDaily SnapshotPolicyKind = iota
	// SnapshotNever serves snapshots from the local repository once present.
	SnapshotNever
	// SnapshotAlways re-checks snapshots on every resolution.
	SnapshotAlways
	// SnapshotInterval re-checks snapshots after a fixed number of minutes.
	SnapshotInterval
)

const intervalPrefix = "interval:"

// SnapshotPolicy is a parsed remote snapshot policy.
type SnapshotPolicy struct {
	Kind    SnapshotPolicyKind
	Minutes int
}

// ParseSnapshotPolicy parses daily, never, always or interval:<minutes>.
// Minutes must be a positive integer.
func ParseSnapshotPolicy(s string) (SnapshotPolicy, error) {
	switch s {
	case "daily":
		return SnapshotPolicy{Kind: SnapshotDaily}, nil
	case "never":
		return SnapshotPolicy{Kind: SnapshotNever}, nil
	case "always":
		return SnapshotPolicy{Kind: SnapshotAlways}, nil
	}

	raw, ok := strings.CutPrefix(s, intervalPrefix)
	if !ok {
		return SnapshotPolicy{}, zerr.With(ErrInvalidSnapshotPolicy, "policy", s)
	}

	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return SnapshotPolicy{}, zerr.With(zerr.Wrap(err, ErrInvalidSnapshotPolicy.Error()), "policy", s)
	}
	if minutes <= 0 {
		return SnapshotPolicy{}, zerr.With(ErrInvalidSnapshotPolicy, "policy", s)
	}

	return SnapshotPolicy{Kind: SnapshotInterval, Minutes: minutes}, nil
}

// Interval returns the time between two checks and false for SnapshotNever.
func (p SnapshotPolicy) Interval() (time.Duration, bool) {
	switch p.Kind {
	case SnapshotDaily:
		return 24 * time.Hour, true
	case SnapshotAlways:
		return 0, true
	case SnapshotInterval:
		return time.Duration(p.Minutes) * time.Minute, true
	default:
		return 0, false
	}
}

// UpdateDue reports whether a snapshot last checked at last must be checked
// again at now. A daily policy is due once the calendar day of now has started
// after last.
func (p SnapshotPolicy) UpdateDue(last, now time.Time) bool {
	if p.Kind == SnapshotDaily {
		y, m, d := now.Date()
		return last.Before(time.Date(y, m, d, 0, 0, 0, 0, now.Location()))
	}

	interval, ok := p.Interval()
	if !ok {
		return false
	}
	if interval == 0 {
		return true
	}
	return !now.Before(last.Add(interval))
}

// String returns the textual form accepted by ParseSnapshotPolicy.
func (p SnapshotPolicy) String() string {
	switch p.Kind {
	case SnapshotNever:
		return "never"
	case SnapshotAlways:
		return "always"
	case SnapshotInterval:
		return intervalPrefix + strconv.Itoa(p.Minutes)
	default:
		return "daily"
	}
}
