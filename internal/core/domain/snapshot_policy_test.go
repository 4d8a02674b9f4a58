package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mvnconf/internal/core/domain"
)

func TestParseSnapshotPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  domain.SnapshotPolicy
	}{
		{input: "daily", want: domain.SnapshotPolicy{Kind: domain.SnapshotDaily}},
		{input: "never", want: domain.SnapshotPolicy{Kind: domain.SnapshotNever}},
		{input: "always", want: domain.SnapshotPolicy{Kind: domain.SnapshotAlways}},
		{input: "interval:1", want: domain.SnapshotPolicy{Kind: domain.SnapshotInterval, Minutes: 1}},
		{input: "interval:90", want: domain.SnapshotPolicy{Kind: domain.SnapshotInterval, Minutes: 90}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := domain.ParseSnapshotPolicy(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestParseSnapshotPolicy_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "weekly", "Daily", "interval:", "interval:0", "interval:-5", "interval:x", "interval 5"} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := domain.ParseSnapshotPolicy(input)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrInvalidSnapshotPolicy.Error())
		})
	}
}

func TestSnapshotPolicy_Interval(t *testing.T) {
	t.Parallel()

	d, ok := domain.SnapshotPolicy{Kind: domain.SnapshotDaily}.Interval()
	assert.True(t, ok)
	assert.Equal(t, 24*time.Hour, d)

	d, ok = domain.SnapshotPolicy{Kind: domain.SnapshotInterval, Minutes: 30}.Interval()
	assert.True(t, ok)
	assert.Equal(t, 30*time.Minute, d)

	d, ok = domain.SnapshotPolicy{Kind: domain.SnapshotAlways}.Interval()
	assert.True(t, ok)
	assert.Zero(t, d)

	_, ok = domain.SnapshotPolicy{Kind: domain.SnapshotNever}.Interval()
	assert.False(t, ok)
}

func TestSnapshotPolicy_UpdateDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		policy domain.SnapshotPolicy
		last   time.Time
		want   bool
	}{
		{
			name:   "daily checked today",
			policy: domain.SnapshotPolicy{Kind: domain.SnapshotDaily},
			last:   now.Add(-8 * time.Hour),
			want:   false,
		},
		{
			name:   "daily checked yesterday evening",
			policy: domain.SnapshotPolicy{Kind: domain.SnapshotDaily},
			last:   now.Add(-10 * time.Hour),
			want:   true,
		},
		{
			name:   "never",
			policy: domain.SnapshotPolicy{Kind: domain.SnapshotNever},
			last:   now.Add(-365 * 24 * time.Hour),
			want:   false,
		},
		{
			name:   "always",
			policy: domain.SnapshotPolicy{Kind: domain.SnapshotAlways},
			last:   now,
			want:   true,
		},
		{
			name:   "interval elapsed",
			policy: domain.SnapshotPolicy{Kind: domain.SnapshotInterval, Minutes: 30},
			last:   now.Add(-30 * time.Minute),
			want:   true,
		},
		{
			name:   "interval not elapsed",
			policy: domain.SnapshotPolicy{Kind: domain.SnapshotInterval, Minutes: 30},
			last:   now.Add(-29 * time.Minute),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.policy.UpdateDue(tt.last, now))
		})
	}
}
