package birthday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestIsWithinWindow(t *testing.T) {
	tests := []struct {
		name   string
		today  time.Time
		month  int
		day    int
		before int
		after  int
		want   bool
	}{
		{
			name:  "anniversary itself is always inside",
			today: date(2023, time.June, 20),
			month: 6, day: 20, before: 7, after: 2,
			want: true,
		},
		{
			name:  "anniversary inside even with zero offsets",
			today: date(2023, time.June, 20),
			month: 6, day: 20, before: 0, after: 0,
			want: true,
		},
		{
			name:  "day before anniversary with zero offsets",
			today: date(2023, time.June, 19),
			month: 6, day: 20, before: 0, after: 0,
			want: false,
		},
		{
			name:  "day after anniversary with zero offsets",
			today: date(2023, time.June, 21),
			month: 6, day: 20, before: 0, after: 0,
			want: false,
		},
		{
			name:  "window opening day is excluded",
			today: date(2023, time.June, 13),
			month: 6, day: 20, before: 7, after: 2,
			want: false,
		},
		{
			name:  "first day inside the window",
			today: date(2023, time.June, 14),
			month: 6, day: 20, before: 7, after: 2,
			want: true,
		},
		{
			name:  "retention boundary day is included",
			today: date(2023, time.June, 22),
			month: 6, day: 20, before: 7, after: 2,
			want: true,
		},
		{
			name:  "day past the retention boundary is excluded",
			today: date(2023, time.June, 23),
			month: 6, day: 20, before: 7, after: 2,
			want: false,
		},
		{
			name:  "long before the window",
			today: date(2023, time.June, 16),
			month: 1, day: 7, before: 7, after: 2,
			want: false,
		},
		{
			name:  "december birthday seen from inside december window",
			today: date(2023, time.December, 25),
			month: 12, day: 30, before: 7, after: 2,
			want: true,
		},
		{
			name:  "january birthday seen from late december",
			today: date(2023, time.December, 30),
			month: 1, day: 3, before: 7, after: 2,
			want: true,
		},
		{
			name:  "january birthday seen from early january",
			today: date(2024, time.January, 1),
			month: 1, day: 3, before: 7, after: 2,
			want: true,
		},
		{
			name:  "january birthday trailing edge across new year",
			today: date(2024, time.January, 5),
			month: 1, day: 3, before: 7, after: 2,
			want: true,
		},
		{
			name:  "january birthday past trailing edge across new year",
			today: date(2024, time.January, 6),
			month: 1, day: 3, before: 7, after: 2,
			want: false,
		},
		{
			name:  "december birthday trailing edge reaches into january",
			today: date(2024, time.January, 1),
			month: 12, day: 30, before: 7, after: 2,
			want: true,
		},
		{
			name:  "december birthday not re-opened right after its window",
			today: date(2024, time.January, 2),
			month: 12, day: 30, before: 7, after: 2,
			want: false,
		},
		{
			name:  "feb 29 birthday observed on feb 28 in a non-leap year",
			today: date(2023, time.February, 28),
			month: 2, day: 29, before: 0, after: 0,
			want: true,
		},
		{
			name:  "feb 29 birthday not observed on mar 1 in a non-leap year",
			today: date(2023, time.March, 1),
			month: 2, day: 29, before: 0, after: 0,
			want: false,
		},
		{
			name:  "feb 29 birthday observed on feb 29 in a leap year",
			today: date(2024, time.February, 29),
			month: 2, day: 29, before: 0, after: 0,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsWithinWindow(tt.today, tt.month, tt.day, tt.before, tt.after)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsWithinWindowIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2023, time.June, 22, 23, 30, 0, 0, time.UTC)
	assert.True(t, IsWithinWindow(today, 6, 20, 7, 2))
}

func TestIsAnniversary(t *testing.T) {
	assert.True(t, IsAnniversary(date(2023, time.June, 20), 6, 20))
	assert.False(t, IsAnniversary(date(2023, time.June, 21), 6, 20))
	assert.False(t, IsAnniversary(date(2024, time.June, 19), 6, 20))

	// Feb 29 is observed on Feb 28 outside leap years.
	assert.True(t, IsAnniversary(date(2023, time.February, 28), 2, 29))
	assert.False(t, IsAnniversary(date(2023, time.March, 1), 2, 29))
	assert.True(t, IsAnniversary(date(2024, time.February, 29), 2, 29))
	assert.False(t, IsAnniversary(date(2024, time.February, 28), 2, 29))
}

func TestDaysPastAnniversary(t *testing.T) {
	assert.Equal(t, 0, DaysPastAnniversary(date(2023, time.June, 20), 6, 20))
	assert.Equal(t, 2, DaysPastAnniversary(date(2023, time.June, 22), 6, 20))

	// Before this year's occurrence the count runs from last year's.
	assert.Equal(t, 2, DaysPastAnniversary(date(2024, time.January, 1), 12, 30))
	assert.Equal(t, 364, DaysPastAnniversary(date(2023, time.June, 19), 6, 20))
}
