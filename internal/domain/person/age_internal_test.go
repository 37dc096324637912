package person

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeAt(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		today time.Time
		want  int
	}{
		{"birthday today", date(1990, time.June, 15), date(2020, time.June, 15), 30},
		{"day before birthday", date(1990, time.June, 15), date(2020, time.June, 14), 29},
		{"day after birthday", date(1990, time.June, 15), date(2020, time.June, 16), 30},
		{"earlier month", date(1990, time.June, 15), date(2020, time.March, 20), 29},
		{"later month", date(1990, time.June, 15), date(2020, time.September, 1), 30},
		{"same day", date(2020, time.June, 15), date(2020, time.June, 15), 0},
		{"leap day birth, non-leap year before Mar 1", date(2000, time.February, 29), date(2021, time.February, 28), 20},
		{"leap day birth, non-leap year on Mar 1", date(2000, time.February, 29), date(2021, time.March, 1), 21},
		{"leap day birth, leap year on Feb 29", date(2000, time.February, 29), date(2024, time.February, 29), 24},
		{"dec 31 birth on jan 1", date(1999, time.December, 31), date(2000, time.January, 1), 0},
		{"future birth", date(2021, time.January, 1), date(2020, time.June, 15), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ageAt(tt.birth, tt.today))
		})
	}
}
