package domain_test

import (
	"testing"

	"github.com/smulube/stashboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	assert.Equal(t,
		[]domain.Level{domain.LevelNormal, domain.LevelWarning, domain.LevelError, domain.LevelCritical},
		domain.Levels(),
	)
}

func TestLevel_RoundTrip(t *testing.T) {
	for _, l := range domain.Levels() {
		severity, ok := domain.SeverityOf(string(l))
		assert.True(t, ok)

		got, ok := domain.LevelOf(severity)
		assert.True(t, ok)
		assert.Equal(t, l, got)
	}

	for _, severity := range []int{10, 30, 40, 50} {
		l, ok := domain.LevelOf(severity)
		assert.True(t, ok)

		got, ok := domain.SeverityOf(string(l))
		assert.True(t, ok)
		assert.Equal(t, severity, got)
	}
}

func TestLevel_Unknown(t *testing.T) {
	testCases := []struct {
		name     string
		level    string
		severity int
	}{
		{name: "empty", level: "", severity: 0},
		{name: "lowercase", level: "normal", severity: 20},
		{name: "unknown", level: "FATAL", severity: 60},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := domain.SeverityOf(tc.level)
			assert.False(t, ok)

			_, ok = domain.LevelOf(tc.severity)
			assert.False(t, ok)

			assert.False(t, domain.Level(tc.level).IsValid())
		})
	}
}

func TestDefaultStatuses(t *testing.T) {
	statuses := domain.DefaultStatuses()
	assert.Len(t, statuses, 3)

	normal := 0
	for _, st := range statuses {
		assert.True(t, st.Level().IsValid())
		if st.Level() == domain.LevelNormal {
			normal++
			assert.Equal(t, "up", st.Slug)
		}
	}
	assert.Equal(t, 1, normal)
}
