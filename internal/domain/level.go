package domain

// Level is a severity class a Status belongs to. The catalog is closed.
type Level string

const (
	LevelNormal   Level = "NORMAL"
	LevelWarning  Level = "WARNING"
	LevelError    Level = "ERROR"
	LevelCritical Level = "CRITICAL"
)

// Ordered ascending by severity.
var levelTable = []struct {
	level    Level
	severity int
}{
	{LevelNormal, 10},
	{LevelWarning, 30},
	{LevelError, 40},
	{LevelCritical, 50},
}

// Levels returns every level name sorted by ascending severity.
func Levels() []Level {
	levels := make([]Level, 0, len(levelTable))
	for _, l := range levelTable {
		levels = append(levels, l.level)
	}
	return levels
}

// SeverityOf returns the severity of the named level, false if the name is unknown.
func SeverityOf(name string) (int, bool) {
	for _, l := range levelTable {
		if string(l.level) == name {
			return l.severity, true
		}
	}
	return 0, false
}

// LevelOf returns the level whose severity is exactly severity.
func LevelOf(severity int) (Level, bool) {
	for _, l := range levelTable {
		if l.severity == severity {
			return l.level, true
		}
	}
	return "", false
}

func (l Level) Severity() int {
	s, _ := SeverityOf(string(l))
	return s
}

func (l Level) IsValid() bool {
	_, ok := SeverityOf(string(l))
	return ok
}

func (l Level) String() string {
	return string(l)
}
