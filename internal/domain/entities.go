package domain

import "time"

const SettingInstalledDefaults = "installed_defaults"

type Service struct {
	ID          int64     `db:"id"`
	Slug        string    `db:"slug"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

func (s Service) ResourcePath() string {
	return "/services/" + s.Slug
}

type Status struct {
	ID          int64     `db:"id"`
	Slug        string    `db:"slug"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Image       string    `db:"image"`
	Severity    int       `db:"severity"`
	CreatedAt   time.Time `db:"created_at"`
}

func (s Status) ResourcePath() string {
	return "/statuses/" + s.Slug
}

func (s Status) ImagePath() string {
	return "/images/status/" + s.Image + ".png"
}

// Level returns the catalog level for the status severity, empty if none matches.
func (s Status) Level() Level {
	l, _ := LevelOf(s.Severity)
	return l
}

// Event is an append-only status change of one Service. Status and Service
// are resolved by the repository when the event is read.
type Event struct {
	ID            int64
	SID           string
	Start         time.Time
	Informational bool
	Message       string
	Status        Status
	Service       Service
}

func (e Event) ResourcePath() string {
	return e.Service.ResourcePath() + "/events/" + e.SID
}

type Setting struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// Profile holds API credentials. Secret is only ever stored as a bcrypt hash.
type Profile struct {
	ID         int64     `db:"id"`
	Owner      string    `db:"owner"`
	Token      string    `db:"token"`
	SecretHash string    `db:"secret_hash"`
	CreatedAt  time.Time `db:"created_at"`
}

// DefaultStatuses are seeded on first start.
func DefaultStatuses() []Status {
	return []Status{
		{
			Name:        "Down",
			Slug:        "down",
			Image:       "cross-circle",
			Severity:    LevelError.Severity(),
			Description: "The service is currently down",
		},
		{
			Name:        "Up",
			Slug:        "up",
			Image:       "tick-circle",
			Severity:    LevelNormal.Severity(),
			Description: "The service is up",
		},
		{
			Name:        "Warning",
			Slug:        "warning",
			Image:       "exclamation",
			Severity:    LevelWarning.Severity(),
			Description: "The service is experiencing intermittent problems",
		},
	}
}

// StatusImages is the icon set offered for statuses.
var StatusImages = []string{
	"tick-circle", "cross-circle", "exclamation", "wrench", "flag",
	"clock", "heart", "hard-hat", "information", "lock",
	"plug", "question", "traffic-cone", "bug", "broom",
}
