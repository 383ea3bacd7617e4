package goal

// Level is the time horizon of a goal.
type Level string

const (
	LevelVision    Level = "VISION"
	LevelYearly    Level = "YEARLY"
	LevelQuarterly Level = "QUARTERLY"
	LevelMonthly   Level = "MONTHLY"
	LevelWeekly    Level = "WEEKLY"
)

// HorizonDays is the default length of a goal of this level, used when no
// explicit dates were found. Unknown levels get the monthly horizon.
func (l Level) HorizonDays() int {
	switch l {
	case LevelVision:
		return 365 * 5
	case LevelYearly:
		return 365
	case LevelQuarterly:
		return 90
	case LevelWeekly:
		return 7
	default:
		return 30
	}
}

// Status is the lifecycle state of a goal.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusArchived  Status = "ARCHIVED"
)

const (
	DefaultPriority = 5
	MinPriority     = 1
	MaxPriority     = 10
	DefaultWeight   = 1.0
)

// Metric is an unresolved success-metric candidate. Target and Unit are
// always nil when produced by the extractor.
type Metric struct {
	Description string   `json:"description"`
	Target      *float64 `json:"target"`
	Unit        *string  `json:"unit"`
}

// StructuredGoal is a goal proposal extracted from one chat turn. It is not
// persisted here; callers decide whether to store it.
type StructuredGoal struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Level       Level    `json:"level"`
	Status      Status   `json:"status"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Metrics     []Metric `json:"metrics"`
	Resources   []any    `json:"resources"`
	Priority    int      `json:"priority"`
	Weight      float64  `json:"weight"`
}
