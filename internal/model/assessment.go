package model

// swagger:model AnswerOption
type AnswerOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// swagger:model Question
type Question struct {
	ID      string         `json:"id"`
	Order   int            `json:"order"`
	Prompt  string         `json:"prompt"`
	Options []AnswerOption `json:"options"`
}

// Accepts 判断取值是否属于该题的选项集合
func (q Question) Accepts(value int) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// swagger:model ScoreResult
type ScoreResult struct {
	RawScore           int     `json:"rawScore"`
	MaxScore           int     `json:"maxScore"`
	WellnessPercentage float64 `json:"wellnessPercentage"`
	DisplayScore       int     `json:"displayScore"`
	Band               string  `json:"band"`
}

type ProgramVariant string

const (
	ProgramMaintenance      ProgramVariant = "maintenance"
	ProgramStressManagement ProgramVariant = "stress_management"
	ProgramIntensiveSupport ProgramVariant = "intensive_support"
)

func (v ProgramVariant) Valid() bool {
	switch v {
	case ProgramMaintenance, ProgramStressManagement, ProgramIntensiveSupport:
		return true
	}
	return false
}

// swagger:model ProgramRecommendation
type ProgramRecommendation struct {
	Variant     ProgramVariant `json:"variant"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Focus       []string       `json:"focus"`
	Insight     string         `json:"insight"`
}

// AssessmentOutcome 评估完成后交给展示层的结果
type AssessmentOutcome struct {
	Score          ScoreResult           `json:"score"`
	Recommendation ProgramRecommendation `json:"recommendation"`
}
