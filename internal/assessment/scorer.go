package assessment

import (
	"errors"
	"fmt"
	"math"

	"mindmate_backend/internal/model"
)

// ErrIncompleteAssessment 答案数量与题目不符，或存在不在选项集合内的取值
var ErrIncompleteAssessment = errors.New("incomplete assessment")

// Scorer 将答案序列换算为原始分和健康百分比，无内部状态
type Scorer struct {
	questions []model.Question
}

func NewScorer(questions []model.Question) *Scorer {
	qs := make([]model.Question, len(questions))
	for i, q := range questions {
		q.Options = cloneOptions(q.Options)
		qs[i] = q
	}
	return &Scorer{questions: qs}
}

// Questions 返回量表副本
func (s *Scorer) Questions() []model.Question {
	out := make([]model.Question, len(s.questions))
	for i, q := range s.questions {
		q.Options = cloneOptions(q.Options)
		out[i] = q
	}
	return out
}

func (s *Scorer) NumQuestions() int {
	return len(s.questions)
}

func (s *Scorer) MaxScore() int {
	return len(s.questions) * MaxAnswerValue
}

// Validate 检查答案是否完整且每个取值都在对应题目的选项内
func (s *Scorer) Validate(answers []int) error {
	if len(answers) != len(s.questions) {
		return fmt.Errorf("%w: expected %d answers, got %d", ErrIncompleteAssessment, len(s.questions), len(answers))
	}
	for i, v := range answers {
		if !s.questions[i].Accepts(v) {
			return fmt.Errorf("%w: answer %d for question %q is not a valid option", ErrIncompleteAssessment, v, s.questions[i].ID)
		}
	}
	return nil
}

func (s *Scorer) Score(answers []int) (model.ScoreResult, error) {
	if err := s.Validate(answers); err != nil {
		return model.ScoreResult{}, err
	}

	raw := 0
	for _, v := range answers {
		raw += v
	}

	pct := WellnessPercentage(raw, s.MaxScore())
	return model.ScoreResult{
		RawScore:           raw,
		MaxScore:           s.MaxScore(),
		WellnessPercentage: pct,
		DisplayScore:       int(math.Round(pct)),
		Band:               WellnessBand(pct),
	}, nil
}

// WellnessPercentage = max(0, 100 - raw/max*100)
func WellnessPercentage(raw, maxScore int) float64 {
	if maxScore <= 0 {
		return 100
	}
	return math.Max(0, 100-float64(raw)/float64(maxScore)*100)
}

// WellnessBand 按百分比给出展示用的总体评价
func WellnessBand(pct float64) string {
	switch {
	case pct >= 80:
		return "Excellent mental wellness!"
	case pct >= 60:
		return "Good foundation with room for growth"
	case pct >= 40:
		return "Some areas need attention"
	default:
		return "Let's work together to improve your wellness"
	}
}
