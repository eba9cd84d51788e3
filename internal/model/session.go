package model

import "time"

// AssessmentSession 单次评估会话，只存在于内存中
type AssessmentSession struct {
	ID           string    `json:"id"`
	CurrentIndex int       `json:"currentIndex"`
	Answers      []*int    `json:"answers"`
	StartedAt    time.Time `json:"startedAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AnswerSet 返回已作答的答案；存在未作答题目时 ok 为 false
func (s *AssessmentSession) AnswerSet() (answers []int, ok bool) {
	answers = make([]int, 0, len(s.Answers))
	for _, a := range s.Answers {
		if a == nil {
			return nil, false
		}
		answers = append(answers, *a)
	}
	return answers, true
}

// swagger:model SessionState
type SessionState struct {
	SessionID      string             `json:"sessionId,omitempty"`
	QuestionIndex  int                `json:"questionIndex"`
	TotalQuestions int                `json:"totalQuestions"`
	Progress       float64            `json:"progress"`
	Question       *Question          `json:"question,omitempty"`
	SelectedAnswer *int               `json:"selectedAnswer,omitempty"`
	Completed      bool               `json:"completed"`
	Outcome        *AssessmentOutcome `json:"outcome,omitempty"`
}
