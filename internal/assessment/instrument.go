package assessment

import "mindmate_backend/internal/model"

// MaxAnswerValue 每道题的最高分值
const MaxAnswerValue = 3

var frequencyOptions = []model.AnswerOption{
	{Value: 0, Label: "Not at all"},
	{Value: 1, Label: "Several days"},
	{Value: 2, Label: "More than half the days"},
	{Value: 3, Label: "Nearly every day"},
}

// DefaultQuestions 返回内置的 7 题健康评估量表，每次调用返回新的副本
func DefaultQuestions() []model.Question {
	return []model.Question{
		{
			ID:      "mood",
			Order:   1,
			Prompt:  "Over the last 2 weeks, how often have you been bothered by feeling down, depressed, or hopeless?",
			Options: cloneOptions(frequencyOptions),
		},
		{
			ID:      "interest",
			Order:   2,
			Prompt:  "Over the last 2 weeks, how often have you been bothered by little interest or pleasure in doing things?",
			Options: cloneOptions(frequencyOptions),
		},
		{
			ID:      "anxiety",
			Order:   3,
			Prompt:  "Over the last 2 weeks, how often have you been bothered by feeling nervous, anxious, or on edge?",
			Options: cloneOptions(frequencyOptions),
		},
		{
			ID:      "worry",
			Order:   4,
			Prompt:  "Over the last 2 weeks, how often have you been bothered by not being able to stop or control worrying?",
			Options: cloneOptions(frequencyOptions),
		},
		{
			// 睡眠质量按从差到好排列，分值倒序
			ID:     "sleep",
			Order:  5,
			Prompt: "How would you rate your overall sleep quality?",
			Options: []model.AnswerOption{
				{Value: 3, Label: "Very poor"},
				{Value: 2, Label: "Poor"},
				{Value: 1, Label: "Good"},
				{Value: 0, Label: "Very good"},
			},
		},
		{
			ID:     "stress",
			Order:  6,
			Prompt: "How often do you feel overwhelmed by daily stress?",
			Options: []model.AnswerOption{
				{Value: 0, Label: "Never"},
				{Value: 1, Label: "Sometimes"},
				{Value: 2, Label: "Often"},
				{Value: 3, Label: "Always"},
			},
		},
		{
			ID:     "goal",
			Order:  7,
			Prompt: "What is your primary goal for mental wellness?",
			Options: []model.AnswerOption{
				{Value: 0, Label: "Reduce anxiety"},
				{Value: 1, Label: "Improve sleep"},
				{Value: 2, Label: "Manage stress"},
				{Value: 3, Label: "Build confidence"},
			},
		},
	}
}

func cloneOptions(opts []model.AnswerOption) []model.AnswerOption {
	out := make([]model.AnswerOption, len(opts))
	copy(out, opts)
	return out
}
