package service

import (
	"context"
	"fmt"
	"sync"

	"mindmate_backend/internal/assessment"
	"mindmate_backend/internal/model"
	"mindmate_backend/pkg/logger"
	"mindmate_backend/pkg/monitoring"
	"mindmate_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type AssessmentService struct {
	Scorer   *assessment.Scorer
	Sessions *SessionStore

	mu          sync.RWMutex
	recommender *assessment.Recommender
}

func NewAssessmentService(scorer *assessment.Scorer, recommender *assessment.Recommender, sessions *SessionStore) *AssessmentService {
	return &AssessmentService{
		Scorer:      scorer,
		Sessions:    sessions,
		recommender: recommender,
	}
}

type ScoreRequest struct {
	Answers []int `json:"answers" binding:"required"`
}

type AnswerRequest struct {
	Value *int `json:"value" binding:"required"`
}

func (s *AssessmentService) Questions() []model.Question {
	return s.Scorer.Questions()
}

func (s *AssessmentService) Thresholds() assessment.Thresholds {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recommender.Thresholds()
}

// UpdateThresholds 配置热加载时替换推荐阈值，非法阈值不生效
func (s *AssessmentService) UpdateThresholds(t assessment.Thresholds) error {
	r, err := assessment.NewRecommender(t)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.recommender = r
	s.mu.Unlock()

	logger.Log.Info("assessment thresholds updated",
		zap.Int("maintenance_max", t.MaintenanceMax),
		zap.Int("stress_management_max", t.StressManagementMax),
		zap.Int("resilient_insight_max", t.ResilientInsightMax),
		zap.Int("foundation_insight_max", t.FoundationInsightMax),
	)
	return nil
}

// Evaluate 计算完整答案集的分数和推荐方案
func (s *AssessmentService) Evaluate(ctx context.Context, answers []int) (*model.AssessmentOutcome, error) {
	_, span := tracing.Tracer.Start(ctx, "assessment.Evaluate")
	defer span.End()
	span.SetAttributes(attribute.Int("assessment.answers", len(answers)))

	score, err := s.Scorer.Score(answers)
	if err != nil {
		monitoring.AssessmentsRejected.Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Log.Debug("assessment rejected", zap.Error(err), zap.Ints("answers", answers))
		return nil, err
	}

	s.mu.RLock()
	rec := s.recommender.Recommend(score.RawScore)
	s.mu.RUnlock()

	monitoring.AssessmentsCompleted.WithLabelValues(string(rec.Variant)).Inc()
	monitoring.AssessmentRawScore.Observe(float64(score.RawScore))
	span.SetAttributes(
		attribute.Int("assessment.raw_score", score.RawScore),
		attribute.String("assessment.program", string(rec.Variant)),
	)

	logger.Log.Info("assessment scored",
		zap.Int("raw_score", score.RawScore),
		zap.Float64("wellness_percentage", score.WellnessPercentage),
		zap.String("program", string(rec.Variant)),
	)

	return &model.AssessmentOutcome{Score: score, Recommendation: rec}, nil
}

func (s *AssessmentService) StartSession(ctx context.Context) *model.SessionState {
	_, span := tracing.Tracer.Start(ctx, "assessment.StartSession")
	defer span.End()

	sess := s.Sessions.Create(s.Scorer.NumQuestions())
	span.SetAttributes(attribute.String("assessment.session_id", sess.ID))
	logger.Log.Debug("assessment session started", zap.String("session_id", sess.ID))

	return s.stateOf(sess)
}

func (s *AssessmentService) GetSession(id string) (*model.SessionState, error) {
	var state *model.SessionState
	err := s.Sessions.Update(id, func(sess *model.AssessmentSession) error {
		state = s.stateOf(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// SubmitAnswer 记录当前题目的答案并前进；最后一题作答后计算结果并丢弃会话
func (s *AssessmentService) SubmitAnswer(ctx context.Context, id string, value int) (*model.SessionState, error) {
	questions := s.Scorer.Questions()

	var (
		state    *model.SessionState
		answers  []int
		complete bool
	)
	err := s.Sessions.Update(id, func(sess *model.AssessmentSession) error {
		q := questions[sess.CurrentIndex]
		if !q.Accepts(value) {
			return fmt.Errorf("%w: answer %d for question %q is not a valid option", assessment.ErrIncompleteAssessment, value, q.ID)
		}

		v := value
		sess.Answers[sess.CurrentIndex] = &v

		if sess.CurrentIndex < len(questions)-1 {
			sess.CurrentIndex++
			state = s.stateOf(sess)
			return nil
		}

		set, ok := sess.AnswerSet()
		if !ok {
			return fmt.Errorf("%w: session has unanswered questions", assessment.ErrIncompleteAssessment)
		}
		answers = set
		complete = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !complete {
		return state, nil
	}

	outcome, err := s.Evaluate(ctx, answers)
	if err != nil {
		return nil, err
	}
	s.Sessions.Delete(id)

	n := len(questions)
	return &model.SessionState{
		QuestionIndex:  n - 1,
		TotalQuestions: n,
		Progress:       100,
		Completed:      true,
		Outcome:        outcome,
	}, nil
}

// GoBack 回到上一题并带回之前的选择；已在第一题时不变
func (s *AssessmentService) GoBack(id string) (*model.SessionState, error) {
	var state *model.SessionState
	err := s.Sessions.Update(id, func(sess *model.AssessmentSession) error {
		if sess.CurrentIndex > 0 {
			sess.CurrentIndex--
		}
		state = s.stateOf(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *AssessmentService) stateOf(sess *model.AssessmentSession) *model.SessionState {
	questions := s.Scorer.Questions()
	n := len(questions)

	state := &model.SessionState{
		SessionID:      sess.ID,
		QuestionIndex:  sess.CurrentIndex,
		TotalQuestions: n,
	}
	if n == 0 {
		return state
	}

	state.Progress = float64(sess.CurrentIndex+1) / float64(n) * 100
	q := questions[sess.CurrentIndex]
	state.Question = &q
	if a := sess.Answers[sess.CurrentIndex]; a != nil {
		v := *a
		state.SelectedAnswer = &v
	}
	return state
}
