package service

import (
	"context"
	"testing"
	"time"

	"mindmate_backend/internal/assessment"
	"mindmate_backend/internal/model"
	"mindmate_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newAssessmentService(t *testing.T) *AssessmentService {
	t.Helper()
	rec, err := assessment.NewRecommender(assessment.DefaultThresholds())
	require.NoError(t, err)
	return NewAssessmentService(
		assessment.NewScorer(assessment.DefaultQuestions()),
		rec,
		NewSessionStore(time.Hour),
	)
}

func TestAssessmentService_Evaluate(t *testing.T) {
	svc := newAssessmentService(t)

	out, err := svc.Evaluate(context.Background(), []int{1, 1, 1, 1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 7, out.Score.RawScore)
	assert.InDelta(t, 66.67, out.Score.WellnessPercentage, 0.01)
	assert.Equal(t, model.ProgramMaintenance, out.Recommendation.Variant)
	assert.Equal(t, assessment.InsightFoundation, out.Recommendation.Insight)

	out, err = svc.Evaluate(context.Background(), []int{3, 3, 3, 3, 3, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.Score.WellnessPercentage)
	assert.Equal(t, model.ProgramIntensiveSupport, out.Recommendation.Variant)
}

func TestAssessmentService_EvaluateRejectsIncomplete(t *testing.T) {
	svc := newAssessmentService(t)

	_, err := svc.Evaluate(context.Background(), []int{1, 2})
	assert.ErrorIs(t, err, assessment.ErrIncompleteAssessment)
}

func TestAssessmentService_UpdateThresholds(t *testing.T) {
	svc := newAssessmentService(t)

	err := svc.UpdateThresholds(assessment.Thresholds{MaintenanceMax: 10, StressManagementMax: 5})
	assert.ErrorIs(t, err, assessment.ErrInvalidThresholds)
	assert.Equal(t, assessment.DefaultThresholds(), svc.Thresholds())

	next := assessment.Thresholds{MaintenanceMax: 3, StressManagementMax: 10, ResilientInsightMax: 1, FoundationInsightMax: 3}
	require.NoError(t, svc.UpdateThresholds(next))
	assert.Equal(t, next, svc.Thresholds())

	out, err := svc.Evaluate(context.Background(), []int{1, 1, 1, 1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, model.ProgramStressManagement, out.Recommendation.Variant)
}

func TestAssessmentService_SessionFlow(t *testing.T) {
	svc := newAssessmentService(t)
	ctx := context.Background()

	state := svc.StartSession(ctx)
	require.NotEmpty(t, state.SessionID)
	assert.Equal(t, 0, state.QuestionIndex)
	assert.Equal(t, 7, state.TotalQuestions)
	assert.InDelta(t, 100.0/7, state.Progress, 0.001)
	require.NotNil(t, state.Question)
	assert.Equal(t, "mood", state.Question.ID)
	assert.Nil(t, state.SelectedAnswer)

	id := state.SessionID
	for i := 0; i < 6; i++ {
		state, err := svc.SubmitAnswer(ctx, id, 2)
		require.NoError(t, err)
		assert.Equal(t, i+1, state.QuestionIndex)
		assert.False(t, state.Completed)
	}

	state, err := svc.SubmitAnswer(ctx, id, 0)
	require.NoError(t, err)
	assert.True(t, state.Completed)
	assert.Equal(t, 100.0, state.Progress)
	require.NotNil(t, state.Outcome)
	assert.Equal(t, 12, state.Outcome.Score.RawScore)
	assert.Equal(t, model.ProgramStressManagement, state.Outcome.Recommendation.Variant)

	// 完成后会话被丢弃
	_, err = svc.GetSession(id)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
	assert.Equal(t, 0, svc.Sessions.Len())
}

func TestAssessmentService_GoBackRestoresAnswer(t *testing.T) {
	svc := newAssessmentService(t)
	ctx := context.Background()

	id := svc.StartSession(ctx).SessionID

	// 第一题时后退不变
	state, err := svc.GoBack(id)
	require.NoError(t, err)
	assert.Equal(t, 0, state.QuestionIndex)

	_, err = svc.SubmitAnswer(ctx, id, 0)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, id, 3)
	require.NoError(t, err)

	state, err = svc.GoBack(id)
	require.NoError(t, err)
	assert.Equal(t, 1, state.QuestionIndex)
	require.NotNil(t, state.SelectedAnswer)
	assert.Equal(t, 3, *state.SelectedAnswer)

	state, err = svc.GoBack(id)
	require.NoError(t, err)
	assert.Equal(t, 0, state.QuestionIndex)
	require.NotNil(t, state.SelectedAnswer, "a zero answer is still an answer")
	assert.Equal(t, 0, *state.SelectedAnswer)

	// 修改答案后继续
	state, err = svc.SubmitAnswer(ctx, id, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, state.QuestionIndex)
	require.NotNil(t, state.SelectedAnswer)
	assert.Equal(t, 3, *state.SelectedAnswer)
}

func TestAssessmentService_SubmitInvalidAnswer(t *testing.T) {
	svc := newAssessmentService(t)
	ctx := context.Background()
	id := svc.StartSession(ctx).SessionID

	_, err := svc.SubmitAnswer(ctx, id, 4)
	assert.ErrorIs(t, err, assessment.ErrIncompleteAssessment)

	state, err := svc.GetSession(id)
	require.NoError(t, err)
	assert.Equal(t, 0, state.QuestionIndex)
	assert.Nil(t, state.SelectedAnswer)
}

func TestAssessmentService_UnknownSession(t *testing.T) {
	svc := newAssessmentService(t)

	_, err := svc.SubmitAnswer(context.Background(), "missing", 1)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	_, err = svc.GoBack("missing")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	sess := store.Create(7)
	require.Equal(t, 1, store.Len())

	now = now.Add(30 * time.Second)
	require.NoError(t, store.Update(sess.ID, func(*model.AssessmentSession) error { return nil }))

	now = now.Add(2 * time.Minute)
	err := store.Update(sess.ID, func(*model.AssessmentSession) error { return nil })
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 0, store.Len())
}

func TestSessionStore_JanitorStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewSessionStore(time.Minute)
	store.StartJanitor(10 * time.Millisecond)
	store.StartJanitor(10 * time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	store.Stop()
	store.Stop()
}

func TestSessionStore_StopWithoutJanitor(t *testing.T) {
	store := NewSessionStore(time.Minute)
	store.Stop()
}
