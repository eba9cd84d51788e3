package service

import (
	"testing"
	"time"

	"mindmate_backend/internal/model"
	"mindmate_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titlesOfBooks(books []model.Audiobook) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func TestCatalogService_Audiobooks(t *testing.T) {
	svc := NewCatalogService()

	all, err := svc.ListAudiobooks(CatalogQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	all2, err := svc.ListAudiobooks(CatalogQuery{Category: model.CategoryAll})
	require.NoError(t, err)
	assert.Equal(t, all, all2)

	sleep, err := svc.ListAudiobooks(CatalogQuery{Category: "Sleep"})
	require.NoError(t, err)
	require.Len(t, sleep, 1)
	assert.Equal(t, "Sleep Stories for Adults", sleep[0].Title)

	byRating, err := svc.ListAudiobooks(CatalogQuery{Sort: util.SortRating})
	require.NoError(t, err)
	assert.Equal(t, 4.9, byRating[0].Rating)
	assert.Equal(t, 4.5, byRating[len(byRating)-1].Rating)

	byDuration, err := svc.ListAudiobooks(CatalogQuery{Sort: util.SortDuration})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Mindfulness for Beginners",
		"The Power of Now",
		"Sleep Stories for Adults",
		"The Happiness Project",
		"The Anxiety and Phobia Workbook",
	}, titlesOfBooks(byDuration))
}

func TestCatalogService_Exercises(t *testing.T) {
	svc := NewCatalogService()

	breathing, err := svc.ListExercises(CatalogQuery{Category: "Breathing"})
	require.NoError(t, err)
	require.Len(t, breathing, 1)
	assert.Equal(t, "4-7-8 Breathing", breathing[0].Title)

	byDifficulty, err := svc.ListExercises(CatalogQuery{Sort: util.SortDifficulty})
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyBeginner, byDifficulty[0].Difficulty)
	assert.Equal(t, model.DifficultyAdvanced, byDifficulty[len(byDifficulty)-1].Difficulty)

	byDuration, err := svc.ListExercises(CatalogQuery{Sort: util.SortDuration})
	require.NoError(t, err)
	assert.Equal(t, "5 min", byDuration[0].Duration)
	assert.Equal(t, "20 min", byDuration[len(byDuration)-1].Duration)
}

func TestCatalogService_Games(t *testing.T) {
	svc := NewCatalogService()

	games, err := svc.ListGames(CatalogQuery{Category: "Focus"})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "focus-challenge", games[0].ID)

	sorted, err := svc.ListGames(CatalogQuery{Sort: util.SortTitle})
	require.NoError(t, err)
	assert.Equal(t, "Focus Challenge", sorted[0].Title)

	_, err = svc.ListGames(CatalogQuery{Sort: util.SortRating})
	assert.ErrorIs(t, err, util.ErrUnknownSortKey)
}

func TestCatalogService_Errors(t *testing.T) {
	svc := NewCatalogService()

	_, err := svc.ListAudiobooks(CatalogQuery{Category: "Breathing"})
	assert.ErrorIs(t, err, util.ErrUnknownCategory)

	_, err = svc.ListExercises(CatalogQuery{Sort: "popularity"})
	assert.ErrorIs(t, err, util.ErrUnknownSortKey)

	_, err = svc.GetAudiobook("42")
	assert.ErrorIs(t, err, util.ErrCatalogItemNotFound)
	_, err = svc.GetExercise("42")
	assert.ErrorIs(t, err, util.ErrCatalogItemNotFound)
	_, err = svc.GetGame("chess")
	assert.ErrorIs(t, err, util.ErrCatalogItemNotFound)
}

func TestCatalogService_GetReturnsCopy(t *testing.T) {
	svc := NewCatalogService()

	b, err := svc.GetAudiobook("1")
	require.NoError(t, err)
	b.Title = "changed"

	again, err := svc.GetAudiobook("1")
	require.NoError(t, err)
	assert.Equal(t, "The Power of Now", again.Title)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 7*time.Hour+37*time.Minute, ParseDuration("7h 37m"))
	assert.Equal(t, 5*time.Minute, ParseDuration("5 min"))
	assert.Equal(t, time.Duration(0), ParseDuration("soon"))
}

func TestDashboardService(t *testing.T) {
	d := NewDashboardService().GetDashboard()
	assert.Equal(t, 60, d.TodayProgress)
	assert.Equal(t, 7, d.WeeklyStreak)
	assert.Equal(t, "Calm", d.CurrentMood)
	assert.Len(t, d.QuickActions, 6)
}
