package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"mindmate_backend/internal/model"
	"mindmate_backend/internal/util"
)

var (
	AudiobookCategories = []string{"Mindfulness", "Meditation", "Anxiety", "Sleep", "Self-Help"}
	ExerciseCategories  = []string{"Mindfulness", "Breathing", "Anxiety", "Sleep", "Focus"}
	GameCategories      = []string{"Memory", "Focus", "Logic", "Language"}
)

// CatalogService 提供固定的有声书、练习和脑力游戏目录
type CatalogService struct {
	audiobooks []model.Audiobook
	exercises  []model.Exercise
	games      []model.Game
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		audiobooks: defaultAudiobooks(),
		exercises:  defaultExercises(),
		games:      defaultGames(),
	}
}

type CatalogQuery struct {
	Category string `form:"category"`
	Sort     string `form:"sort"`
}

func (s *CatalogService) ListAudiobooks(q CatalogQuery) ([]model.Audiobook, error) {
	if err := checkCategory(q.Category, AudiobookCategories); err != nil {
		return nil, err
	}

	out := make([]model.Audiobook, 0, len(s.audiobooks))
	for _, b := range s.audiobooks {
		if matchCategory(q.Category, b.Category) {
			out = append(out, b)
		}
	}

	switch q.Sort {
	case "":
	case util.SortTitle:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	case util.SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case util.SortDuration:
		sort.SliceStable(out, func(i, j int) bool {
			return ParseDuration(out[i].Duration) < ParseDuration(out[j].Duration)
		})
	default:
		return nil, fmt.Errorf("%w: %q", util.ErrUnknownSortKey, q.Sort)
	}
	return out, nil
}

func (s *CatalogService) GetAudiobook(id string) (*model.Audiobook, error) {
	for _, b := range s.audiobooks {
		if b.ID == id {
			b := b
			return &b, nil
		}
	}
	return nil, util.ErrCatalogItemNotFound
}

func (s *CatalogService) ListExercises(q CatalogQuery) ([]model.Exercise, error) {
	if err := checkCategory(q.Category, ExerciseCategories); err != nil {
		return nil, err
	}

	out := make([]model.Exercise, 0, len(s.exercises))
	for _, e := range s.exercises {
		if matchCategory(q.Category, e.Category) {
			out = append(out, e)
		}
	}

	switch q.Sort {
	case "":
	case util.SortTitle:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	case util.SortDifficulty:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Difficulty.Level() < out[j].Difficulty.Level() })
	case util.SortDuration:
		sort.SliceStable(out, func(i, j int) bool {
			return ParseDuration(out[i].Duration) < ParseDuration(out[j].Duration)
		})
	default:
		return nil, fmt.Errorf("%w: %q", util.ErrUnknownSortKey, q.Sort)
	}
	return out, nil
}

func (s *CatalogService) GetExercise(id string) (*model.Exercise, error) {
	for _, e := range s.exercises {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, util.ErrCatalogItemNotFound
}

func (s *CatalogService) ListGames(q CatalogQuery) ([]model.Game, error) {
	if err := checkCategory(q.Category, GameCategories); err != nil {
		return nil, err
	}

	out := make([]model.Game, 0, len(s.games))
	for _, g := range s.games {
		if matchCategory(q.Category, g.Category) {
			out = append(out, g)
		}
	}

	switch q.Sort {
	case "":
	case util.SortTitle:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	case util.SortDifficulty:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Difficulty.Level() < out[j].Difficulty.Level() })
	default:
		return nil, fmt.Errorf("%w: %q", util.ErrUnknownSortKey, q.Sort)
	}
	return out, nil
}

func (s *CatalogService) GetGame(id string) (*model.Game, error) {
	for _, g := range s.games {
		if g.ID == id {
			g := g
			return &g, nil
		}
	}
	return nil, util.ErrCatalogItemNotFound
}

func checkCategory(category string, known []string) error {
	if category == "" || category == model.CategoryAll {
		return nil
	}
	for _, c := range known {
		if c == category {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", util.ErrUnknownCategory, category)
}

func matchCategory(filter, category string) bool {
	return filter == "" || filter == model.CategoryAll || filter == category
}

// ParseDuration 解析 "7h 37m"、"5 min" 之类的时长，无法解析时返回 0
func ParseDuration(s string) time.Duration {
	s = strings.ReplaceAll(strings.ToLower(s), " ", "")
	s = strings.ReplaceAll(s, "min", "m")
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}

func defaultAudiobooks() []model.Audiobook {
	return []model.Audiobook{
		{
			ID: "1", Title: "The Power of Now", Author: "Eckhart Tolle", Narrator: "Eckhart Tolle",
			Duration: "7h 37m", Category: "Mindfulness", Rating: 4.8,
			Description: "A guide to spiritual enlightenment and living in the present moment.",
			Progress:    65,
		},
		{
			ID: "2", Title: "Mindfulness for Beginners", Author: "Jon Kabat-Zinn", Narrator: "Jon Kabat-Zinn",
			Duration: "5h 12m", Category: "Meditation", Rating: 4.7,
			Description: "An introduction to mindfulness meditation and its benefits.",
			Progress:    100, IsCompleted: true,
		},
		{
			ID: "3", Title: "The Anxiety and Phobia Workbook", Author: "Edmund Bourne", Narrator: "Mike Lenz",
			Duration: "12h 30m", Category: "Anxiety", Rating: 4.6,
			Description: "Evidence-based strategies for overcoming anxiety and phobias.",
			Progress:    30,
		},
		{
			ID: "4", Title: "Sleep Stories for Adults", Author: "Various Authors", Narrator: "Calming Voices",
			Duration: "8h 45m", Category: "Sleep", Rating: 4.9,
			Description: "Soothing bedtime stories designed to help you fall asleep.",
		},
		{
			ID: "5", Title: "The Happiness Project", Author: "Gretchen Rubin", Narrator: "Gretchen Rubin",
			Duration: "9h 18m", Category: "Self-Help", Rating: 4.5,
			Description: "A year-long experiment in discovering what really makes us happy.",
			Progress:    45,
		},
	}
}

func defaultExercises() []model.Exercise {
	return []model.Exercise{
		{
			ID: "1", Title: "4-7-8 Breathing", Duration: "5 min",
			Description: "A powerful breathing technique to reduce anxiety and promote relaxation.",
			Difficulty:  model.DifficultyBeginner, Category: "Breathing", Participants: 1,
		},
		{
			ID: "2", Title: "Body Scan Meditation", Duration: "15 min",
			Description: "Progressive relaxation technique to release tension throughout your body.",
			Difficulty:  model.DifficultyIntermediate, Category: "Mindfulness", Participants: 1,
		},
		{
			ID: "3", Title: "Anxiety Relief Visualization", Duration: "10 min",
			Description: "Guided imagery to calm anxious thoughts and create inner peace.",
			Difficulty:  model.DifficultyBeginner, Category: "Anxiety", Participants: 1,
		},
		{
			ID: "4", Title: "Sleep Preparation Routine", Duration: "20 min",
			Description: "Wind down sequence to prepare your mind and body for restful sleep.",
			Difficulty:  model.DifficultyBeginner, Category: "Sleep", Participants: 1,
		},
		{
			ID: "5", Title: "Focus Enhancement", Duration: "12 min",
			Description: "Concentration exercises to improve mental clarity and attention.",
			Difficulty:  model.DifficultyAdvanced, Category: "Focus", Participants: 1,
		},
	}
}

func defaultGames() []model.Game {
	return []model.Game{
		{
			ID: "word-scramble", Title: "Word Scramble",
			Description: "Unscramble words related to mental wellness and mindfulness.",
			Difficulty:  model.DifficultyEasy, Category: "Language",
		},
		{
			ID: "memory-cards", Title: "Memory Cards",
			Description: "Match pairs of cards to improve your memory and concentration.",
			Difficulty:  model.DifficultyMedium, Category: "Memory",
		},
		{
			ID: "pattern-match", Title: "Pattern Recognition",
			Description: "Identify patterns and sequences to enhance cognitive function.",
			Difficulty:  model.DifficultyHard, Category: "Logic",
		},
		{
			ID: "focus-challenge", Title: "Focus Challenge",
			Description: "Sustained attention exercises to improve concentration.",
			Difficulty:  model.DifficultyMedium, Category: "Focus",
		},
	}
}
