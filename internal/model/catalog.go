package model

// CategoryAll 表示不过滤分类
const CategoryAll = "All"

// swagger:model Audiobook
type Audiobook struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Narrator    string  `json:"narrator"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Progress    int     `json:"progress"`
	IsCompleted bool    `json:"isCompleted"`
}

type ExerciseDifficulty string

const (
	DifficultyBeginner     ExerciseDifficulty = "Beginner"
	DifficultyIntermediate ExerciseDifficulty = "Intermediate"
	DifficultyAdvanced     ExerciseDifficulty = "Advanced"
)

// Level 用于按难度排序
func (d ExerciseDifficulty) Level() int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	}
	return 0
}

// swagger:model Exercise
type Exercise struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Duration     string             `json:"duration"`
	Difficulty   ExerciseDifficulty `json:"difficulty"`
	Category     string             `json:"category"`
	Participants int                `json:"participants"`
}

type GameDifficulty string

const (
	DifficultyEasy   GameDifficulty = "Easy"
	DifficultyMedium GameDifficulty = "Medium"
	DifficultyHard   GameDifficulty = "Hard"
)

func (d GameDifficulty) Level() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	}
	return 0
}

// swagger:model Game
type Game struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Difficulty  GameDifficulty `json:"difficulty"`
	Category    string         `json:"category"`
}
