package util

const ModeRelease = "release"

// 目录排序字段
const (
	SortTitle      = "title"
	SortDuration   = "duration"
	SortRating     = "rating"
	SortDifficulty = "difficulty"
)
