package model

// swagger:model QuickAction
type QuickAction struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

// swagger:model Dashboard
type Dashboard struct {
	TodayProgress int           `json:"todayProgress"`
	WeeklyStreak  int           `json:"weeklyStreak"`
	CurrentMood   string        `json:"currentMood"`
	QuickActions  []QuickAction `json:"quickActions"`
}
