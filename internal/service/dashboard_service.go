package service

import "mindmate_backend/internal/model"

type DashboardService struct{}

func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

// GetDashboard 返回首页的静态概览数据
func (s *DashboardService) GetDashboard() *model.Dashboard {
	return &model.Dashboard{
		TodayProgress: 60,
		WeeklyStreak:  7,
		CurrentMood:   "Calm",
		QuickActions: []model.QuickAction{
			{Title: "AI Chat", Href: "/ai-chat"},
			{Title: "AI Call", Href: "/ai-call"},
			{Title: "Exercises", Href: "/exercises"},
			{Title: "Brain Training", Href: "/brain-training"},
			{Title: "Sleep Stories", Href: "/sleep-stories"},
			{Title: "Audiobooks", Href: "/audiobooks"},
		},
	}
}
