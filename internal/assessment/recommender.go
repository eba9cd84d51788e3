package assessment

import (
	"errors"
	"fmt"

	"mindmate_backend/internal/model"
)

var ErrInvalidThresholds = errors.New("invalid assessment thresholds")

// Thresholds 按原始分划分推荐方案和洞察语句的阈值（均为闭区间上界）
type Thresholds struct {
	MaintenanceMax       int `mapstructure:"maintenance_max" json:"maintenanceMax"`
	StressManagementMax  int `mapstructure:"stress_management_max" json:"stressManagementMax"`
	ResilientInsightMax  int `mapstructure:"resilient_insight_max" json:"resilientInsightMax"`
	FoundationInsightMax int `mapstructure:"foundation_insight_max" json:"foundationInsightMax"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		MaintenanceMax:       7,
		StressManagementMax:  14,
		ResilientInsightMax:  3,
		FoundationInsightMax: 7,
	}
}

func (t Thresholds) Validate() error {
	if t.MaintenanceMax < 0 || t.StressManagementMax <= t.MaintenanceMax {
		return fmt.Errorf("%w: program thresholds must satisfy 0 <= maintenance_max < stress_management_max (got %d, %d)",
			ErrInvalidThresholds, t.MaintenanceMax, t.StressManagementMax)
	}
	if t.ResilientInsightMax < 0 || t.FoundationInsightMax <= t.ResilientInsightMax {
		return fmt.Errorf("%w: insight thresholds must satisfy 0 <= resilient_insight_max < foundation_insight_max (got %d, %d)",
			ErrInvalidThresholds, t.ResilientInsightMax, t.FoundationInsightMax)
	}
	return nil
}

const (
	InsightResilient   = "You show strong emotional resilience and good coping strategies."
	InsightFoundation  = "You have a solid foundation but could benefit from stress management techniques."
	InsightSignificant = "You're experiencing significant stress. Daily support and coping strategies will help."
)

var programs = map[model.ProgramVariant]model.ProgramRecommendation{
	model.ProgramMaintenance: {
		Variant:     model.ProgramMaintenance,
		Name:        "Wellness Maintenance",
		Description: "You're doing well! Focus on maintaining your mental wellness with daily practices.",
		Focus:       []string{"Daily check-ins", "Mindfulness", "Sleep optimization"},
	},
	model.ProgramStressManagement: {
		Variant:     model.ProgramStressManagement,
		Name:        "Stress & Anxiety Management",
		Description: "Let's work on managing stress and building coping strategies.",
		Focus:       []string{"Breathing exercises", "CBT techniques", "Stress reduction"},
	},
	model.ProgramIntensiveSupport: {
		Variant:     model.ProgramIntensiveSupport,
		Name:        "Intensive Support",
		Description: "We recommend comprehensive support with regular check-ins and professional guidance.",
		Focus:       []string{"Daily AI support", "Crisis resources", "Professional referrals"},
	},
}

// Recommender 根据原始分选择推荐方案，纯函数映射
type Recommender struct {
	thresholds Thresholds
}

func NewRecommender(t Thresholds) (*Recommender, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Recommender{thresholds: t}, nil
}

func (r *Recommender) Thresholds() Thresholds {
	return r.thresholds
}

func (r *Recommender) Variant(raw int) model.ProgramVariant {
	switch {
	case raw <= r.thresholds.MaintenanceMax:
		return model.ProgramMaintenance
	case raw <= r.thresholds.StressManagementMax:
		return model.ProgramStressManagement
	default:
		return model.ProgramIntensiveSupport
	}
}

// Insight 第二层分级，与推荐方案的阈值相互独立
func (r *Recommender) Insight(raw int) string {
	switch {
	case raw <= r.thresholds.ResilientInsightMax:
		return InsightResilient
	case raw <= r.thresholds.FoundationInsightMax:
		return InsightFoundation
	default:
		return InsightSignificant
	}
}

func (r *Recommender) Recommend(raw int) model.ProgramRecommendation {
	rec := programs[r.Variant(raw)]
	rec.Focus = append([]string(nil), rec.Focus...)
	rec.Insight = r.Insight(raw)
	return rec
}
