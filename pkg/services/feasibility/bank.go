package feasibility

import (
	"fmt"

	"github.com/matthewcarlsonhome-cmd/AIGovernance-sub006/pkg/models/domain"
	"github.com/spf13/viper"
)

const (
	bankSize           = 30
	questionsPerDomain = 6
)

type questionConfig struct {
	ID       string             `mapstructure:"id"`
	Section  string             `mapstructure:"section"`
	Domain   string             `mapstructure:"domain"`
	Text     string             `mapstructure:"text"`
	Type     string             `mapstructure:"type"`
	Options  []string           `mapstructure:"options"`
	Weight   float64            `mapstructure:"weight"`
	Scoring  map[string]float64 `mapstructure:"scoring"`
	Required bool               `mapstructure:"required"`
	Order    int                `mapstructure:"order"`
}

type bankConfig struct {
	Questions []questionConfig `mapstructure:"questions"`
}

// LoadQuestionBank reads the declarative question bank from a YAML file and
// validates its invariants: 30 questions, 6 per domain, unique IDs and order
// values, positive weights, and a scoring map on every select-type question.
func LoadQuestionBank(path string) ([]domain.AssessmentQuestion, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read question bank: %w", err)
	}

	var cfg bankConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}

	questions := make([]domain.AssessmentQuestion, 0, len(cfg.Questions))
	for _, qc := range cfg.Questions {
		questions = append(questions, domain.AssessmentQuestion{
			ID:       qc.ID,
			Section:  qc.Section,
			Domain:   domain.AssessmentDomain(qc.Domain),
			Text:     qc.Text,
			Type:     domain.QuestionType(qc.Type),
			Options:  qc.Options,
			Weight:   qc.Weight,
			Scoring:  qc.Scoring,
			Required: qc.Required,
			Order:    qc.Order,
		})
	}

	if err := ValidateQuestionBank(questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// ValidateQuestionBank enforces the question bank invariants.
func ValidateQuestionBank(questions []domain.AssessmentQuestion) error {
	if len(questions) != bankSize {
		return fmt.Errorf("question bank must contain %d questions, got %d", bankSize, len(questions))
	}

	ids := map[string]bool{}
	orders := map[int]bool{}
	perDomain := map[domain.AssessmentDomain]int{}

	for _, q := range questions {
		if !q.Domain.IsValid() {
			return fmt.Errorf("question %s: unknown domain %q", q.ID, q.Domain)
		}
		if q.Weight <= 0 {
			return fmt.Errorf("question %s: weight must be positive, got %v", q.ID, q.Weight)
		}
		if ids[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		if orders[q.Order] {
			return fmt.Errorf("question %s: duplicate order value %d", q.ID, q.Order)
		}
		ids[q.ID] = true
		orders[q.Order] = true
		perDomain[q.Domain]++

		selectType := q.Type == domain.QuestionSingleSelect || q.Type == domain.QuestionMultiSelect
		if selectType && len(q.Scoring) == 0 {
			return fmt.Errorf("question %s: select-type questions require a scoring map", q.ID)
		}
	}

	for _, d := range domain.Domains {
		if perDomain[d] != questionsPerDomain {
			return fmt.Errorf("domain %s must have %d questions, got %d", d, questionsPerDomain, perDomain[d])
		}
	}
	return nil
}
