package seed

import (
	"time"

	"github.com/DjordjeVuckovic/sanctuary-hub/internal/domain/content"
)

type Dataset struct {
	Name      string  `yaml:"name"`
	FAQs      []Entry `yaml:"faqs"`
	Resources []Entry `yaml:"resources"`
}

type Entry struct {
	ID        string                   `yaml:"id"`
	Featured  bool                     `yaml:"featured"`
	Fields    map[string]content.Value `yaml:"fields"`
	Metrics   content.Metrics          `yaml:"metrics"`
	CreatedAt time.Time                `yaml:"createdAt"`
	UpdatedAt time.Time                `yaml:"updatedAt"`
}
