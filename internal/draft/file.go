package draft

import (
	"fmt"
	"sort"

	"github.com/iamvkosarev/bot-designer/internal/catalog"
	"gopkg.in/yaml.v3"
)

type FileFAQItem struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// File is a draft described in YAML. Every entry is applied through the
// Session operations, exactly as if typed into the wizard.
type File struct {
	Template   string            `yaml:"template"`
	Fields     map[string]string `yaml:"fields"`
	Theme      string            `yaml:"theme"`
	Appearance map[string]string `yaml:"appearance"`
	FAQ        []FileFAQItem     `yaml:"faq"`
	Queries    []string          `yaml:"queries"`
}

func ParseFile(data []byte) (File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("failed to unmarshal draft file: %w", err)
	}
	return file, nil
}

// NewSession builds a session from the file: template seed first, then fields,
// theme, appearance overrides, FAQ and queries. Map entries apply in key order.
func (f File) NewSession() (*Session, error) {
	session := NewSession()
	if f.Template != "" {
		template, err := catalog.TemplateByID(f.Template)
		if err != nil {
			return nil, fmt.Errorf("failed to seed draft from template %q: %w", f.Template, err)
		}
		session = NewSessionFromTemplate(template)
	}
	for _, name := range sortedKeys(f.Fields) {
		if err := session.UpdateField(Field(name), f.Fields[name]); err != nil {
			return nil, err
		}
	}
	if f.Theme != "" {
		if err := session.SelectTheme(f.Theme); err != nil {
			return nil, err
		}
	}
	for _, name := range sortedKeys(f.Appearance) {
		if err := session.UpdateAppearanceField(AppearanceField(name), f.Appearance[name]); err != nil {
			return nil, err
		}
	}
	for i, item := range f.FAQ {
		if _, err := session.AddFAQItem(item.Question, item.Answer); err != nil {
			return nil, fmt.Errorf("faq item %d: %w", i+1, err)
		}
	}
	for i, query := range f.Queries {
		if _, err := session.AddPredefinedQuery(query); err != nil {
			return nil, fmt.Errorf("query %d: %w", i+1, err)
		}
	}
	return session, nil
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
