// Package catalog holds the static course content: an ordered, read-only
// set of modules defined at build time and never mutated at runtime.
package catalog

import "fmt"

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation,omitempty"`
}

type Module struct {
	ID                  int            `json:"id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	Lesson              string         `json:"lesson"`
	ReflectionQuestions []string       `json:"reflection_questions"`
	QuizQuestions       []QuizQuestion `json:"quiz_questions"`
	PracticalSteps      []string       `json:"practical_steps,omitempty"`
	Pitfalls            []string       `json:"pitfalls,omitempty"`
	Exercises           []string       `json:"exercises,omitempty"`
	Resources           []Resource     `json:"resources,omitempty"`
}

// Catalog is an indexed view over the module list, built once at startup
// and injected wherever module lookup is needed.
type Catalog struct {
	modules []Module
	byID    map[int]Module
}

func New(modules []Module) (*Catalog, error) {
	byID := make(map[int]Module, len(modules))
	for _, m := range modules {
		if _, dup := byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate module id %d", m.ID)
		}
		byID[m.ID] = m
	}
	return &Catalog{modules: modules, byID: byID}, nil
}

// Default returns the catalog built from the embedded course content.
func Default() *Catalog {
	c, err := New(courseModules)
	if err != nil {
		// The embedded content is validated by tests; a duplicate id here
		// is a build defect, not a runtime condition.
		panic(err)
	}
	return c
}

func (c *Catalog) ByID(id int) (Module, bool) {
	m, ok := c.byID[id]
	return m, ok
}

func (c *Catalog) Modules() []Module { return c.modules }

func (c *Catalog) Size() int { return len(c.modules) }
