package content

// #region entry

// Entry is one vocabulary item of a lesson.
type Entry struct {
	English         string `yaml:"english" json:"english"`
	Hindi           string `yaml:"hindi" json:"hindi"`
	Transliteration string `yaml:"transliteration" json:"transliteration"`
}

// #endregion entry

// #region lesson

// Lesson is a unit of the course.
type Lesson struct {
	ID      string  `yaml:"id" json:"id"`
	Title   string  `yaml:"title" json:"title"`
	Level   string  `yaml:"level" json:"level"` // beginner | intermediate | advanced
	Entries []Entry `yaml:"entries" json:"entries"`
}

// #endregion lesson

// #region catalog

// Catalog is the set of lessons the producers audit and exercise.
type Catalog struct {
	Lessons []Lesson `yaml:"lessons" json:"lessons"`
}

// LessonIDs returns lesson IDs in catalog order.
func (c Catalog) LessonIDs() []string {
	ids := make([]string, len(c.Lessons))
	for i, l := range c.Lessons {
		ids[i] = l.ID
	}
	return ids
}

// Clone returns a deep copy so enrichment never mutates its input.
func (c Catalog) Clone() Catalog {
	out := Catalog{Lessons: make([]Lesson, len(c.Lessons))}
	for i, l := range c.Lessons {
		l.Entries = append([]Entry(nil), l.Entries...)
		out.Lessons[i] = l
	}
	return out
}

// #endregion catalog

// #region config

// Config locates lesson files.
type Config struct {
	Root     string   `yaml:"root"`     // empty uses the built-in sample catalog
	Patterns []string `yaml:"patterns"` // doublestar patterns relative to Root
}

// DefaultConfig returns the default content configuration.
func DefaultConfig() Config {
	return Config{
		Patterns: []string{"lessons/**/*.yaml", "lessons/**/*.yml"},
	}
}

// #endregion config
