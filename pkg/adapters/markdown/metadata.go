package markdown

// LessonMetadata represents the front matter of a lesson file.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type LessonMetadata struct {
	Action  string `json:"action" mapstructure:"action"`
	Title   string `json:"title" mapstructure:"title"`
	Summary string `json:"summary" mapstructure:"summary"`
}
