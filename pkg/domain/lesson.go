package domain

// Page is one screen of a lesson, shown between two pagination gates.
type Page struct {
	Body string
}

// Lesson is the static demonstration attached to a menu action.
type Lesson struct {
	Action  MenuAction
	Title   string
	Summary string
	Pages   []Page
}
