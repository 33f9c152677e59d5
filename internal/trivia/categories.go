package trivia

// Category is one provider category.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AnyCategory is the sentinel id for "no category filter".
const AnyCategory = ""

// AnyCategoryLabel is the display name for the sentinel entry.
const AnyCategoryLabel = "Any Category"

// DefaultCategories is the hardcoded fallback used when the category
// endpoint is unreachable.
func DefaultCategories() []Category {
	return []Category{
		{ID: 9, Name: "General Knowledge"},
		{ID: 11, Name: "Entertainment: Film"},
		{ID: 12, Name: "Entertainment: Music"},
		{ID: 15, Name: "Entertainment: Video Games"},
		{ID: 17, Name: "Science & Nature"},
		{ID: 18, Name: "Science: Computers"},
		{ID: 20, Name: "Mythology"},
		{ID: 21, Name: "Sports"},
		{ID: 22, Name: "Geography"},
		{ID: 23, Name: "History"},
	}
}
