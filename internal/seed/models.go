package seed

// DataSet is the on-disk shape of a seed file. Questions reference their
// category by type name.
type DataSet struct {
	Categories []string       `json:"categories"`
	Questions  []SeedQuestion `json:"questions"`
}

type SeedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   string `json:"category"`
}

// Result counts what a seed run inserted and what it found already present.
type Result struct {
	CategoriesCreated int
	CategoriesExisted int
	QuestionsCreated  int
	QuestionsExisted  int
}
