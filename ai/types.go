package ai

// Suggestions holds the classifier's proposed categories and tags for a
// piece of derived text. Both sequences are ordered and may contain
// duplicates; the owner is free to discard or edit them.
type Suggestions struct {
	// Categories are general groupings, e.g. "Cooking", "Fitness".
	Categories []string

	// Tags are specific keywords lifted from the text itself.
	Tags []string
}

// EmptySuggestions returns a Suggestions value with empty (non-nil) slices.
// It is the degraded result substituted when classification fails or there
// is no text to classify.
func EmptySuggestions() Suggestions {
	return Suggestions{
		Categories: []string{},
		Tags:       []string{},
	}
}
