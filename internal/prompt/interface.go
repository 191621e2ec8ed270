package prompt

// Builder assembles the generation prompt for one run.
type Builder interface {
	Build(category Category, context, transcript string) string
}
