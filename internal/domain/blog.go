package domain

// GeneratedBlogContent is the structured article returned by the blog
// generation flow. WordCount is always derived from Content at response
// construction, never taken from the provider.
type GeneratedBlogContent struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	MetaDescription string   `json:"metaDescription"`
	Content         string   `json:"content"`
	KeyTakeaways    []string `json:"keyTakeaways"`
	WordCount       int      `json:"wordCount"`
}
