package post

// Post is a single blog entry, stored as-is in the posts collection.
type Post struct {
	ID      int    `json:"id"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
