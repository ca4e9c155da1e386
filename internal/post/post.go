package post

// Post is a single entry in the fetched collection. Fields are never
// mutated after loading.
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}
