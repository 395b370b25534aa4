package dto

type HnSearchResp struct {
	Hits        []HnHit `json:"hits"`
	NbHits      int     `json:"nbHits"`
	Page        int     `json:"page"`
	NbPages     int     `json:"nbPages"`
	HitsPerPage int     `json:"hitsPerPage"`
}

type HnHit struct {
	ObjectId    string   `json:"objectID"`
	Tags        []string `json:"_tags"`
	Author      string   `json:"author"`
	Title       string   `json:"title"`
	Url         string   `json:"url"`
	StoryText   string   `json:"story_text"`
	CommentText string   `json:"comment_text"`
	StoryTitle  string   `json:"story_title"`
	StoryUrl    string   `json:"story_url"`
	Points      *int     `json:"points"`
	NumComments *int     `json:"num_comments"`
	StoryId     *int     `json:"story_id"`
	ParentId    *int     `json:"parent_id"`
	CreatedAt   string   `json:"created_at"`
	CreatedAtI  int64    `json:"created_at_i"`
}

type HnError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}
