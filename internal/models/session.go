package models

// CommentMaxLength bounds the member-authored comment, counted in characters.
const CommentMaxLength = 2000

const SessionStatusCompleted = "완료"

type Session struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	// Sequence is a display label only. Lists are ordered by Date.
	Sequence string   `json:"sequence"`
	Status   string   `json:"status"`
	Feedback string   `json:"feedback,omitempty"`
	Note     string   `json:"note,omitempty"`
	Comment  string   `json:"comment,omitempty"`
	Images   []string `json:"images,omitempty"`
}

type SessionDetail struct {
	Session
	Blocks []Block `json:"blocks"`
	// Content is the free-text fallback shown when Blocks is empty.
	Content string `json:"content,omitempty"`
}

// FirstImageURL returns the URL of the first image block that has one.
func (d *SessionDetail) FirstImageURL() (string, bool) {
	for _, block := range d.Blocks {
		image, ok := block.(*ImageBlock)
		if ok && image.ImageURL != nil && *image.ImageURL != "" {
			return *image.ImageURL, true
		}
	}
	return "", false
}
