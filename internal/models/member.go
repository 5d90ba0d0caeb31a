package models

// Member is one client of the coach, read from the members collection.
type Member struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Age          *int   `json:"age,omitempty"`
	Experience   string `json:"experience,omitempty"`
	Gender       string `json:"gender"`
	Location     string `json:"location"`
	StartDate    string `json:"startDate"`
	Status       string `json:"status"`
	Tuition      int    `json:"tuition"`
	TotalTuition int    `json:"totalTuition"`
	URL          string `json:"url"`
}

// Member status labels used by the coach. The set is open; any other
// string is shown as is.
const (
	MemberStatusActive  = "진행중"
	MemberStatusHolding = "홀딩"
	MemberStatusEnded   = "종료"
)

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}
