package mapper

import (
	"github.com/samber/lo"

	"github.com/MinhoKang/sallyrang/internal/models"
	"github.com/MinhoKang/sallyrang/internal/notion"
)

// Column names in the members collection.
const (
	MemberName         = "Name"
	MemberAge          = "Age"
	MemberExperience   = "Experience"
	MemberGender       = "Gender"
	MemberLocation     = "Location"
	MemberSessions     = "Sessions"
	MemberStartDate    = "StartDate"
	MemberStatus       = "Status"
	MemberTuition      = "Tuition"
	MemberTotalTuition = "TotalTuition"
)

// Column names in the sessions collection.
const (
	SessionTitle    = "Title"
	SessionDate     = "Date"
	SessionContent  = "Content"
	SessionFeedback = "Feedback"
	SessionImage    = "Image"
	SessionMember   = "Member"
	SessionNote     = "Note"
	SessionSequence = "Sequence"
	SessionStatus   = "Status"
	SessionComment  = "Comment"
)

func MemberFromPage(page notion.Page) models.Member {
	props := page.Properties
	return models.Member{
		ID:           page.ID,
		Name:         props.Title(MemberName),
		Age:          optionalAge(props.OptionalNumber(MemberAge)),
		Experience:   props.RichText(MemberExperience),
		Gender:       props.Select(MemberGender),
		Location:     props.Select(MemberLocation),
		StartDate:    props.Date(MemberStartDate),
		Status:       props.Select(MemberStatus),
		Tuition:      amount(props.Number(MemberTuition)),
		TotalTuition: amount(props.Number(MemberTotalTuition)),
		URL:          page.URL,
	}
}

func SessionFromPage(page notion.Page) models.Session {
	props := page.Properties
	return models.Session{
		ID:       page.ID,
		Title:    props.Title(SessionTitle),
		Date:     props.Date(SessionDate),
		Sequence: props.Label(SessionSequence),
		Status:   props.Select(SessionStatus),
		Feedback: props.RichText(SessionFeedback),
		Note:     props.RichText(SessionNote),
		Comment:  props.RichText(SessionComment),
		Images: lo.FilterMap(props.Files(SessionImage), func(f notion.FileObject, _ int) (string, bool) {
			return f.URL()
		}),
	}
}

// SessionDetailFromPage reads Content only when the record has that column.
// Rendering prefers blocks and falls back to it.
func SessionDetailFromPage(page notion.Page, children []notion.Block) models.SessionDetail {
	detail := models.SessionDetail{
		Session: SessionFromPage(page),
		Blocks:  MapBlocks(children),
	}
	if page.Properties.Has(SessionContent) {
		detail.Content = page.Properties.RichText(SessionContent)
	}
	return detail
}

func optionalAge(n *float64) *int {
	if n == nil || *n < 0 {
		return nil
	}
	return lo.ToPtr(int(*n))
}

func amount(n float64) int {
	return max(int(n), 0)
}
