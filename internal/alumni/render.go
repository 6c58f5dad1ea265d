package alumni

import "fmt"

// Card is the projection of one record into the directory grid.
type Card struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Avatar   string `json:"avatar"`
}

// Container receives the rendered cards. Implementations must treat Clear as
// a full reset so repeated renders never accumulate content.
type Container interface {
	Clear()
	Append(Card)
	SetEmptyState(message string)
	SetResultsCount(count, total int)
}

const emptyStateMessage = "No alumni found"

// Render projects records into the container in input order: prior content is
// cleared, one card is appended per record, and the results count is published
// as a side channel. An empty sequence produces an explicit empty-state
// marker rather than a blank container. Render is idempotent.
func Render(records []Record, total int, c Container) {
	c.Clear()

	if len(records) == 0 {
		c.SetEmptyState(emptyStateMessage)
		c.SetResultsCount(0, total)
		return
	}

	for _, r := range records {
		c.Append(cardFor(r))
	}
	c.SetResultsCount(len(records), total)
}

func cardFor(r Record) Card {
	return Card{
		ID:       r.ID,
		Name:     r.Name,
		Subtitle: fmt.Sprintf("Batch %s • %s", r.Batch, r.Department),
		Email:    r.Email,
		Phone:    r.Phone,
		Company:  r.Company,
		Position: r.Position,
		Avatar:   r.Avatar,
	}
}

// View is the JSON directory view served over HTTP; it implements Container.
type View struct {
	Cards      []Card `json:"cards"`
	Count      int    `json:"count"`
	Total      int    `json:"total"`
	EmptyState string `json:"emptyState,omitempty"`
}

func NewView() *View {
	return &View{Cards: []Card{}}
}

func (v *View) Clear() {
	v.Cards = []Card{}
	v.EmptyState = ""
	v.Count = 0
	v.Total = 0
}

func (v *View) Append(c Card) {
	v.Cards = append(v.Cards, c)
}

func (v *View) SetEmptyState(message string) {
	v.EmptyState = message
}

func (v *View) SetResultsCount(count, total int) {
	v.Count = count
	v.Total = total
}
