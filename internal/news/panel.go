package news

import "github.com/five82/missionctl/internal/fetch"

// Card is the display form of one article.
type Card struct {
	Image  string
	Source string
	Title  string
	Link   string
	Label  string
}

// Panel is what the feed pane shows: either cards or a single notice.
type Panel struct {
	Cards  []Card
	Notice string
}

// BuildPanel converts a load result into a Panel, replacing whatever was
// shown before.
func BuildPanel(result fetch.Result[[]Article]) Panel {
	if !result.OK() {
		return Panel{Notice: OfflineNotice}
	}
	cards := make([]Card, 0, len(result.Value))
	for _, a := range result.Value {
		cards = append(cards, Card{
			Image:  a.Image(),
			Source: a.Source,
			Title:  a.Title,
			Link:   a.URL,
			Label:  ReadLabel,
		})
	}
	return Panel{Cards: cards}
}
