package scraper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Saucer42/hockey-schedule-ical/internal/game"
)

// The grid endpoint nests its item list at a fixed path inside the response
// body: {"dt": {"it": [...]}}.
const (
	payloadTableKey = "dt"
	payloadItemsKey = "it"
)

// fallbackColumns maps the rendered table's positional cells to the
// canonical raw-item keys: Date | Time | Rink | Home | Home Score | Away |
// Away Score.
var fallbackColumns = []string{
	"gameDate", "gameTime", "rinkName",
	"homeTeamName", "homeScore", "awayTeamName", "awayScore",
}

// extractItems pulls the raw schedule items out of one grid response body.
// A body that parses but does not carry the expected dt.it shape yields an
// empty list, not an error: the site responding with a different payload is
// a zero-game run, not a malformed one.
func extractItems(body []byte) ([]game.RawItem, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding grid response: %w", err)
	}

	table, ok := payload[payloadTableKey].(map[string]interface{})
	if !ok {
		return nil, nil
	}
	list, ok := table[payloadItemsKey].([]interface{})
	if !ok {
		return nil, nil
	}

	items := make([]game.RawItem, 0, len(list))
	for _, entry := range list {
		if item, ok := entry.(map[string]interface{}); ok {
			items = append(items, game.RawItem(item))
		}
	}
	return items, nil
}

// parseScheduleTable reads game rows out of the rendered schedule table.
// Rows with fewer than four cells (headers, separators) are skipped; the
// rest map positionally onto the canonical raw-item keys and flow through
// the same normalization path as intercepted items.
func parseScheduleTable(html string) ([]game.RawItem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing rendered page: %w", err)
	}

	var items []game.RawItem
	doc.Find("table#grdSchedule tr, table.schedule tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}
		item := game.RawItem{}
		cells.EachWithBreak(func(i int, cell *goquery.Selection) bool {
			if i >= len(fallbackColumns) {
				return false
			}
			if text := strings.TrimSpace(cell.Text()); text != "" {
				item[fallbackColumns[i]] = text
			}
			return true
		})
		items = append(items, item)
	})
	return items, nil
}
