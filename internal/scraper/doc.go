// Package scraper fetches a team's schedule grid from the True North Hockey site.
//
// The grid is rendered client-side, so the scraper drives a headless Chrome
// session and intercepts the background JSON response from the schedule
// endpoint instead of parsing the initial HTML. Interception starts before
// navigation so an early response cannot be missed. If no matching response
// arrives, it falls back to reading rows out of the rendered schedule table.
// Either way the page's visible text is returned alongside the items, for
// the season-label detection downstream.
package scraper
