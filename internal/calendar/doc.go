// Package calendar serializes normalized games into an iCalendar document.
//
// The emitter owns output identity and order: duplicate UIDs collapse to the
// last occurrence and events are written chronologically. DTSTART and DTEND
// keep the Eastern wall-clock times under a TZID parameter, backed by an
// embedded VTIMEZONE definition, rather than converting to UTC. UIDs come
// from the game package and stay stable across runs, so subscribed calendars
// update entries instead of duplicating them when the feed is re-published.
package calendar
