package ui

import (
	"math"
	"strconv"
)

// Analytics event names.
const (
	EventScrollDepth    = "scroll_depth"
	EventFormSubmission = "form_submission"
	EventSectionView    = "section_view"
	EventPageLoad       = "page_load"
)

// ScrollMilestones are reported once each, in order, the first time they are reached.
var ScrollMilestones = []int{25, 50, 75, 100}

// ScrollDepth is the percentage of the document seen so far, clamped to 0..100.
func ScrollDepth(scrollTop, viewportHeight, documentHeight float64) int {
	if documentHeight <= 0 {
		return 100
	}
	d := int(math.Round((scrollTop + viewportHeight) / documentHeight * 100))
	if d < 0 {
		return 0
	}
	if d > 100 {
		return 100
	}
	return d
}

// Scroll updates the header style and the deepest scroll position. Every
// milestone crossed since the previous maximum is emitted, so a fast jump
// from the top to the bottom reports 25, 50, 75 and 100.
func (s State) Scroll(scrollTop, viewportHeight, documentHeight float64) Update {
	s.HeaderScrolled = scrollTop > HeaderScrollThreshold

	depth := ScrollDepth(scrollTop, viewportHeight, documentHeight)
	if depth <= s.MaxScrollDepth {
		return s.unchanged()
	}

	var events []Event
	for _, m := range ScrollMilestones {
		if s.MaxScrollDepth < m && depth >= m {
			events = append(events, Event{
				Name:  EventScrollDepth,
				Props: map[string]string{"depth": strconv.Itoa(m) + "%"},
			})
		}
	}
	s.MaxScrollDepth = depth
	return Update{State: s, Events: events}
}

// SectionView reports a section entering the viewport. Sections without an id are not tracked.
func SectionView(sectionID string) []Event {
	if sectionID == "" {
		return nil
	}
	return []Event{{Name: EventSectionView, Props: map[string]string{"section": sectionID}}}
}

// PageLoad is emitted once when the page is ready.
func PageLoad(title, userAgent, timestamp string) Event {
	return Event{Name: EventPageLoad, Props: map[string]string{
		"page_title": title,
		"user_agent": userAgent,
		"timestamp":  timestamp,
	}}
}
