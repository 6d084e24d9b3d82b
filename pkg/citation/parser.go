package citation

import (
	"strings"

	"marginalia/internal/entity"
)

// System answers cite their sources inline: a clip id fenced by triple
// backticks, e.g. "Napoleon lost ```9b2d...``` at Waterloo". The parser
// splits an answer into plain text and citation segments, resolving
// each cited id against the message's own source list.

type SegmentKind string

const (
	SegmentText     SegmentKind = "text"
	SegmentCitation SegmentKind = "citation"
	SegmentMissing  SegmentKind = "missing"
)

const marker = "```"

type Segment struct {
	Kind     SegmentKind
	Text     string      // set for text segments
	SourceId string      // set for citation and missing segments
	Source   entity.Clip // set for citation segments
}

// ExtractSourceIds returns the fenced ids in order of appearance.
func ExtractSourceIds(content string) []string {
	parts := strings.Split(content, marker)
	ids := make([]string, 0)
	for i := 1; i < len(parts); i += 2 {
		if id := strings.TrimSpace(parts[i]); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Resolve renders a message into ordered segments. Markers referencing
// an id absent from the message's sources become missing segments; the
// caller decides how to display those (e.g. "source not found").
func Resolve(message entity.Message) []Segment {
	parts := strings.Split(message.Content, marker)
	segments := make([]Segment, 0, len(parts))

	for i, part := range parts {
		if i%2 == 0 {
			if part != "" {
				segments = append(segments, Segment{Kind: SegmentText, Text: part})
			}
			continue
		}

		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		if clip, ok := message.SourceById(id); ok {
			segments = append(segments, Segment{Kind: SegmentCitation, SourceId: id, Source: clip})
		} else {
			segments = append(segments, Segment{Kind: SegmentMissing, SourceId: id})
		}
	}

	return segments
}

// StripMarkers returns the answer text with all citation fences removed,
// for contexts that want the prose alone.
func StripMarkers(content string) string {
	parts := strings.Split(content, marker)
	var b strings.Builder
	for i := 0; i < len(parts); i += 2 {
		b.WriteString(parts[i])
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
