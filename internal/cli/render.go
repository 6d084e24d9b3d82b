package cli

import (
	"fmt"
	"io"
	"strings"

	"marginalia/internal/entity"
	"marginalia/pkg/citation"

	"github.com/fatih/color"
)

var (
	userColor    = color.New(color.FgYellow, color.Bold)
	systemColor  = color.New(color.FgCyan, color.Bold)
	titleColor   = color.New(color.Bold)
	faintColor   = color.New(color.Faint)
	errorColor   = color.New(color.FgRed, color.Bold)
	citeColor    = color.New(color.FgGreen)
	missingColor = color.New(color.FgRed)
)

func renderConversation(w io.Writer, conversation *entity.Conversation) {
	name := conversation.Metadata.Name
	if name == "" {
		name = "Untitled"
	}
	titleColor.Fprintln(w, name)
	fmt.Fprintln(w)

	for _, message := range conversation.Messages {
		renderMessage(w, message)
	}
}

// renderMessage prints one transcript turn. System answers get their
// citation markers resolved inline, numbered into a source list below.
func renderMessage(w io.Writer, message entity.Message) {
	if message.Sender == entity.SenderUser {
		userColor.Fprintln(w, "you")
		fmt.Fprintln(w, strings.TrimSpace(message.Content))
		fmt.Fprintln(w)
		return
	}

	systemColor.Fprintln(w, "assistant")

	segments := citation.Resolve(message)
	var cited []entity.Clip
	var b strings.Builder
	for _, segment := range segments {
		switch segment.Kind {
		case citation.SegmentText:
			b.WriteString(segment.Text)
		case citation.SegmentCitation:
			cited = append(cited, segment.Source)
			b.WriteString(citeColor.Sprintf("[%d]", len(cited)))
		case citation.SegmentMissing:
			b.WriteString(missingColor.Sprint("[source not found]"))
		}
	}
	fmt.Fprintln(w, strings.TrimSpace(b.String()))

	for i, clip := range cited {
		faintColor.Fprintf(w, "  [%d] %s - %s", i+1, clip.Book.Title, strings.Join(clip.Book.Authors, ", "))
		if label := clip.LocationLabel(); label != "" {
			faintColor.Fprintf(w, " (%s %s)", clip.LocationType, label)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func renderLibrary(w io.Writer, items []entity.LibraryItem) {
	if len(items) == 0 {
		faintColor.Fprintln(w, "library is empty")
		return
	}
	for _, item := range items {
		titleColor.Fprint(w, item.Title)
		fmt.Fprintf(w, " - %s", strings.Join(item.Authors, ", "))
		faintColor.Fprintf(w, "  %d clips  %s\n", item.ClipCount, item.Id)
	}
}

func renderClip(w io.Writer, clip *entity.Clip) {
	titleColor.Fprintln(w, clip.Book.Title)
	faintColor.Fprintln(w, strings.Join(clip.Book.Authors, ", "))
	if label := clip.LocationLabel(); label != "" {
		faintColor.Fprintf(w, "%s %s\n", clip.LocationType, label)
	}
	fmt.Fprintln(w, clip.Content)
}

func renderClips(w io.Writer, clips []entity.Clip) {
	for i := range clips {
		renderClip(w, &clips[i])
		fmt.Fprintln(w)
	}
}

func renderAnnotations(w io.Writer, annotations *entity.DocumentAnnotations) {
	titleColor.Fprintln(w, annotations.Source.Title)
	faintColor.Fprintf(w, "%s - %d annotations\n\n", strings.Join(annotations.Source.Authors, ", "), annotations.Total)
	for _, clip := range annotations.Annotations {
		if label := clip.LocationLabel(); label != "" {
			faintColor.Fprintf(w, "%s %s\n", clip.LocationType, label)
		}
		fmt.Fprintln(w, clip.Content)
		fmt.Fprintln(w)
	}
}

func renderConversationList(w io.Writer, list []entity.ConversationMetadata) {
	if len(list) == 0 {
		faintColor.Fprintln(w, "no conversations yet")
		return
	}
	for _, metadata := range list {
		name := metadata.Name
		if name == "" {
			name = "Untitled"
		}
		titleColor.Fprint(w, name)
		faintColor.Fprintf(w, "  %d messages  %s\n", metadata.MessageCount, metadata.Id)
	}
}

func renderSearchResults(w io.Writer, query string, results []entity.SearchResult) {
	if len(results) == 0 {
		faintColor.Fprintf(w, "no results found for %q\n", query)
		return
	}
	for _, result := range results {
		titleColor.Fprintln(w, result.Title)
		fmt.Fprintln(w, result.Description)
		fmt.Fprintln(w)
	}
}
