package stub

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"marginalia/internal/dto"

	"github.com/google/uuid"
)

// Store holds the fixture state behind the stub backend: a couple of
// books with clips and any conversations created during the run. It is
// deliberately tiny; the real backend owns the actual semantics.
type Store struct {
	mu            sync.Mutex
	now           func() time.Time
	books         []dto.BookResponse
	clips         []dto.ClipResponse
	conversations map[string]*conversationState
}

type conversationState struct {
	metadata dto.ConversationMetadataResponse
	messages []dto.MessageResponse
}

func NewStore() *Store {
	s := &Store{
		now:           func() time.Time { return time.Now().UTC() },
		conversations: make(map[string]*conversationState),
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	created := s.now().Add(-24 * time.Hour).Format(time.RFC3339)

	authorsA := "Marcus Aurelius"
	authorsB := "Annie Dillard;Tim Ferriss"
	bookA := dto.BookResponse{
		Id:        uuid.NewString(),
		Title:     "Meditations",
		Authors:   &authorsA,
		CreatedAt: created,
	}
	bookB := dto.BookResponse{
		Id:        uuid.NewString(),
		Title:     "The Writing Life",
		Authors:   &authorsB,
		CreatedAt: created,
	}
	s.books = []dto.BookResponse{bookA, bookB}

	start, end := 12, 14
	onlyStart := 201
	s.clips = []dto.ClipResponse{
		{
			Id:           uuid.NewString(),
			DocumentId:   bookA.Id,
			Title:        bookA.Title,
			Authors:      bookA.Authors,
			Content:      "You have power over your mind - not outside events.",
			LocationType: "page",
			ClipStart:    &start,
			ClipEnd:      &end,
			CreatedAt:    created,
		},
		{
			Id:           uuid.NewString(),
			DocumentId:   bookB.Id,
			Title:        bookB.Title,
			Authors:      bookB.Authors,
			Content:      "How we spend our days is, of course, how we spend our lives.",
			LocationType: "location",
			ClipStart:    &onlyStart,
			CreatedAt:    created,
		},
	}
}

func (s *Store) Library() []dto.LibraryItemResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]dto.LibraryItemResponse, 0, len(s.books))
	for _, book := range s.books {
		count := 0
		for _, clip := range s.clips {
			if clip.DocumentId == book.Id {
				count++
			}
		}
		items = append(items, dto.LibraryItemResponse{
			Id:            book.Id,
			Title:         book.Title,
			Authors:       book.Authors,
			CreatedAt:     book.CreatedAt,
			UpdatedAt:     book.UpdatedAt,
			NClips:        count,
			ThumbnailPath: book.ThumbnailPath,
			CatalogueId:   book.CatalogueId,
		})
	}
	return items
}

func (s *Store) Book(id string) (dto.BookResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, book := range s.books {
		if book.Id == id {
			return book, true
		}
	}
	return dto.BookResponse{}, false
}

func (s *Store) Annotations(documentId string) (dto.DocumentAnnotationsResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var source *dto.BookResponse
	for i := range s.books {
		if s.books[i].Id == documentId {
			source = &s.books[i]
			break
		}
	}
	if source == nil {
		return dto.DocumentAnnotationsResponse{}, false
	}

	annotations := make([]dto.AnnotationResponse, 0)
	for _, clip := range s.clips {
		if clip.DocumentId != documentId {
			continue
		}
		annotations = append(annotations, dto.AnnotationResponse{
			Id:           clip.Id,
			Content:      clip.Content,
			LocationType: clip.LocationType,
			ClipStart:    clip.ClipStart,
			ClipEnd:      clip.ClipEnd,
			CreatedAt:    clip.CreatedAt,
			UpdatedAt:    clip.UpdatedAt,
		})
	}

	return dto.DocumentAnnotationsResponse{
		Annotations: annotations,
		Total:       len(annotations),
		Source:      *source,
	}, true
}

func (s *Store) DeleteBook(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, book := range s.books {
		if book.Id != id {
			continue
		}
		s.books = append(s.books[:i], s.books[i+1:]...)
		kept := s.clips[:0]
		for _, clip := range s.clips {
			if clip.DocumentId != id {
				kept = append(kept, clip)
			}
		}
		s.clips = kept
		return true
	}
	return false
}

func (s *Store) Clip(id string) (dto.ClipResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, clip := range s.clips {
		if clip.Id == id {
			return clip, true
		}
	}
	return dto.ClipResponse{}, false
}

// SimilarClips returns every other clip; the stub has no embeddings.
func (s *Store) SimilarClips(id string) ([]dto.ClipResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	similar := make([]dto.ClipResponse, 0)
	for _, clip := range s.clips {
		if clip.Id == id {
			found = true
			continue
		}
		similar = append(similar, clip)
	}
	return similar, found
}

func (s *Store) SampleClips(limit int) []dto.ClipResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.clips) {
		limit = len(s.clips)
	}
	return append([]dto.ClipResponse(nil), s.clips[:limit]...)
}

func (s *Store) DeleteClip(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, clip := range s.clips {
		if clip.Id == id {
			s.clips = append(s.clips[:i], s.clips[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) CreateConversation() dto.ConversationMetadataResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().Format(time.RFC3339)
	metadata := dto.ConversationMetadataResponse{
		Id:        uuid.NewString(),
		Name:      "Untitled",
		CreatedAt: now,
	}
	s.conversations[metadata.Id] = &conversationState{metadata: metadata}
	return metadata
}

func (s *Store) Conversations() []dto.ConversationMetadataResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]dto.ConversationMetadataResponse, 0, len(s.conversations))
	for _, state := range s.conversations {
		list = append(list, state.metadata)
	}
	return list
}

func (s *Store) Conversation(id string) (dto.GetConversationResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.conversations[id]
	if !ok {
		return dto.GetConversationResponse{}, false
	}
	return dto.GetConversationResponse{
		ConversationMetadataResponse: state.metadata,
		Messages:                     append([]dto.MessageResponse(nil), state.messages...),
	}, true
}

func (s *Store) DeleteConversation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[id]; !ok {
		return false
	}
	delete(s.conversations, id)
	return true
}

func (s *Store) AddMessage(conversationId string, req dto.AddMessageRequest) (dto.MessageResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendMessage(conversationId, req.Content, req.Sender, req.ParentMessageId, nil)
}

// Complete stores a canned system answer citing the first seeded clip.
func (s *Store) Complete(conversationId string, req dto.CompletionRequest) (dto.MessageResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content := fmt.Sprintf("I could not find anything in your highlights about %q.", req.Query)
	var sources []dto.ClipResponse
	if len(s.clips) > 0 {
		cited := s.clips[0]
		content = fmt.Sprintf("Your highlights touch on this: %s ```%s```", cited.Content, cited.Id)
		sources = []dto.ClipResponse{cited}
	}
	return s.appendMessage(conversationId, content, "system", req.ParentMessageId, sources)
}

func (s *Store) appendMessage(conversationId, content, sender string, parentId *string, sources []dto.ClipResponse) (dto.MessageResponse, bool) {
	state, ok := s.conversations[conversationId]
	if !ok {
		return dto.MessageResponse{}, false
	}

	now := s.now().Format(time.RFC3339)
	message := dto.MessageResponse{
		Id:        uuid.NewString(),
		Content:   content,
		Sender:    sender,
		ParentId:  parentId,
		CreatedAt: now,
		Sources:   sources,
	}
	state.messages = append(state.messages, message)
	state.metadata.MessageCount = len(state.messages)
	leaf := message.Id
	state.metadata.CurrentLeafMessageId = &leaf
	state.metadata.UpdatedAt = &now
	return message, true
}

func (s *Store) Search(query string) []dto.SearchResultResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(query)
	results := make([]dto.SearchResultResponse, 0)
	for _, clip := range s.clips {
		if needle != "" && !strings.Contains(strings.ToLower(clip.Content), needle) &&
			!strings.Contains(strings.ToLower(clip.Title), needle) {
			continue
		}
		results = append(results, dto.SearchResultResponse{
			Id:          clip.Id,
			Title:       clip.Title,
			Description: clip.Content,
		})
	}
	return results
}
