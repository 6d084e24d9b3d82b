package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"marginalia/internal/service"
)

// App dispatches CLI subcommands onto the view services. Each command
// mirrors a page of the original web client.
type App struct {
	Conversations service.IConversationService
	Library       service.ILibraryService
	Clips         service.IClipService
	Search        service.ISearchService
	Imports       service.IImportService
	Out           io.Writer
}

const usage = `usage: marginalia <command> [arguments]

commands:
  library                      list the books in your library
  document <id>                show a book's annotations
  delete-document <id>         remove a book and its clips
  clip <id>                    show a single clip
  similar <id>                 show clips similar to one
  clips [-limit n] [-random]   sample clips from the library
  search <query>               search your highlights
  ask <query>                  ask a question over your highlights
  conversations                list past conversations
  conversation <id>            replay a conversation
  continue <id> <query>        ask a follow-up in a conversation
  delete-conversation <id>     remove a conversation
  import <file.csv>            import a readwise export
`

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.Out, usage)
		return nil
	}

	command, rest := args[0], args[1:]
	switch command {
	case "library":
		return a.runLibrary(ctx)
	case "document":
		return a.runDocument(ctx, rest)
	case "delete-document":
		return a.runDeleteDocument(ctx, rest)
	case "clip":
		return a.runClip(ctx, rest)
	case "similar":
		return a.runSimilar(ctx, rest)
	case "clips":
		return a.runClips(ctx, rest)
	case "search":
		return a.runSearch(ctx, rest)
	case "ask":
		return a.runAsk(ctx, rest)
	case "conversations":
		return a.runConversations(ctx)
	case "conversation":
		return a.runConversation(ctx, rest)
	case "continue":
		return a.runContinue(ctx, rest)
	case "delete-conversation":
		return a.runDeleteConversation(ctx, rest)
	case "import":
		return a.runImport(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.Out, usage)
		return nil
	default:
		fmt.Fprint(a.Out, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *App) runLibrary(ctx context.Context) error {
	items, err := a.Library.List(ctx)
	if err != nil {
		return err
	}
	renderLibrary(a.Out, items)
	return nil
}

func (a *App) runDocument(ctx context.Context, args []string) error {
	id, err := requireId(args, "document")
	if err != nil {
		return err
	}
	annotations, err := a.Library.GetDocumentAnnotations(ctx, id)
	if err != nil {
		return err
	}
	renderAnnotations(a.Out, annotations)
	return nil
}

func (a *App) runDeleteDocument(ctx context.Context, args []string) error {
	id, err := requireId(args, "delete-document")
	if err != nil {
		return err
	}
	if err := a.Library.DeleteDocument(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "document deleted")
	return nil
}

func (a *App) runClip(ctx context.Context, args []string) error {
	id, err := requireId(args, "clip")
	if err != nil {
		return err
	}
	clip, err := a.Clips.Get(ctx, id)
	if err != nil {
		return err
	}
	renderClip(a.Out, clip)
	return nil
}

func (a *App) runSimilar(ctx context.Context, args []string) error {
	id, err := requireId(args, "similar")
	if err != nil {
		return err
	}
	clips, err := a.Clips.GetSimilar(ctx, id)
	if err != nil {
		return err
	}
	renderClips(a.Out, clips)
	return nil
}

func (a *App) runClips(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("clips", flag.ContinueOnError)
	flags.SetOutput(a.Out)
	limit := flags.Int("limit", 10, "maximum number of clips")
	random := flags.Bool("random", true, "sample clips at random")
	if err := flags.Parse(args); err != nil {
		return err
	}

	clips, err := a.Clips.Sample(ctx, *limit, *random)
	if err != nil {
		return err
	}
	renderClips(a.Out, clips)
	return nil
}

func (a *App) runSearch(ctx context.Context, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	results, err := a.Search.Search(ctx, query)
	if err != nil {
		return err
	}
	renderSearchResults(a.Out, query, results)
	return nil
}

// runAsk walks the original two-page flow in one command: create a
// conversation, park the query in the handoff slot, then open the
// conversation page, which consumes the slot and assembles the
// transcript.
func (a *App) runAsk(ctx context.Context, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	metadata, err := a.Conversations.StartFromQuery(ctx, query)
	if err != nil {
		return err
	}

	conversation, err := a.Conversations.Open(ctx, metadata.Id)
	if err != nil {
		return err
	}
	renderConversation(a.Out, conversation)
	faintColor.Fprintf(a.Out, "conversation %s\n", metadata.Id)
	return nil
}

func (a *App) runConversations(ctx context.Context) error {
	list, err := a.Conversations.List(ctx)
	if err != nil {
		return err
	}
	renderConversationList(a.Out, list)
	return nil
}

func (a *App) runConversation(ctx context.Context, args []string) error {
	id, err := requireId(args, "conversation")
	if err != nil {
		return err
	}
	conversation, err := a.Conversations.Open(ctx, id)
	if err != nil {
		return err
	}
	renderConversation(a.Out, conversation)
	return nil
}

func (a *App) runContinue(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("continue requires a conversation id and a query")
	}
	id := args[0]
	query := strings.TrimSpace(strings.Join(args[1:], " "))

	messages, err := a.Conversations.Ask(ctx, id, query)
	if err != nil {
		return err
	}
	for _, message := range messages {
		renderMessage(a.Out, message)
	}
	return nil
}

func (a *App) runDeleteConversation(ctx context.Context, args []string) error {
	id, err := requireId(args, "delete-conversation")
	if err != nil {
		return err
	}
	if err := a.Conversations.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "conversation deleted")
	return nil
}

func (a *App) runImport(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("import requires a file path")
	}
	path := args[0]

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer file.Close()

	imported, err := a.Imports.ImportReadwiseCSV(ctx, filepath.Base(path), file)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "imported %d new annotations\n", imported)
	return nil
}

// PrintError applies the one error-surfacing policy: every failure is
// shown to the user with the failing operation's context attached.
func (a *App) PrintError(err error) {
	errorColor.Fprintf(a.Out, "error: %v\n", err)
}

func requireId(args []string, command string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("%s requires exactly one id", command)
	}
	return args[0], nil
}
