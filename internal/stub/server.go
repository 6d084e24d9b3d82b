package stub

import (
	"encoding/csv"
	"strconv"

	"marginalia/internal/dto"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
)

// NewApp builds a fiber app implementing the backend surface the client
// consumes, over in-memory fixtures. Used by cmd/stubserver and by
// transport-level tests.
func NewApp(store *Store) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB uploads
	})

	app.Use(otelfiber.Middleware())

	registerConversationRoutes(app, store)
	registerDocumentRoutes(app, store)
	registerClipRoutes(app, store)

	app.Get("/library", func(c *fiber.Ctx) error {
		return c.JSON(store.Library())
	})

	app.Post("/search", func(c *fiber.Ctx) error {
		var req dto.SearchRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid search payload")
		}
		return c.JSON(store.Search(req.Query))
	})

	app.Post("/document/upload/readwise", func(c *fiber.Ctx) error {
		return handleReadwiseUpload(c, store)
	})

	return app
}

func registerConversationRoutes(app *fiber.App, store *Store) {
	app.Post("/conversation", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusCreated).JSON(store.CreateConversation())
	})

	app.Get("/conversation", func(c *fiber.Ctx) error {
		return c.JSON(store.Conversations())
	})

	app.Get("/conversation/:id", func(c *fiber.Ctx) error {
		conversation, ok := store.Conversation(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "conversation not found")
		}
		return c.JSON(conversation)
	})

	app.Delete("/conversation/:id", func(c *fiber.Ctx) error {
		if !store.DeleteConversation(c.Params("id")) {
			return fiber.NewError(fiber.StatusNotFound, "conversation not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Post("/conversation/:id/message", func(c *fiber.Ctx) error {
		var req dto.AddMessageRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid message payload")
		}
		message, ok := store.AddMessage(c.Params("id"), req)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "conversation not found")
		}
		return c.Status(fiber.StatusCreated).JSON(message)
	})

	app.Post("/conversation/:id/completion", func(c *fiber.Ctx) error {
		var req dto.CompletionRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid completion payload")
		}
		message, ok := store.Complete(c.Params("id"), req)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "conversation not found")
		}
		return c.JSON(message)
	})
}

func registerDocumentRoutes(app *fiber.App, store *Store) {
	app.Get("/documents/:id", func(c *fiber.Ctx) error {
		book, ok := store.Book(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "document not found")
		}
		return c.JSON(book)
	})

	app.Get("/documents/:id/annotations", func(c *fiber.Ctx) error {
		annotations, ok := store.Annotations(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "document not found")
		}
		return c.JSON(annotations)
	})

	// The real backend exposes deletion under the singular prefix.
	app.Delete("/document/:id", func(c *fiber.Ctx) error {
		if !store.DeleteBook(c.Params("id")) {
			return fiber.NewError(fiber.StatusNotFound, "document not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func registerClipRoutes(app *fiber.App, store *Store) {
	app.Get("/clip/:id/similar", func(c *fiber.Ctx) error {
		similar, ok := store.SimilarClips(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "clip not found")
		}
		return c.JSON(similar)
	})

	app.Get("/clip/:id", func(c *fiber.Ctx) error {
		clip, ok := store.Clip(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "clip not found")
		}
		return c.JSON(clip)
	})

	app.Get("/clip", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit"))
		return c.JSON(store.SampleClips(limit))
	})

	app.Delete("/clip/:id", func(c *fiber.Ctx) error {
		if !store.DeleteClip(c.Params("id")) {
			return fiber.NewError(fiber.StatusNotFound, "clip not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func handleReadwiseUpload(c *fiber.Ctx, store *Store) error {
	header, err := c.FormFile("csv_file")
	if err != nil {
		// The web uploader used a plain "file" field before the CSV one.
		header, err = c.FormFile("file")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing upload file")
	}

	file, err := header.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unreadable upload")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil || len(records) == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "invalid csv")
	}

	columns := map[string]bool{}
	for _, name := range records[0] {
		columns[name] = true
	}
	if !columns["Highlight"] || !columns["Book Title"] {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "missing required csv columns")
	}

	// Fixture import just counts rows; nothing is persisted.
	return c.JSON(dto.ImportResponse{NewAnnotationImports: len(records) - 1})
}
