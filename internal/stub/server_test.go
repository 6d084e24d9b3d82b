package stub

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marginalia/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryEndpoint(t *testing.T) {
	app := NewApp(NewStore())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/library", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []dto.LibraryItemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, 1, item.NClips)
		assert.NotEmpty(t, item.Title)
	}
}

func TestConversationLifecycle(t *testing.T) {
	app := NewApp(NewStore())

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/conversation", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var metadata dto.ConversationMetadataResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&metadata))
	require.NotEmpty(t, metadata.Id)

	message := postJSON(t, app, "/conversation/"+metadata.Id+"/message",
		`{"content":"what do my highlights say?","sender":"user"}`, http.StatusCreated)
	var user dto.MessageResponse
	require.NoError(t, json.Unmarshal(message, &user))
	assert.Equal(t, "user", user.Sender)
	assert.Nil(t, user.ParentId)

	completion := postJSON(t, app, "/conversation/"+metadata.Id+"/completion",
		`{"query":"what do my highlights say?","parent_message_id":"`+user.Id+`"}`, http.StatusOK)
	var answer dto.MessageResponse
	require.NoError(t, json.Unmarshal(completion, &answer))
	assert.Equal(t, "system", answer.Sender)
	require.NotNil(t, answer.ParentId)
	assert.Equal(t, user.Id, *answer.ParentId)
	require.Len(t, answer.Sources, 1)
	assert.Contains(t, answer.Content, "```"+answer.Sources[0].Id+"```",
		"answer cites its source with a fenced id")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/conversation/"+metadata.Id, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var conversation dto.GetConversationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&conversation))
	assert.Len(t, conversation.Messages, 2)
	assert.Equal(t, 2, conversation.MessageCount)
	require.NotNil(t, conversation.CurrentLeafMessageId)
	assert.Equal(t, answer.Id, *conversation.CurrentLeafMessageId)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/conversation/"+metadata.Id, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/conversation/"+metadata.Id, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDocumentAnnotations(t *testing.T) {
	store := NewStore()
	app := NewApp(store)
	documentId := store.Library()[0].Id

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+documentId+"/annotations", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var annotations dto.DocumentAnnotationsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&annotations))
	assert.Equal(t, documentId, annotations.Source.Id)
	assert.Equal(t, 1, annotations.Total)
	require.Len(t, annotations.Annotations, 1)
}

func TestDeleteDocumentCascadesClips(t *testing.T) {
	store := NewStore()
	app := NewApp(store)
	documentId := store.Library()[0].Id

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/document/"+documentId, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	for _, item := range store.Library() {
		assert.NotEqual(t, documentId, item.Id)
	}
	assert.Len(t, store.SampleClips(0), 1, "the deleted book's clip goes with it")
}

func TestClipNotFound(t *testing.T) {
	app := NewApp(NewStore())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/clip/does-not-exist", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSearchFiltersByContent(t *testing.T) {
	app := NewApp(NewStore())

	body := postJSON(t, app, "/search", `{"query":"power over your mind"}`, http.StatusOK)
	var results []dto.SearchResultResponse
	require.NoError(t, json.Unmarshal(body, &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Meditations", results[0].Title)
}

func TestReadwiseUpload(t *testing.T) {
	app := NewApp(NewStore())

	csv := "Highlight,Book Title,Book Author\nsome text,Meditations,Marcus Aurelius\nmore text,Meditations,Marcus Aurelius\n"
	resp, err := app.Test(multipartUpload(t, "/document/upload/readwise", "csv_file", "export.csv", csv))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.ImportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 2, result.NewAnnotationImports)
}

func TestReadwiseUploadRejectsMissingColumns(t *testing.T) {
	app := NewApp(NewStore())

	csv := "Text,Source\nsome text,Meditations\n"
	resp, err := app.Test(multipartUpload(t, "/document/upload/readwise", "csv_file", "export.csv", csv))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func postJSON(t *testing.T, app *fiber.App, path, body string, wantStatus int) []byte {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return payload
}

func multipartUpload(t *testing.T, path, field, filename, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
