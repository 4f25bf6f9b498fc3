package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"ytmeta/internal/services"
)

// Metadata is the projected subset of yt-dlp's info dictionary. Scalar fields
// are nil when yt-dlp did not report them; list fields are never nil.
type Metadata struct {
	ID          *string  `json:"id"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Duration    *float64 `json:"duration"`
	Views       *int64   `json:"views"`
	Likes       *int64   `json:"likes"`
	UploadDate  *string  `json:"upload_date"`
	Uploader    *string  `json:"uploader"`
	UploaderID  *string  `json:"uploader_id"`
	ChannelURL  *string  `json:"channel_url"`
	Thumbnail   *string  `json:"thumbnail"`
	Tags        []string `json:"tags"`
	Categories  []string `json:"categories"`
}

// MetadataFields lists the JSON keys of Metadata in emission order.
var MetadataFields = []string{
	"id",
	"title",
	"description",
	"duration",
	"views",
	"likes",
	"upload_date",
	"uploader",
	"uploader_id",
	"channel_url",
	"thumbnail",
	"tags",
	"categories",
}

// DisplayTitle returns the title for log output, falling back to the id.
func (m Metadata) DisplayTitle() string {
	if m.Title != nil && strings.TrimSpace(*m.Title) != "" {
		return strings.TrimSpace(*m.Title)
	}
	if m.ID != nil {
		return *m.ID
	}
	return ""
}

// FetchMetadata runs yt-dlp in dump-only mode and projects the result.
func (c *Client) FetchMetadata(ctx context.Context, url string) (Metadata, error) {
	args := buildMetadataArgs(url)
	result, err := services.RunTool(ctx, c.runner, c.cfg.Binary, args...)
	if err != nil {
		return Metadata{}, fmt.Errorf("fetch metadata: %w", err)
	}
	meta, err := ParseMetadata([]byte(result.Stdout))
	if err != nil {
		return Metadata{}, fmt.Errorf("fetch metadata: %w", err)
	}
	return meta, nil
}

func buildMetadataArgs(url string) []string {
	return []string{
		"--dump-json",
		"--no-download",
		"--no-warnings",
		"--",
		url,
	}
}

// ParseMetadata decodes a single yt-dlp info JSON object and projects the
// allow-listed fields.
func ParseMetadata(data []byte) (Metadata, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Metadata{}, &services.ParseError{Source: "yt-dlp metadata", Err: errors.New("empty output")}
	}
	if trimmed[0] != '{' {
		return Metadata{}, &services.ParseError{Source: "yt-dlp metadata", Err: errors.New("expected a JSON object")}
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	var object json.RawMessage
	if err := decoder.Decode(&object); err != nil {
		return Metadata{}, &services.ParseError{Source: "yt-dlp metadata", Err: err}
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return Metadata{}, &services.ParseError{Source: "yt-dlp metadata", Err: errors.New("expected a single JSON object")}
	}
	fields, err := services.DecodeObject(object)
	if err != nil {
		return Metadata{}, &services.ParseError{Source: "yt-dlp metadata", Err: err}
	}

	// Fields of an unexpected JSON type are treated like missing ones. Counts
	// are decoded as floats because extractors are not consistent about them.
	return Metadata{
		ID:          services.OptionalField[string](fields, "id"),
		Title:       services.OptionalField[string](fields, "title"),
		Description: services.OptionalField[string](fields, "description"),
		Duration:    services.OptionalField[float64](fields, "duration"),
		Views:       toCount(services.OptionalField[float64](fields, "view_count")),
		Likes:       toCount(services.OptionalField[float64](fields, "like_count")),
		UploadDate:  services.OptionalField[string](fields, "upload_date"),
		Uploader:    services.OptionalField[string](fields, "uploader"),
		UploaderID:  services.OptionalField[string](fields, "uploader_id"),
		ChannelURL:  services.OptionalField[string](fields, "channel_url"),
		Thumbnail:   services.OptionalField[string](fields, "thumbnail"),
		Tags:        stringList(fields, "tags"),
		Categories:  stringList(fields, "categories"),
	}, nil
}

func toCount(value *float64) *int64 {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return nil
	}
	count := int64(math.Round(*value))
	return &count
}

func stringList(fields map[string]json.RawMessage, key string) []string {
	values := services.OptionalField[[]string](fields, key)
	if values == nil || *values == nil {
		return []string{}
	}
	return *values
}
