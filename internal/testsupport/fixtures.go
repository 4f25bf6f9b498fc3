package testsupport

// VideoID is the id used by the canned yt-dlp fixtures.
const VideoID = "dQw4w9WgXcQ"

// MetadataJSON is a trimmed yt-dlp --dump-json payload. It carries fields that
// must be dropped by projection and non-ASCII text that must survive emission.
const MetadataJSON = `{"id": "dQw4w9WgXcQ", "title": "नमस्ते दुनिया <live> & more", "description": "पहला वीडियो", "duration": 212, "view_count": 1500000000, "like_count": 17000000, "upload_date": "20091025", "uploader": "Rick Astley", "uploader_id": "@RickAstleyYT", "channel_url": "https://www.youtube.com/channel/UCuAXFkgsw1L7xaCfnd5JJOw", "thumbnail": "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", "tags": ["rick astley", "never gonna give you up"], "categories": ["Music"], "formats": [{"format_id": "251"}], "webpage_url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "age_limit": 0}`

// SparseMetadataJSON only carries an id; every other projected field is absent.
const SparseMetadataJSON = `{"id": "abc123"}`

// WhisperJSON is a whisper --output_format json payload.
const WhisperJSON = `{
  "text": " नमस्ते दोस्तों। Aaj hum baat karenge.",
  "segments": [
    {"id": 0, "seek": 0, "start": 0.0, "end": 2.5, "text": " नमस्ते दोस्तों।", "tokens": [50364], "temperature": 0.0},
    {"id": 1, "seek": 0, "start": 2.5, "end": 5.12, "text": " Aaj hum baat karenge. ", "tokens": [50489], "temperature": 0.0},
    {"id": 2, "seek": 0, "start": 2.5, "end": 6.0, "text": "", "tokens": [], "temperature": 0.0}
  ],
  "language": "hi"
}`
