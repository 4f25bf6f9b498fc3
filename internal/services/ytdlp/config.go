package ytdlp

// Config captures runtime settings for yt-dlp operations.
type Config struct {
	// Binary is the yt-dlp executable name or path.
	Binary string
	// AudioFormat is passed to --audio-format (e.g., "mp3").
	AudioFormat string
	// AudioQuality is passed to --audio-quality; "0" is best.
	AudioQuality string
	// FFmpegLocation is passed to --ffmpeg-location when set.
	FFmpegLocation string
}

// yt-dlp defaults.
const (
	DefaultBinary       = "yt-dlp"
	DefaultAudioFormat  = "mp3"
	DefaultAudioQuality = "0"
	OutputTemplate      = "%(id)s.%(ext)s"
)

// audioExtensions lists the file extensions recognised as extracted audio.
var audioExtensions = map[string]struct{}{
	".mp3":  {},
	".m4a":  {},
	".opus": {},
	".ogg":  {},
	".wav":  {},
	".flac": {},
	".aac":  {},
	".webm": {},
}

// AudioPattern describes the audio discovery glob for error messages.
const AudioPattern = "*.{mp3,m4a,opus,ogg,wav,flac,aac,webm}"
