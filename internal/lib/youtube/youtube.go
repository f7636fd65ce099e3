package youtube

import (
	"fmt"
	"net/url"
	"regexp"
)

// Recognized reference shapes: watch URLs, youtu.be short links, embed
// URLs, legacy /v/ URLs and bare 11-character IDs.
var (
	reWatch = regexp.MustCompile(`(?:youtube\.com/watch\?(?:.*&)?v=)([A-Za-z0-9_-]{11})`)
	reShort = regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`)
	reEmbed = regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`)
	reV     = regexp.MustCompile(`youtube\.com/v/([A-Za-z0-9_-]{11})`)
	reBare  = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// ExtractID resolves any recognized YouTube reference to its canonical
// 11-character video ID. Returns "" and false when nothing matches.
func ExtractID(ref string) (string, bool) {
	if reBare.MatchString(ref) {
		return ref, true
	}

	for _, re := range []*regexp.Regexp{reWatch, reShort, reEmbed, reV} {
		if m := re.FindStringSubmatch(ref); m != nil {
			return m[1], true
		}
	}

	return "", false
}

// EmbedOptions control the player flags appended to embed URLs.
type EmbedOptions struct {
	Autoplay bool
	Mute     bool
	Loop     bool
	Controls bool
}

// ThumbnailURL returns the thumbnail URL for a video ID. Quality is one
// of "default", "mqdefault", "hqdefault", "sddefault", "maxresdefault";
// empty falls back to "hqdefault".
func ThumbnailURL(id, quality string) string {
	if quality == "" {
		quality = "hqdefault"
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", id, quality)
}

// EmbedURL returns the iframe embed URL for a video ID.
func EmbedURL(id string, opts EmbedOptions) string {
	q := url.Values{}
	q.Set("autoplay", boolFlag(opts.Autoplay))
	q.Set("mute", boolFlag(opts.Mute))
	q.Set("controls", boolFlag(opts.Controls))
	if opts.Loop {
		// looping a single video requires a playlist of itself
		q.Set("loop", "1")
		q.Set("playlist", id)
	} else {
		q.Set("loop", "0")
	}

	return fmt.Sprintf("https://www.youtube.com/embed/%s?%s", id, q.Encode())
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
