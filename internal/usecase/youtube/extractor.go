package youtube

import (
	"net/url"
	"strings"

	"github.com/aistudybuddy/study-buddy/errors"
)

// ExtractVideoID parses any of the accepted YouTube URL shapes into the
// canonical video identifier. Parsing is strict: an unrecognized host or a
// shape with no locatable identifier is an error, never a guess.
func ExtractVideoID(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.ErrInvalidVideoURL(rawURL)
	}

	host := strings.ToLower(parsed.Hostname())

	if host == "youtu.be" {
		id := strings.TrimPrefix(parsed.Path, "/")
		if id == "" {
			return "", errors.ErrInvalidVideoURL(rawURL)
		}
		return id, nil
	}

	switch host {
	case "www.youtube.com", "youtube.com", "m.youtube.com":
	default:
		return "", errors.ErrInvalidVideoURL(rawURL)
	}

	if parsed.Path == "/watch" {
		id := parsed.Query().Get("v")
		if id == "" {
			return "", errors.ErrInvalidVideoURL(rawURL)
		}
		return id, nil
	}

	for _, prefix := range []string{"/embed/", "/v/"} {
		if strings.HasPrefix(parsed.Path, prefix) {
			id := strings.TrimPrefix(parsed.Path, prefix)
			if idx := strings.Index(id, "/"); idx != -1 {
				id = id[:idx]
			}
			if id == "" {
				return "", errors.ErrInvalidVideoURL(rawURL)
			}
			return id, nil
		}
	}

	return "", errors.ErrInvalidVideoURL(rawURL)
}
