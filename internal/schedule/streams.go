package schedule

import (
	"strings"
	"unicode"

	"github.com/drumst0ck/koi-calendar/internal/domain"
)

const (
	twitchPrefix  = "twitch/"
	youtubePrefix = "youtube/"
)

// ResolveStreams converts a free-text stream description and an optional
// explicit URL into structured stream links. The output order is
// deterministic for the same input. Empty input yields an empty slice.
func ResolveStreams(streamText, streamURL string) []domain.StreamLink {
	if streamURL != "" {
		return []domain.StreamLink{{
			URL:          streamURL,
			Platform:     platformFromURL(streamURL),
			OriginalText: streamText,
			DisplayName:  streamText,
		}}
	}

	if idx := strings.Index(streamText, twitchPrefix); idx >= 0 {
		return channelLinks(streamText[idx+len(twitchPrefix):], domain.PlatformTwitch)
	}
	if idx := strings.Index(streamText, youtubePrefix); idx >= 0 {
		return channelLinks(streamText[idx+len(youtubePrefix):], domain.PlatformYouTube)
	}

	segments := strings.FieldsFunc(streamText, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	links := make([]domain.StreamLink, 0, len(segments))
	for _, seg := range segments {
		links = append(links, segmentLink(seg))
	}
	return links
}

// platformFromURL detects the platform of an explicit stream URL by
// substring match, defaulting to Twitch.
func platformFromURL(url string) domain.Platform {
	if strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be") {
		return domain.PlatformYouTube
	}
	return domain.PlatformTwitch
}

// channelLinks expands a slash-separated channel list ("teamA/teamB") into
// one link per non-empty channel on the given platform.
func channelLinks(part string, platform domain.Platform) []domain.StreamLink {
	channels := strings.Split(part, "/")
	links := make([]domain.StreamLink, 0, len(channels))
	for _, channel := range channels {
		if channel == "" {
			continue
		}
		links = append(links, domain.StreamLink{
			URL:          channelURL(channel, platform),
			Platform:     platform,
			OriginalText: prefixFor(platform) + channel,
			DisplayName:  channel,
		})
	}
	return links
}

// segmentLink resolves one whitespace/comma separated segment. Segments may
// carry their own platform as a domain prefix; bare names default to Twitch.
func segmentLink(seg string) domain.StreamLink {
	switch {
	case strings.HasPrefix(seg, "twitch.tv/"):
		return domain.StreamLink{
			URL:          "https://" + seg,
			Platform:     domain.PlatformTwitch,
			OriginalText: seg,
			DisplayName:  strings.TrimPrefix(seg, "twitch.tv/"),
		}
	case strings.HasPrefix(seg, "youtube.com/"):
		display := strings.TrimPrefix(seg, "youtube.com/@")
		display = strings.TrimPrefix(display, "youtube.com/")
		return domain.StreamLink{
			URL:          "https://" + seg,
			Platform:     domain.PlatformYouTube,
			OriginalText: seg,
			DisplayName:  display,
		}
	default:
		return domain.StreamLink{
			URL:          channelURL(seg, domain.PlatformTwitch),
			Platform:     domain.PlatformTwitch,
			OriginalText: seg,
			DisplayName:  seg,
		}
	}
}

func channelURL(channel string, platform domain.Platform) string {
	if platform == domain.PlatformYouTube {
		return "https://youtube.com/@" + channel
	}
	return "https://twitch.tv/" + channel
}

func prefixFor(platform domain.Platform) string {
	if platform == domain.PlatformYouTube {
		return youtubePrefix
	}
	return twitchPrefix
}
