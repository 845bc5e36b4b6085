package domain

// Platform identifies where a stream is broadcast.
type Platform string

const (
	PlatformTwitch  Platform = "Twitch"
	PlatformYouTube Platform = "YouTube"
)

// Match is the canonical match record exposed by the service. It is built
// once per fetch cycle from a spreadsheet row and never mutated afterwards.
type Match struct {
	ID          int    `json:"id"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Match       string `json:"match"`
	Phase       string `json:"phase"`
	Competition string `json:"competition"`
	Stream      string `json:"stream"`
	StreamURL   string `json:"streamUrl,omitempty"`
}

// StreamLink is a resolved, clickable reference to a broadcast channel.
// Derived from a Match on demand, never persisted.
type StreamLink struct {
	URL          string   `json:"url"`
	Platform     Platform `json:"platform"`
	OriginalText string   `json:"originalText"`
	DisplayName  string   `json:"displayName"`
}

// MatchesResponse is the payload returned by /api/matches.
type MatchesResponse struct {
	Matches []Match `json:"matches"`
	Total   int     `json:"total"`
}

// StreamsResponse is the payload returned by /api/matches/{id}/streams.
type StreamsResponse struct {
	MatchID int          `json:"matchId"`
	Streams []StreamLink `json:"streams"`
}

// CalendarLinks is the payload returned by /api/matches/{id}/calendar.
type CalendarLinks struct {
	GoogleURL  string `json:"googleUrl"`
	OutlookURL string `json:"outlookUrl"`
}

// NewMatchesResponse builds the standard list payload.
func NewMatchesResponse(matches []Match) MatchesResponse {
	if matches == nil {
		matches = []Match{}
	}
	return MatchesResponse{Matches: matches, Total: len(matches)}
}
