package config

const (
	envSheetsBaseURL = "GOOGLE_SHEETS_BASE_URL"
	envSheetsID      = "GOOGLE_SHEETS_ID"
	envSheetsRange   = "GOOGLE_SHEETS_RANGE"
	envSheetsAPIKey  = "GOOGLE_SHEETS_API_KEY"

	defaultSheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"
	// The community-maintained schedule sheet.
	defaultSheetsID = "1i3ji5iDuACafqPPR0CPGI4ARk6Z2d853KeKcHef2Wto"
	// Row 3 onward; the first two rows are headers.
	defaultSheetsRange = "A3:H100"
)

// SheetsConfig controls how we talk to the Google Sheets values API.
type SheetsConfig struct {
	BaseURL       string
	SpreadsheetID string
	Range         string
	APIKey        string
}

func loadSheets() SheetsConfig {
	return SheetsConfig{
		BaseURL:       envOrDefault(envSheetsBaseURL, defaultSheetsBaseURL),
		SpreadsheetID: envOrDefault(envSheetsID, defaultSheetsID),
		Range:         envOrDefault(envSheetsRange, defaultSheetsRange),
		APIKey:        envOrDefault(envSheetsAPIKey, ""),
	}
}
