package gsheets

const providerName = "gsheets"

// valuesResponse mirrors the Sheets v4 values API payload. Rows shorter than
// the requested range come back truncated, never padded.
type valuesResponse struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}
