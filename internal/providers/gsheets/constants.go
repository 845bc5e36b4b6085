package gsheets

import "time"

const (
	defaultBaseURL     = "https://sheets.googleapis.com/v4/spreadsheets"
	defaultRange       = "A3:H100"
	defaultHTTPTimeout = 10 * time.Second
)
