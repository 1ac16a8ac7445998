package models

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type HistoryResponse struct {
	UserID   string        `json:"userId"`
	Count    int           `json:"count"`
	Analyses []HistoryItem `json:"analyses"`
}

type HistoryItem struct {
	ID           string         `json:"id"`
	DocumentName string         `json:"documentName"`
	Result       AnalysisResult `json:"result"`
	CreatedAt    time.Time      `json:"createdAt"`
}
