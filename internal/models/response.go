package models

import (
	"eventrec.dev/internal/clock"
)

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data,omitempty"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// NewOKResponseWithClock creates a successful response using the provided clock.
func NewOKResponseWithClock(data interface{}, c clock.Clock) ResponseModel {
	return NewResponseWithClock(200, data, "OK", c)
}

func NewListResponseWithClock(list interface{}, limitExceeded bool, c clock.Clock) ResponseModel {
	data := map[string]interface{}{
		"limitExceeded": limitExceeded,
		"list":          list,
	}
	return NewOKResponseWithClock(data, c)
}

func NewEntryResponseWithClock(entry interface{}, c clock.Clock) ResponseModel {
	data := map[string]interface{}{
		"entry": entry,
	}
	return NewOKResponseWithClock(data, c)
}

// NewResponseWithClock creates a standard response using the provided clock.
func NewResponseWithClock(code int, data interface{}, text string, c clock.Clock) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: c.NowUnixMilli(),
		Data:        data,
		Text:        text,
		Version:     2,
	}
}
