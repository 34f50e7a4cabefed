package server

import (
	"github.com/rezonia/einvoice/internal/model"
	"github.com/rezonia/einvoice/internal/signature"
)

// DetectResponse is the response for the detect endpoint
type DetectResponse struct {
	Format string         `json:"format"`
	Size   int            `json:"size"`
	Tag    *signature.Tag `json:"tag,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// DecodeResponse is the response for the decode endpoint
type DecodeResponse struct {
	JobID      string         `json:"job_id"`
	Source     string         `json:"source"`
	Attachment string         `json:"attachment,omitempty"`
	Tag        signature.Tag  `json:"tag"`
	Invoice    *model.Invoice `json:"invoice"`
	Warnings   []string       `json:"warnings,omitempty"`
}

// ProfileInfo describes one producible version/profile/dialect triple
type ProfileInfo struct {
	Version     model.Version `json:"version"`
	Profile     model.Profile `json:"profile"`
	Dialect     model.Dialect `json:"dialect"`
	GuidelineID string        `json:"guideline_id,omitempty"`
}

// ProfilesResponse is the response for the profiles endpoint
type ProfilesResponse struct {
	Combinations []ProfileInfo `json:"combinations"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error    string   `json:"error"`
	Details  string   `json:"details,omitempty"`
	JobID    string   `json:"job_id,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
