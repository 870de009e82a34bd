// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/joms1025/company-management-app/internal/config"
	"github.com/joms1025/company-management-app/models"
)

var (
	ErrAIKeyMissing  = errors.New("generative api key is not configured")
	ErrAIKeyInvalid  = errors.New("generative api key rejected")
	ErrAIQuota       = errors.New("generative api quota exceeded")
	ErrAIBadResponse = errors.New("generative api returned an unusable response")
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// voiceNotePrompt instructs the model to answer with a bare JSON object so
// the response can be unmarshalled straight into models.VoiceNoteData.
const voiceNotePrompt = `You are given a recorded voice note from a workplace chat.
Transcribe it, detect the spoken language, translate the transcription to English,
and write a one-sentence summary of the content.
Respond with ONLY a JSON object with exactly these keys:
"originalTranscription", "detectedLanguage", "translatedText", "summary".
Do not wrap the JSON in markdown fences or add any other text.`

type geminiClient struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewGeminiClient builds a TranscriptionClient backed by the Google
// generative-language REST API. Returns ErrAIKeyMissing when no API key is
// configured so callers can disable the voice-note feature rather than fail
// at request time.
func NewGeminiClient(cfg config.AI) (TranscriptionClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrAIKeyMissing
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(60 * time.Second)

	return &geminiClient{client: cli, apiKey: cfg.APIKey, model: cfg.Model}, nil
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiRequest struct {
	Contents []struct {
		Parts []geminiPart `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string `json:"response_mime_type"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// ProcessVoiceNote implements [TranscriptionClient]. The audio is sent inline
// as base64 together with the processing prompt in a single generateContent
// call. The model's JSON answer is decoded into models.VoiceNoteData.
func (g *geminiClient) ProcessVoiceNote(ctx context.Context, audio []byte, mimeType string) (models.VoiceNoteData, error) {
	if len(audio) == 0 {
		return models.VoiceNoteData{}, fmt.Errorf("%w: empty audio payload", ErrBadRequest)
	}

	var req geminiRequest
	req.Contents = make([]struct {
		Parts []geminiPart `json:"parts"`
	}, 1)
	req.Contents[0].Parts = []geminiPart{
		{Text: voiceNotePrompt},
		{InlineData: &geminiInlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(audio),
		}},
	}
	req.GenerationConfig.ResponseMimeType = "application/json"

	var out geminiResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post("/v1beta/models/" + g.model + ":generateContent")
	if err != nil {
		return models.VoiceNoteData{}, fmt.Errorf("voice note request: %w", err)
	}
	if err = mapGeminiError(resp, &out); err != nil {
		return models.VoiceNoteData{}, err
	}

	text := firstCandidateText(&out)
	if text == "" {
		return models.VoiceNoteData{}, fmt.Errorf("%w: no candidates", ErrAIBadResponse)
	}

	var data models.VoiceNoteData
	if err = json.Unmarshal([]byte(stripMarkdownFences(text)), &data); err != nil {
		return models.VoiceNoteData{}, fmt.Errorf("%w: %v", ErrAIBadResponse, err)
	}
	if data.OriginalTranscription == "" || data.TranslatedText == "" {
		return models.VoiceNoteData{}, fmt.Errorf("%w: incomplete voice note fields", ErrAIBadResponse)
	}
	return data, nil
}

func mapGeminiError(resp *resty.Response, out *geminiResponse) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := http.StatusText(resp.StatusCode())
	if out.Error != nil && out.Error.Message != "" {
		message = out.Error.Message
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAIKeyInvalid, message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrAIQuota, message)
	default:
		return fmt.Errorf("generative api http %d: %s", resp.StatusCode(), message)
	}
}

func firstCandidateText(out *geminiResponse) string {
	for _, candidate := range out.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

// stripMarkdownFences tolerates models that ignore the bare-JSON instruction
// and wrap the answer in ```json fences.
func stripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
