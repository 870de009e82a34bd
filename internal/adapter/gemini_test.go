// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joms1025/company-management-app/internal/config"
)

func newTestGemini(t *testing.T, serverURL string) TranscriptionClient {
	t.Helper()
	c, err := NewGeminiClient(config.AI{APIKey: "test-key", Model: "gemini-test", BaseURL: serverURL})
	require.NoError(t, err)
	return c
}

func geminiAnswer(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
}

func TestNewGeminiClient_MissingKey(t *testing.T) {
	_, err := NewGeminiClient(config.AI{Model: "gemini-test"})
	require.ErrorIs(t, err, ErrAIKeyMissing)
}

func TestProcessVoiceNote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 2)
		assert.NotNil(t, req.Contents[0].Parts[1].InlineData)
		assert.Equal(t, "audio/webm", req.Contents[0].Parts[1].InlineData.MimeType)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(geminiAnswer(
			`{"originalTranscription":"hola equipo","detectedLanguage":"Spanish","translatedText":"hello team","summary":"A greeting."}`,
		))
	}))
	defer srv.Close()

	c := newTestGemini(t, srv.URL)
	data, err := c.ProcessVoiceNote(context.Background(), []byte("fake-audio"), "audio/webm")

	require.NoError(t, err)
	assert.Equal(t, "hola equipo", data.OriginalTranscription)
	assert.Equal(t, "Spanish", data.DetectedLanguage)
	assert.Equal(t, "hello team", data.TranslatedText)
	assert.Equal(t, "A greeting.", data.Summary)
}

func TestProcessVoiceNote_StripsMarkdownFences(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(geminiAnswer(
			"```json\n{\"originalTranscription\":\"bonjour\",\"detectedLanguage\":\"French\",\"translatedText\":\"hello\"}\n```",
		))
	}))
	defer srv.Close()

	c := newTestGemini(t, srv.URL)
	data, err := c.ProcessVoiceNote(context.Background(), []byte("fake-audio"), "audio/webm")

	require.NoError(t, err)
	assert.Equal(t, "bonjour", data.OriginalTranscription)
	assert.Equal(t, "hello", data.TranslatedText)
}

func TestProcessVoiceNote_KeyRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 403, "status": "PERMISSION_DENIED", "message": "API key not valid"},
		})
	}))
	defer srv.Close()

	c := newTestGemini(t, srv.URL)
	_, err := c.ProcessVoiceNote(context.Background(), []byte("fake-audio"), "audio/webm")

	require.ErrorIs(t, err, ErrAIKeyInvalid)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestProcessVoiceNote_QuotaExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestGemini(t, srv.URL)
	_, err := c.ProcessVoiceNote(context.Background(), []byte("fake-audio"), "audio/webm")

	require.ErrorIs(t, err, ErrAIQuota)
}

func TestProcessVoiceNote_UnusableAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(geminiAnswer("sorry, I could not process the audio"))
	}))
	defer srv.Close()

	c := newTestGemini(t, srv.URL)
	_, err := c.ProcessVoiceNote(context.Background(), []byte("fake-audio"), "audio/webm")

	require.ErrorIs(t, err, ErrAIBadResponse)
}

func TestProcessVoiceNote_EmptyAudio(t *testing.T) {
	c := newTestGemini(t, "http://127.0.0.1:0")
	_, err := c.ProcessVoiceNote(context.Background(), nil, "audio/webm")
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestStripMarkdownFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripMarkdownFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripMarkdownFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripMarkdownFences(`{"a":1}`))
}
