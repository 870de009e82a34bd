package models

import "time"

// MessageType discriminates chat message payloads.
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageVoice MessageType = "voice"
)

// VoiceNoteData is the AI-processed representation of a recorded voice note:
// the raw transcription, the detected source language, the English
// translation, and a short summary. Stored as a JSONB column on voice
// messages.
type VoiceNoteData struct {
	OriginalTranscription string `json:"originalTranscription"`
	DetectedLanguage      string `json:"detectedLanguage"`
	TranslatedText        string `json:"translatedText"`
	Summary               string `json:"summary,omitempty"`
}

// ChatMessage is a single entry in a department group chat. SenderName is
// denormalised from the sender's profile so history stays readable after a
// profile changes.
type ChatMessage struct {
	ID         string      `json:"id"`
	SenderID   string      `json:"sender_id"`
	SenderName string      `json:"sender_name"`
	Department Department  `json:"department"`
	Type       MessageType `json:"type"`

	// TextContent is set for text messages only.
	TextContent string `json:"text_content,omitempty"`

	// VoiceNote is set for voice messages only.
	VoiceNote *VoiceNoteData `json:"voice_note_data,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// TableName returns the name of the database table backing the ChatMessage model.
func (m ChatMessage) TableName() string {
	return "chat_messages"
}
