package models

// SignUpMetadata carries the optional profile attributes supplied at
// registration. The auth service consumes it when creating the profile row
// for the new identity.
type SignUpMetadata struct {
	Name       string     `json:"name"`
	Role       Role       `json:"role,omitempty"`
	Department Department `json:"department,omitempty"`
}

// SignUpRequest is the body of POST /api/auth/signup.
type SignUpRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Metadata SignUpMetadata `json:"metadata"`
}

// SignInRequest is the body of POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Identity is the public view of an account returned by auth endpoints.
type Identity struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	EmailConfirmed bool   `json:"email_confirmed"`
}

// AuthResponse is returned by signup, signin and refresh. Session is nil
// when no session was issued (signup with confirmation pending).
type AuthResponse struct {
	Identity Identity `json:"identity"`
	Session  *Session `json:"session,omitempty"`
}

// UpdateRoleRequest is the body of PATCH /api/profiles/{id}/role.
type UpdateRoleRequest struct {
	Role Role `json:"role"`
}

// PostMessageRequest is the body of POST /api/chat/{department}/messages.
type PostMessageRequest struct {
	Type        MessageType    `json:"type"`
	TextContent string         `json:"text_content,omitempty"`
	VoiceNote   *VoiceNoteData `json:"voice_note_data,omitempty"`
}

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssignedTo  Department `json:"assigned_to_department"`
	DueDate     string     `json:"due_date"`
}

// UpdateTaskStatusRequest is the body of PATCH /api/tasks/{id}/status.
type UpdateTaskStatusRequest struct {
	Status TaskStatus `json:"status"`
}

// APIError is the uniform JSON error body produced by the HTTP handlers.
type APIError struct {
	Message string `json:"message"`
}
