// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createAccount = `
		INSERT INTO users (id, email, password_hash, email_confirmed)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, password_hash, email_confirmed, created_at;`

	findAccountByEmail = `
		SELECT id, email, password_hash, email_confirmed, created_at
		FROM users
		WHERE email = $1;`

	findAccountByID = `
		SELECT id, email, password_hash, email_confirmed, created_at
		FROM users
		WHERE id = $1;`

	confirmAccount = `
		UPDATE users SET email_confirmed = TRUE WHERE id = $1;`

	createProfile = `
		INSERT INTO profiles (id, name, email, role, department)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, role, department, created_at;`

	findProfileByID = `
		SELECT id, name, email, role, department, created_at
		FROM profiles
		WHERE id = $1;`

	updateProfileRole = `
		UPDATE profiles
		SET role = $2
		WHERE id = $1
		RETURNING id, name, email, role, department, created_at;`

	saveChatMessage = `
		INSERT INTO chat_messages (id, sender_id, sender_name, department, type, text_content, voice_note_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, sender_id, sender_name, department, type, text_content, voice_note_data, created_at;`

	saveRefreshToken = `
		INSERT INTO refresh_tokens (token, user_id, expires_at)
		VALUES ($1, $2, $3);`

	consumeRefreshToken = `
		UPDATE refresh_tokens
		SET revoked = TRUE
		WHERE token = $1 AND revoked = FALSE AND expires_at > now()
		RETURNING user_id;`

	revokeUserTokens = `
		UPDATE refresh_tokens
		SET revoked = TRUE
		WHERE user_id = $1 AND revoked = FALSE;`
)
