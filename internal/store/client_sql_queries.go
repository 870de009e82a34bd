// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// The cache schema is installed on every open. Look-aside data only: the
// backend remains the source of truth and both tables can be dropped at any
// time without losing anything.
const clientCacheSchema = `
	CREATE TABLE IF NOT EXISTS local_session (
		id            INTEGER PRIMARY KEY CHECK (id = 1),
		subject       TEXT NOT NULL,
		email         TEXT NOT NULL DEFAULT '',
		access_token  TEXT NOT NULL,
		refresh_token TEXT NOT NULL,
		expires_at    TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS cached_messages (
		id              TEXT PRIMARY KEY,
		sender_id       TEXT NOT NULL,
		sender_name     TEXT NOT NULL,
		department      TEXT NOT NULL,
		type            TEXT NOT NULL,
		text_content    TEXT NOT NULL DEFAULT '',
		voice_note_data TEXT,
		timestamp       TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_cached_messages_department_ts
		ON cached_messages (department, timestamp);`

const (
	saveLocalSession = `
		INSERT INTO local_session (
			id,
			subject,
			email,
			access_token,
			refresh_token,
			expires_at
		) VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			subject       = excluded.subject,
			email         = excluded.email,
			access_token  = excluded.access_token,
			refresh_token = excluded.refresh_token,
			expires_at    = excluded.expires_at;`

	getLocalSession = `
		SELECT
			subject,
			email,
			access_token,
			refresh_token,
			expires_at
		FROM local_session
		WHERE id = 1;`

	clearLocalSession = `DELETE FROM local_session WHERE id = 1;`

	saveCachedMessage = `
		INSERT INTO cached_messages (
			id,
			sender_id,
			sender_name,
			department,
			type,
			text_content,
			voice_note_data,
			timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			sender_name     = excluded.sender_name,
			text_content    = excluded.text_content,
			voice_note_data = excluded.voice_note_data;`

	getCachedMessages = `
		SELECT
			id,
			sender_id,
			sender_name,
			department,
			type,
			text_content,
			voice_note_data,
			timestamp
		FROM cached_messages
		WHERE department IN ($1, $2)
		ORDER BY timestamp DESC
		LIMIT $3;`

	getLatestMessageTimestamp = `
		SELECT timestamp
		FROM cached_messages
		WHERE department IN ($1, $2)
		ORDER BY timestamp DESC
		LIMIT 1;`
)
