package sqlite

import "fmt"

const (
	tableSettings = "user_settings"

	colChatID  = "chat_id"
	colEnabled = "rude_mode_enabled"
	colWord    = "rude_word"
)

var createTable = fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
  %s INTEGER PRIMARY KEY,
  %s INTEGER NOT NULL DEFAULT 0,
  %s TEXT
);`, tableSettings, colChatID, colEnabled, colWord)

var upsertEnabled = fmt.Sprintf(`
INSERT INTO %s (%s, %s)
VALUES (?, ?)
ON CONFLICT(%s) DO UPDATE SET
  %s = excluded.%s;
`, tableSettings,
	colChatID, colEnabled,
	colChatID,
	colEnabled, colEnabled,
)

// a new row keeps the column default for rude_mode_enabled
var upsertWord = fmt.Sprintf(`
INSERT INTO %s (%s, %s)
VALUES (?, ?)
ON CONFLICT(%s) DO UPDATE SET
  %s = excluded.%s;
`, tableSettings,
	colChatID, colWord,
	colChatID,
	colWord, colWord,
)

var selectByChatId = fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ?;`,
	colEnabled, colWord, tableSettings, colChatID)
