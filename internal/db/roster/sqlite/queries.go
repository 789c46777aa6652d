package sqlite

import "fmt"

const (
	tableUsers = "users"

	colChatID   = "chat_id"
	colUsername = "username"
)

var createTable = fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
  %s INTEGER NOT NULL,
  %s TEXT NOT NULL,
  PRIMARY KEY (%s, %s)
);`, tableUsers, colChatID, colUsername, colChatID, colUsername)

var insertUser = fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES (?, ?);`,
	tableUsers, colChatID, colUsername)

var selectByChatId = fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ? ORDER BY rowid ASC;`,
	colUsername, tableUsers, colChatID)

var deleteByChatId = fmt.Sprintf(`DELETE FROM %s WHERE %s = ?;`,
	tableUsers, colChatID)
