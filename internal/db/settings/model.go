package settings

type ChatSettings struct {
	ChatID          int64
	RudeModeEnabled bool
	// RudeWord is empty when no word was configured for the chat.
	RudeWord string
}
