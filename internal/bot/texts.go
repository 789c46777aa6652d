package bot

const (
	helpText = "Команды:\n" +
		"/add - добавить пользователей\n" +
		"Пример: /add @username1 @username2\n" +
		"/all - тегнуть всех\n" +
		"/clear - очистить список\n" +
		"/rude_mode_enable - включить грубый режим\n" +
		"/rude_mode_disable - выключить грубый режим\n" +
		"/set_rude_word - задать слово для грубого режима\n" +
		"Пример: /set_rude_word людей"

	addUsageText      = "Укажите никнеймы: /add @username1 @username2\nили ответьте следующим сообщением никнеймами"
	addRetryText      = "Укажите никнеймы через пробел, например: @username1 @username2"
	addedFormat       = "Добавлены: %s"
	allPresentText    = "Все пользователи уже добавлены"
	addFailedText     = "Не удалось сохранить пользователей. Попробуйте позже"
	groupsOnlyText    = "Только для групп"
	promoteBotText    = "Сделайте бота администратором"
	rosterEmptyText   = "Список пуст. Используйте /add"
	rosterFailedText  = "Не удалось получить список. Попробуйте позже"
	clearedText       = "Список очищен"
	alreadyClearText  = "Список уже пуст"
	clearFailedText   = "Не удалось очистить список. Попробуйте позже"
	rudeEnabledText   = "Грубый режим включён"
	rudeDisabledText  = "Грубый режим выключен"
	wordUsageText     = "Укажите слово после команды: /set_rude_word слово\nили ответьте следующим сообщением словом"
	wordTooLongText   = "Слово слишком длинное, максимум 20 символов"
	wordCharsetText   = "Слово должно состоять только из букв"
	wordSetFormat     = "Слово «%s» установлено"
	settingsSaveError = "Не удалось сохранить настройки. Попробуйте позже"
)
