package i18n

var messagesEN = map[string]string{
	"app.title": "Ghostty Config Editor",

	"section.all":        "All",
	"section.appearance": "Appearance",
	"section.font":       "Font",
	"section.window":     "Window",
	"section.input":      "Input",
	"section.shell":      "Shell",
	"section.platform":   "Platform",
	"section.advanced":   "Advanced",

	"ui.search_placeholder": "Search options...",
	"ui.loading":            "Loading options...",
	"ui.no_options":         "No options found",
	"ui.load_failed":        "Failed to load options.",
	"ui.modified":           "modified",
	"ui.default":            "default",
	"ui.empty":              "(empty)",
	"ui.save":               "Save",
	"ui.cancel":             "Cancel",
	"ui.exit":               "Exit",
	"ui.exit_confirm":       "Exit Ghostty Config Editor?",
	"ui.server_stopped":     "Server stopped.",
	"ui.value":              "Value",
	"ui.custom":             "Custom:",
	"ui.current":            "Current:",
	"ui.loading_fonts":      "Loading fonts...",
	"ui.filter_fonts":       "Filter fonts...",
	"ui.fonts_failed":       "Failed to load fonts",
	"ui.no_fonts":           "No fonts match filter",
	"ui.language":           "Language: %s",

	"help.list":  "j/k: move | enter: edit | h/l: section | /: search | L: language | q: exit",
	"help.text":  "enter: save | esc: cancel",
	"help.color": "j/k: palette | tab: hex field | enter: save | esc: cancel",
	"help.font":  "up/down: move | tab: select | type to filter | enter: save | esc: cancel",

	"status.saved":       "Saved: %s = %s",
	"status.save_failed": "Failed to save: %s",
	"status.exit_failed": "Failed to exit",

	"server.starting":       "Ghostty config API listening at %s",
	"server.shutting_down":  "Shutting down server...",
	"server.exit_requested": "Exit requested, shutting down server...",
	"server.browser_failed": "Failed to open browser: %v",

	"error.parse_schema":      "Error parsing ghostty config schema: %v",
	"error.ghostty_not_found": "Make sure ghostty is installed and available in PATH",
	"error.no_options":        "No configuration options found",
	"error.load_config":       "Error loading config: %v",
}

var messagesJA = map[string]string{
	"app.title": "Ghostty Config Editor",

	"section.all":        "すべて",
	"section.appearance": "外観",
	"section.font":       "フォント",
	"section.window":     "ウィンドウ",
	"section.input":      "入力",
	"section.shell":      "シェル",
	"section.platform":   "プラットフォーム",
	"section.advanced":   "詳細",

	"ui.search_placeholder": "オプションを検索...",
	"ui.loading":            "オプションを読み込み中...",
	"ui.no_options":         "オプションが見つかりません",
	"ui.load_failed":        "オプションの読み込みに失敗しました。",
	"ui.modified":           "変更済",
	"ui.default":            "デフォルト",
	"ui.empty":              "(空)",
	"ui.save":               "保存",
	"ui.cancel":             "キャンセル",
	"ui.exit":               "終了",
	"ui.exit_confirm":       "Ghostty Config Editor を終了しますか?",
	"ui.server_stopped":     "サーバーが停止しました。",
	"ui.value":              "値",
	"ui.custom":             "カスタム:",
	"ui.current":            "現在:",
	"ui.loading_fonts":      "フォントを読み込み中...",
	"ui.filter_fonts":       "フォントを検索...",
	"ui.fonts_failed":       "フォントの読み込みに失敗",
	"ui.no_fonts":           "一致するフォントがありません",
	"ui.language":           "言語: %s",

	"help.list":  "j/k: 移動 | enter: 編集 | h/l: セクション | /: 検索 | L: 言語 | q: 終了",
	"help.text":  "enter: 保存 | esc: キャンセル",
	"help.color": "j/k: パレット | tab: 16進入力 | enter: 保存 | esc: キャンセル",
	"help.font":  "up/down: 移動 | tab: 選択 | 入力でフィルター | enter: 保存 | esc: キャンセル",

	"status.saved":       "保存しました: %s = %s",
	"status.save_failed": "保存に失敗: %s",
	"status.exit_failed": "終了に失敗",

	"server.starting":       "Ghostty設定APIを起動中: %s",
	"server.shutting_down":  "サーバーを停止中...",
	"server.exit_requested": "終了リクエスト、サーバーを停止中...",
	"server.browser_failed": "ブラウザを開けませんでした: %v",

	"error.parse_schema":      "Ghostty設定スキーマの解析エラー: %v",
	"error.ghostty_not_found": "ghosttyがインストールされ、PATHに含まれていることを確認してください",
	"error.no_options":        "設定オプションが見つかりません",
	"error.load_config":       "設定の読み込みエラー: %v",
}
