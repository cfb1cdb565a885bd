package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Driver operations (debug)
		"Created context %d (%dx%d)":                      "コンテキスト %d を作成しました (%dx%d)",
		"Created surface %d (%dx%d)":                      "サーフェス %d を作成しました (%dx%d)",
		"Created image %d: %s %dx%d, %d planes, %d bytes": "イメージ %d を作成しました: %s %dx%d, %d プレーン, %d バイト",

		// Rollback warnings
		"Rollback of image %d failed: %s":                     "イメージ %d のロールバックに失敗しました: %s",
		"Destroying composite surface of image %d failed: %s": "イメージ %d の合成サーフェスの破棄に失敗しました: %s",

		// CLI
		"Device reports %d supported formats": "デバイスは %d 個のフォーマットをサポートしています",
		"Readback completed: %d bytes":        "読み戻しが完了しました: %d バイト",
		"Output saved to %s":                  "出力を %s に保存しました",

		// Errors
		"Failed to load config: %s":  "設定の読み込みに失敗しました: %s",
		"Failed to read input: %s":   "入力の読み込みに失敗しました: %s",
		"Failed to write output: %s": "出力の書き込みに失敗しました: %s",
	})
}
