package iocli

import "context"

//go:generate moq -out io_mock.go . IO

// IO абстрагирует ввод/вывод CLI, чтобы команды и диалог конфликта можно было тестировать
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	// ReadInputContext читает строку, но возвращается при отмене ctx.
	// Недочитанная строка достанется следующему вызову.
	ReadInputContext(ctx context.Context, prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
