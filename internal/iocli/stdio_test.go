package iocli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdio_PrintDoesNotPanic(t *testing.T) {
	stdio := NewStdio()

	// Вывод уходит в реальный stdout, проверяем только отсутствие panic
	assert.NotPanics(t, func() {
		stdio.Println("feed", "loaded")
		stdio.Printf("%d item(s)\n", 3)
	})

	n, err := stdio.Write([]byte("raw\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestStdio_ReadInput(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	go func() {
		_, _ = w.Write([]byte("  load more  \n"))
		_ = w.Close()
	}()

	// Подменяем os.Stdin на pipe, имитируя ввод пользователя
	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()
	os.Stdin = r

	stdio := NewStdio()
	got, err := stdio.ReadInput("> ")
	require.NoError(t, err)
	// Ввод обрезается от окружающих пробелов
	assert.Equal(t, "load more", got)
}
