package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New создает JSON логгер сервера, пишущий в stdout
func New(logLevel string) *logrus.Logger {
	return newLogger(logLevel, os.Stdout, &logrus.JSONFormatter{})
}

// NewConsole создает текстовый логгер для CLI. Логи идут в stderr, чтобы не смешиваться с выводом команд.
func NewConsole(logLevel string) *logrus.Logger {
	return newLogger(logLevel, os.Stderr, &logrus.TextFormatter{DisableTimestamp: true})
}

func newLogger(logLevel string, out io.Writer, formatter logrus.Formatter) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(formatter)
	log.SetOutput(out)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
