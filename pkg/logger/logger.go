package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New создает настроенный экземпляр logrus с JSON-форматом вывода
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		// Некорректный уровень — работаем на info
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}
