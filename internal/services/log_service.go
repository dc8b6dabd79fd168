package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"curio/internal/config"

	"github.com/sirupsen/logrus"
)

type LogService struct {
	Log *logrus.Logger
}

func NewLogService(configuration *config.Configuration) LogService {
	log := logrus.New()
	setLogOutputType(configuration, log)
	setLogLevel(configuration, log)
	setLogFormatter(configuration, log)
	return LogService{
		Log: log,
	}
}

func setLogFormatter(configuration *config.Configuration, log *logrus.Logger) {
	switch configuration.Log.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{})
	}
}

func setLogLevel(configuration *config.Configuration, log *logrus.Logger) {
	switch strings.ToLower(configuration.Log.Level) {
	case "info":
		log.SetLevel(logrus.InfoLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	case "fatal":
		log.SetLevel(logrus.FatalLevel)
	case "panic":
		log.SetLevel(logrus.PanicLevel)
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	}
}

func setLogOutputType(configuration *config.Configuration, log *logrus.Logger) {
	switch configuration.Log.Output {
	case "stdout", "":
		log.SetOutput(os.Stdout)
	case "file":
		if configuration.Log.LogPath == "" {
			log.SetOutput(os.Stdout)
			log.Warn("file output requires log_path to be set, falling back to stdout")
			return
		}
		logFolder := strings.TrimRight(configuration.Log.LogPath, "/")
		logName := fmt.Sprintf("%s-%s.log", "curio", time.Now().Format("2006-01-02"))
		logPath := filepath.Join(logFolder, logName)
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal(err)
		}
		log.Out = file
	}
}
