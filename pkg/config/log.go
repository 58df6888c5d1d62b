package config

import (
	"errors"
	"io"
	"os"

	logger "github.com/iyouport-org/noticeboard/pkg/log"
	log "github.com/sirupsen/logrus"
)

var ErrIsDirectory = errors.New("is directory")

type LogTOML struct {
	File    string `mapstructure:"file" toml:"file" validate:"required"`
	Level   string `mapstructure:"level" toml:"level" validate:"required,oneof=panic fatal error warn info debug trace"`
	Format  string `mapstructure:"format" toml:"format" validate:"omitempty,oneof=text json xml"`
	Persist bool   `mapstructure:"persist" toml:"persist"`
}

type LogGo struct {
	File      io.Writer
	Level     log.Level
	Formatter log.Formatter
	Persist   bool
}

func (lt *LogTOML) Init() (lg *LogGo, err error) {
	lg = &LogGo{
		Persist: lt.Persist,
	}
	switch lt.File {
	case "stdout":
		lg.File = os.Stdout
	case "stderr":
		lg.File = os.Stderr
	default:
		fi, err := os.Stat(lt.File)
		if err != nil {
			if !os.IsNotExist(err) {
				log.WithField("log.file", lt.File).Error(err)
				return nil, err
			}
		} else if fi.IsDir() {
			log.WithField("log.file", lt.File).Error(ErrIsDirectory)
			return nil, ErrIsDirectory
		}
		lg.File, err = os.OpenFile(lt.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.WithField("log.file", lt.File).Error(err)
			return nil, err
		}
	}
	lg.Level, err = log.ParseLevel(lt.Level)
	if err != nil {
		log.WithField("log.level", lt.Level).Error(err)
		return nil, err
	}
	switch lt.Format {
	case "json":
		lg.Formatter = &log.JSONFormatter{}
	case "xml":
		lg.Formatter = logger.XMLFormatter{}
	default:
		lg.Formatter = &log.TextFormatter{FullTimestamp: true}
	}
	return lg, nil
}
