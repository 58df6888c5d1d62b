package log

import (
	"github.com/iyouport-org/noticeboard/pkg/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DBHook persists every entry at or above its level into the log table.
type DBHook struct {
	db    *gorm.DB
	level logrus.Level
}

func NewDBHook(db *gorm.DB, level logrus.Level) *DBHook {
	return &DBHook{
		db:    db,
		level: level,
	}
}

func (hook *DBHook) Levels() []logrus.Level {
	levels := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		if level <= hook.level {
			levels = append(levels, level)
		}
	}
	return levels
}

func (hook *DBHook) Fire(entry *logrus.Entry) error {
	// a silent session keeps the insert itself out of the log
	return hook.db.Session(&gorm.Session{Logger: silent}).Create(model.NewLog(entry)).Error
}
