package log

import (
	"context"
	"errors"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var silent = logger.Default.LogMode(logger.Silent)

// DBLogger routes gorm's logger through logrus. SlowThreshold marks
// queries that are logged at warn level; zero disables the check.
type DBLogger struct {
	*log.Logger
	SlowThreshold time.Duration
}

func NewDBLogger(logger *log.Logger) *DBLogger {
	return &DBLogger{
		Logger:        logger,
		SlowThreshold: 200 * time.Millisecond,
	}
}

func (dbLog *DBLogger) LogMode(level logger.LogLevel) logger.Interface {
	child := &DBLogger{
		Logger:        log.New(),
		SlowThreshold: dbLog.SlowThreshold,
	}
	child.SetOutput(dbLog.Out)
	child.SetFormatter(dbLog.Formatter)
	child.ReplaceHooks(dbLog.Hooks)
	switch level {
	case logger.Silent:
		child.SetLevel(log.PanicLevel)
	case logger.Info:
		child.SetLevel(log.InfoLevel)
	case logger.Warn:
		child.SetLevel(log.WarnLevel)
	case logger.Error:
		child.SetLevel(log.ErrorLevel)
	default:
		child.SetLevel(log.DebugLevel)
	}
	return child
}

func fields(objs []interface{}) log.Fields {
	m := make(log.Fields, len(objs)+1)
	m["real_file"] = utils.FileWithLineNum()
	for i, b := range objs {
		m[strconv.Itoa(i+1)] = b
	}
	return m
}

func (dbLog *DBLogger) Info(ctx context.Context, msg string, objs ...interface{}) {
	dbLog.Logger.WithContext(ctx).WithFields(fields(objs)).Info(msg)
}

func (dbLog *DBLogger) Warn(ctx context.Context, msg string, objs ...interface{}) {
	dbLog.Logger.WithContext(ctx).WithFields(fields(objs)).Warn(msg)
}

func (dbLog *DBLogger) Error(ctx context.Context, msg string, objs ...interface{}) {
	dbLog.Logger.WithContext(ctx).WithFields(fields(objs)).Error(msg)
}

func (dbLog *DBLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	entry := dbLog.Logger.WithContext(ctx).WithFields(log.Fields{
		"real_file": utils.FileWithLineNum(),
		"duration":  float64(elapsed.Nanoseconds()) / 1e6,
		"rows":      rows,
		"sql":       sql,
	})
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		entry.WithError(err).Error("query failed")
	case dbLog.SlowThreshold != 0 && elapsed > dbLog.SlowThreshold:
		entry.Warn("slow query")
	default:
		entry.Trace("query")
	}
}
