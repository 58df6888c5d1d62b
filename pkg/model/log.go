package model

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Log is one logrus entry persisted by the database hook.
type Log struct {
	gorm.Model
	Level  uint32
	Func   string
	File   string
	Msg    string
	Fields string
}

func NewLog(entry *logrus.Entry) *Log {
	fields := make(map[string]interface{}, len(entry.Data))
	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			fields[k] = err.Error()
		} else {
			fields[k] = v
		}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		data = []byte{}
	}
	var function string
	var file string
	if entry.HasCaller() {
		function = entry.Caller.Function
		file = fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
	}
	return &Log{
		Model: gorm.Model{
			CreatedAt: entry.Time,
			UpdatedAt: entry.Time,
		},
		Level:  uint32(entry.Level),
		Func:   function,
		File:   file,
		Msg:    entry.Message,
		Fields: string(data),
	}
}

func (record Log) LevelName() string {
	return logrus.Level(record.Level).String()
}

func (record Log) TableName() string {
	return "log"
}
