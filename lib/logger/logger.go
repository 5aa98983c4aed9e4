/*
Copyright 2024 Huawei Cloud Computing Technologies Co., Ltd.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/openGemini/huffstep/lib/errno"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errnoStatHandler func(string)

// SetErrnoStatHandler registers a callback receiving every errno code that is logged.
func SetErrnoStatHandler(handler func(string)) {
	errnoStatHandler = handler
}

func stat(code string) {
	if errnoStatHandler != nil {
		errnoStatHandler(code)
	}
}

// Logger writes through the process wide zap logger, so loggers created
// before InitLogger pick up the new configuration.
type Logger struct {
	node   errno.Node
	module errno.Module
	fields []zap.Field
}

var loggerPool sync.Map

func NewLogger(module errno.Module) *Logger {
	l, ok := loggerPool.Load(module)
	if ok {
		log, _ := l.(*Logger)
		return log
	}
	// ignore concurrent situation, repeat store same module logger
	log := &Logger{
		node:   errno.GetNode(),
		module: module,
	}
	loggerPool.Store(module, log)
	return log
}

// With returns a child logger carrying the fields, the receiver is unchanged.
func (l *Logger) With(fields ...zap.Field) *Logger {
	all := make([]zap.Field, 0, len(l.fields)+len(fields))
	all = append(all, l.fields...)
	all = append(all, fields...)
	return &Logger{
		node:   l.node,
		module: l.module,
		fields: all,
	}
}

func (l *Logger) SetModule(m errno.Module) {
	l.module = m
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	fields = l.rewriteFields(fields)
	l.zapLogger().Error(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zapLogger().Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	fields = l.rewriteFields(fields)
	l.zapLogger().Warn(msg, fields...)
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	if level > zapcore.DebugLevel {
		return
	}
	l.zapLogger().Debug(msg, fields...)
}

func (l *Logger) GetZapLogger() *zap.Logger {
	return GetLogger().With(l.fields...)
}

func (l *Logger) zapLogger() *zap.Logger {
	return GetLogger().WithOptions(zap.AddCallerSkip(1)).With(l.fields...)
}

func (l *Logger) IsDebugLevel() bool {
	return level == zap.DebugLevel
}

func (l *Logger) rewriteFields(fields []zap.Field) []zap.Field {
	for i := range fields {
		if fields[i].Key != "error" {
			continue
		}

		err, ok := fields[i].Interface.(error)
		if !ok {
			continue
		}
		var tmp *errno.Error
		if !errors.As(err, &tmp) || tmp == nil {
			continue
		}

		code := l.makeErrno(tmp)
		stat(code)

		fields = append(fields, zap.String("errno", code))
		if tmp.Level().LogStack() && len(tmp.Stack()) > 0 {
			fields = append(fields, zap.String("stack", string(tmp.Stack())))
		}
		return fields
	}

	return fields
}

func (l *Logger) makeErrno(err *errno.Error) string {
	level := err.Level() % (errno.LevelFatal + 1)
	module := err.Module()
	if module == errno.ModuleUnknown {
		module = l.module
	}

	return fmt.Sprintf("%d%02d%d%04d", l.node, module, level, err.Errno())
}
