package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// 로그 레벨 정의
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// 로그 레벨을 문자열로 변환
func (l LogLevel) String() string {
	return [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}[l]
}

func (l LogLevel) zerolog() zerolog.Level {
	return [...]zerolog.Level{
		zerolog.DebugLevel,
		zerolog.InfoLevel,
		zerolog.WarnLevel,
		zerolog.ErrorLevel,
		zerolog.FatalLevel,
	}[l]
}

var (
	baseLogger zerolog.Logger
	loggerMu   sync.RWMutex
	loggerOnce sync.Once
)

// ConfigureLogger는 전역 로거의 레벨과 출력 형식을 설정합니다.
// format이 "console"이면 사람이 읽기 쉬운 형식, 그 외에는 JSON으로 출력합니다.
func ConfigureLogger(level, format string, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}

	var writer io.Writer = out
	if format == "console" {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: "2006-01-02 15:04:05"}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if IsDebug() && lvl > zerolog.DebugLevel {
		lvl = zerolog.DebugLevel
	}

	loggerMu.Lock()
	baseLogger = zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
	loggerMu.Unlock()
	loggerOnce.Do(func() {})
}

func logger() zerolog.Logger {
	loggerOnce.Do(func() {
		lvl := zerolog.InfoLevel
		if IsDebug() {
			lvl = zerolog.DebugLevel
		}
		baseLogger = zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
	})

	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return baseLogger
}

// 디버그 모드 상태를 저장할 변수와 초기화를 한 번만 수행하기 위한 once
var isDebugMode bool
var debugOnce sync.Once

// IsDebug는 현재 애플리케이션이 디버그 모드로 실행 중인지 확인합니다
func IsDebug() bool {
	debugOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		isDebugMode = env == "dev" || env == "local"
	})
	return isDebugMode
}

// LogMessage는 지정된 레벨에 해당하는 로그 메시지를 출력합니다
func LogMessage(level LogLevel, service string, format string, args ...interface{}) {
	// 호출 위치 정보 가져오기 (편의 함수를 거쳐 오므로 2단계 위)
	_, file, line, _ := runtime.Caller(2)
	if idx := strings.LastIndex(file, "/"); idx >= 0 {
		file = file[idx+1:]
	}

	l := logger()
	l.WithLevel(level.zerolog()).
		Str("service", service).
		Str("caller", fmt.Sprintf("%s:%d", file, line)).
		Msg(fmt.Sprintf(format, args...))

	// 에러 레벨 이상은 메트릭에 기록
	if level >= ERROR {
		RecordError(service, level.String())
	}
}

// 편의성 함수들
func Debug(service, format string, args ...interface{}) {
	LogMessage(DEBUG, service, format, args...)
}

func Info(service, format string, args ...interface{}) {
	LogMessage(INFO, service, format, args...)
}

func Warn(service, format string, args ...interface{}) {
	LogMessage(WARN, service, format, args...)
}

func Error(service, format string, args ...interface{}) {
	LogMessage(ERROR, service, format, args...)
}

func Fatal(service, format string, args ...interface{}) {
	LogMessage(FATAL, service, format, args...)
	os.Exit(1)
}
