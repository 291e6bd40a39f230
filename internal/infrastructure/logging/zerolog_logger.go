package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rafabene/usermanager-backend/internal/domain/ports"
)

// ZerologLogger implementa ports.Logger usando zerolog
type ZerologLogger struct {
	logger zerolog.Logger
}

// Options configura o logger
type Options struct {
	ServiceName string
	Level       string
	Format      string // json | console
	Output      io.Writer
}

// NewZerologLogger cria um novo logger estruturado
func NewZerologLogger(opts Options) ports.Logger {
	var output io.Writer = opts.Output
	if output == nil {
		output = os.Stdout
	}
	if opts.Format == "console" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.New(output).
		With().
		Timestamp().
		Str("service", opts.ServiceName).
		Logger().
		Level(ParseLevel(opts.Level))

	return &ZerologLogger{logger: logger}
}

// ParseLevel converte o nível textual; valores desconhecidos viram info
func ParseLevel(value string) zerolog.Level {
	levelString := strings.ToLower(strings.TrimSpace(value))
	if levelString == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(levelString); err == nil && lvl != zerolog.NoLevel {
		return lvl
	}
	return zerolog.InfoLevel
}

func (l *ZerologLogger) Info(msg string, args ...any) {
	withArgs(l.logger.Info(), args).Msg(msg)
}

func (l *ZerologLogger) Error(msg string, args ...any) {
	withArgs(l.logger.Error(), args).Msg(msg)
}

func (l *ZerologLogger) Debug(msg string, args ...any) {
	withArgs(l.logger.Debug(), args).Msg(msg)
}

func (l *ZerologLogger) Warn(msg string, args ...any) {
	withArgs(l.logger.Warn(), args).Msg(msg)
}

func (l *ZerologLogger) With(args ...any) ports.Logger {
	ctx := l.logger.With()
	for i := 0; i < len(args); i += 2 {
		key, value := pair(args, i)
		if err, ok := value.(error); ok {
			ctx = ctx.AnErr(key, err)
			continue
		}
		ctx = ctx.Interface(key, value)
	}
	return &ZerologLogger{logger: ctx.Logger()}
}

// withArgs converte pares chave/valor (estilo slog) em campos do evento
func withArgs(event *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i < len(args); i += 2 {
		key, value := pair(args, i)
		if err, ok := value.(error); ok {
			event = event.AnErr(key, err)
			continue
		}
		event = event.Interface(key, value)
	}
	return event
}

func pair(args []any, i int) (string, any) {
	key, ok := args[i].(string)
	if !ok {
		key = fmt.Sprint(args[i])
	}
	if i+1 >= len(args) {
		return key, "!MISSING"
	}
	return key, args[i+1]
}

// NewNopLogger retorna um logger que descarta tudo (testes)
func NewNopLogger() ports.Logger {
	return &ZerologLogger{logger: zerolog.Nop()}
}
