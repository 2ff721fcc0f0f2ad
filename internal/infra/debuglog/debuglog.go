package debuglog

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type loggerState struct {
	mu      sync.Mutex
	enabled atomic.Bool
	writer  *lumberjack.Logger
}

var state loggerState
var traceSeq uint64
var ctxState debugContext

type debugContext struct {
	mu     sync.Mutex
	phase  string
	prompt string
}

// Enable starts trace logging under configDir/logs with size-based rotation.
func Enable(configDir string) error {
	if strings.TrimSpace(configDir) == "" {
		return fmt.Errorf("config directory is required")
	}
	writer := &lumberjack.Logger{
		Filename:   filepath.Join(configDir, "logs", "debug.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}
	state.mu.Lock()
	if state.writer != nil {
		_ = state.writer.Close()
	}
	state.writer = writer
	state.enabled.Store(true)
	state.mu.Unlock()
	return nil
}

func Close() error {
	state.mu.Lock()
	state.enabled.Store(false)
	var err error
	if state.writer != nil {
		err = state.writer.Close()
		state.writer = nil
	}
	state.mu.Unlock()
	return err
}

func Enabled() bool {
	return state.enabled.Load()
}

func NewTrace(prefix string) string {
	value := atomic.AddUint64(&traceSeq, 1)
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "cmd"
	}
	return fmt.Sprintf("%s:%x", prefix, value)
}

func FormatCommand(name string, args []string) string {
	if len(args) == 0 {
		return strings.TrimSpace(name)
	}
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}

func LogCommand(trace, cmd string) {
	logLine(trace, "cmd", cmd, "", nil)
}

func LogStdoutLines(trace, text string) {
	logOutputLines(trace, "stdout", text)
}

func LogStderrLines(trace, text string) {
	logOutputLines(trace, "stderr", text)
}

func LogExit(trace string, code int) {
	logLine(trace, "exit", "", "", &code)
}

func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	type exitCoder interface {
		ExitCode() int
	}
	if ec, ok := err.(exitCoder); ok {
		return ec.ExitCode()
	}
	return -1
}

func SetPrompt(label string) {
	ctxState.mu.Lock()
	ctxState.phase = "prompt"
	ctxState.prompt = strings.TrimSpace(label)
	ctxState.mu.Unlock()
}

func ClearPrompt() {
	ctxState.mu.Lock()
	if ctxState.phase == "prompt" {
		ctxState.phase = ""
	}
	ctxState.prompt = ""
	ctxState.mu.Unlock()
}

func SetPhase(phase string) {
	ctxState.mu.Lock()
	ctxState.phase = strings.TrimSpace(phase)
	ctxState.prompt = ""
	ctxState.mu.Unlock()
}

func logOutputLines(trace, kind, text string) {
	if !Enabled() {
		return
	}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		logLine(trace, kind, "", line, nil)
	}
}

func logLine(trace, kind, cmd, line string, code *int) {
	if !Enabled() {
		return
	}
	trace = strings.TrimSpace(trace)
	if trace == "" {
		trace = "unknown"
	}
	kind = strings.TrimSpace(kind)
	if kind == "" {
		kind = "info"
	}
	phase, prompt := snapshotContext()
	if phase == "" {
		phase = "none"
	}
	ts := time.Now().Format(time.RFC3339Nano)
	state.mu.Lock()
	defer state.mu.Unlock()
	if state.writer == nil {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "ts=%s trace=%s phase=%s kind=%s", ts, trace, phase, kind)
	if prompt != "" {
		fmt.Fprintf(&b, " prompt=%q", prompt)
	}
	if cmd != "" {
		fmt.Fprintf(&b, " cmd=%q", cmd)
	}
	if line != "" {
		fmt.Fprintf(&b, " line=%q", line)
	}
	if code != nil {
		fmt.Fprintf(&b, " code=%d", *code)
	}
	b.WriteByte('\n')
	_, _ = state.writer.Write([]byte(b.String()))
}

func snapshotContext() (string, string) {
	ctxState.mu.Lock()
	defer ctxState.mu.Unlock()
	return ctxState.phase, ctxState.prompt
}
