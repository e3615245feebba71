package args

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lucax88x/datetoday/internal/fifo"
)

const (
	Refresh = "refresh"
	Commit  = "commit"
	Save    = "save"
)

const argsPrefix = "args: "

// In is the payload of a commit message.
type In struct {
	Format         string `json:"format"`
	SuffixPosition *int   `json:"suffix_position,omitempty"`
}

func FromEvent(msg string) (*In, error) {
	argsStart := strings.Index(msg, argsPrefix)
	if argsStart == -1 {
		return nil, fmt.Errorf("args: could not find args prefix in message: %s", msg)
	}

	argsJSON := strings.TrimSpace(msg[argsStart+len(argsPrefix):])

	var args *In
	err := json.Unmarshal([]byte(argsJSON), &args)

	if err != nil {
		return nil, fmt.Errorf("args: could not deserialize data: %w. Got: %s", err, argsJSON)
	}

	if args == nil {
		// "null"
		return nil, errors.New("args: deserialized data is nil. Got: " + argsJSON)
	}

	return args, nil
}

// BuildCommit builds the message that commits a new date format pair. The
// FIFO separator is escaped so that any pattern fits in one message.
func BuildCommit(format string, suffixPosition *int) (string, error) {
	bytes, err := json.Marshal(&In{
		Format:         format,
		SuffixPosition: suffixPosition,
	})

	if err != nil {
		return "", fmt.Errorf("args: could not serialize data. %w", err)
	}

	// the separator must not appear inside a message
	payload := strings.ReplaceAll(string(bytes), string(fifo.Separator), `\u00ac`)

	return Commit + " " + argsPrefix + payload, nil
}

// BuildRefreshScript is the sketchybar script that asks the daemon for a
// re-render, e.g. after the system wakes.
func BuildRefreshScript(fifoPath string) string {
	return fmt.Sprintf(
		`[ -p %[3]s ] && echo "%[1]s %[2]c" >> %[3]s`,
		Refresh,
		fifo.Separator,
		fifoPath,
	)
}
