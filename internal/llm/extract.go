package llm

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when no parseable JSON could be recovered from a
// model reply. It is never retried; the caller surfaces it as-is.
var ErrNoJSON = errors.New("无法从响应中提取 JSON")

var fencedJSONBlock = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// extractors are tried in order; each returns a candidate substring. A
// candidate that fails to parse falls through to the next strategy.
var extractors = []func(string) (string, bool){
	fencedBlock,
	braceSpan,
}

// fencedBlock pulls the interior of a ```json fenced code block.
func fencedBlock(content string) (string, bool) {
	match := fencedJSONBlock.FindStringSubmatch(content)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// braceSpan takes everything from the first '{' to the last '}'.
func braceSpan(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return content[start : end+1], true
}

// Extract recovers a single JSON payload from free-form model output. Models
// routinely wrap JSON in prose or markdown fences; the fence is tried first,
// then the widest brace span. No shape validation happens here.
func Extract(content string) (json.RawMessage, error) {
	for _, find := range extractors {
		candidate, ok := find(content)
		if !ok {
			continue
		}
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate), nil
		}
	}
	return nil, ErrNoJSON
}

// ExtractInto extracts and unmarshals the payload into v.
func ExtractInto(content string, v any) error {
	raw, err := Extract(content)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
