package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripCodeFences removes a surrounding triple-backtick fence from a model
// reply, tolerating a "json" language label. Replies without fences are
// returned trimmed, so stripping is idempotent.
func StripCodeFences(s string) string {
	cleaned := strings.TrimSpace(s)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	cleaned = strings.TrimPrefix(cleaned, "```")
	// Drop the optional language label on the opening fence line.
	if idx := strings.IndexByte(cleaned, '\n'); idx >= 0 {
		first := strings.TrimSpace(cleaned[:idx])
		if first == "json" || first == "" {
			cleaned = cleaned[idx+1:]
		}
	} else {
		cleaned = strings.TrimPrefix(cleaned, "json")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}

// DecodeJSON parses a model reply into v, stripping code fences first. If the
// reply still is not a bare JSON object, it falls back to the outermost brace
// pair, since models sometimes prepend or append prose despite instructions.
func DecodeJSON(reply string, v any) error {
	cleaned := StripCodeFences(reply)
	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return nil
	}
	start := strings.IndexByte(cleaned, '{')
	end := strings.LastIndexByte(cleaned, '}')
	if start < 0 || end <= start {
		return fmt.Errorf("no JSON object in reply: %s", truncate(cleaned, 200))
	}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), v); err != nil {
		return fmt.Errorf("parsing LLM JSON output: %w (raw: %s)", err, truncate(cleaned, 200))
	}
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
