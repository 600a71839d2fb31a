// Package artemis drives the ActiveMQ Artemis CLI inside broker pods and
// parses its JSON output.
package artemis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// queueStatOutput is the shape of `artemis queue stat --json`
type queueStatOutput struct {
	Data []map[string]string `json:"data"`
}

// SumMessageCounts parses the JSON output of an Artemis CLI queue stat call and
// sums the messageCount of queues matching queueName. An empty queueName sums
// every queue. Names are matched both verbatim and after camelCase to
// kebab-case conversion, the broker may report either form for the same queue.
func SumMessageCounts(jsonOutput, queueName string) (int, error) {
	var parsed queueStatOutput
	if err := json.Unmarshal([]byte(jsonOutput), &parsed); err != nil {
		return 0, fmt.Errorf("unexpected queue stat output: %w", err)
	}

	sum := 0
	for _, entry := range parsed.Data {
		name := entry["name"]
		if queueName == "" || name == queueName || name == strcase.ToKebab(queueName) {
			countStr, ok := entry["messageCount"]
			if !ok {
				return 0, fmt.Errorf("queue %q has no messageCount field", name)
			}
			count, err := strconv.Atoi(countStr)
			if err != nil {
				return 0, fmt.Errorf("queue %q messageCount %q: %w", name, countStr, err)
			}
			sum += count
		}
	}
	return sum, nil
}

// ExtractJSON isolates the JSON document from CLI output that surrounds it with
// connection banners and log lines
func ExtractJSON(output string) (string, error) {
	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON document in CLI output: %q", output)
	}
	return output[start : end+1], nil
}
