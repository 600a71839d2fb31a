package artemis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const queueStatJSON = `{
  "data": [
    {"name": "DLQ", "address": "DLQ", "messageCount": "0"},
    {"name": "in-queue", "address": "in-queue", "messageCount": "7"},
    {"name": "out-queue", "address": "out-queue", "messageCount": "3"}
  ]
}`

func TestSumMessageCountsAllQueues(t *testing.T) {
	sum, err := SumMessageCounts(queueStatJSON, "")
	require.NoError(t, err)
	assert.Equal(t, 10, sum)
}

func TestSumMessageCountsExactName(t *testing.T) {
	sum, err := SumMessageCounts(queueStatJSON, "in-queue")
	require.NoError(t, err)
	assert.Equal(t, 7, sum)
}

func TestSumMessageCountsCamelCaseName(t *testing.T) {
	// the broker reports kebab-case names for queues declared in camelCase
	sum, err := SumMessageCounts(queueStatJSON, "inQueue")
	require.NoError(t, err)
	assert.Equal(t, 7, sum)
}

func TestSumMessageCountsNoMatch(t *testing.T) {
	sum, err := SumMessageCounts(queueStatJSON, "absent")
	require.NoError(t, err)
	assert.Equal(t, 0, sum)
}

func TestSumMessageCountsInvalidJSON(t *testing.T) {
	_, err := SumMessageCounts("connection refused", "")
	assert.Error(t, err)
}

func TestSumMessageCountsInvalidCount(t *testing.T) {
	_, err := SumMessageCounts(`{"data": [{"name": "q", "messageCount": "NaN"}]}`, "q")
	assert.Error(t, err)
}

func TestExtractJSON(t *testing.T) {
	output := "Connection brokerURL = tcp://localhost:61616\n" + queueStatJSON + "\n"
	extracted, err := ExtractJSON(output)
	require.NoError(t, err)

	sum, err := SumMessageCounts(extracted, "")
	require.NoError(t, err)
	assert.Equal(t, 10, sum)
}

func TestExtractJSONMissing(t *testing.T) {
	_, err := ExtractJSON("no json here")
	assert.Error(t, err)
}
