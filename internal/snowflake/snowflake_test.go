package snowflake

import (
	"testing"
	"time"
)

func TestExtractRoundTrip(t *testing.T) {
	timestamp := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC).UnixMilli()
	workerID := int64(5)
	increment := int64(321)

	id := timestamp<<timestampPos | workerID<<workerPos | increment

	snowflake := Extract(id)
	if snowflake.Timestamp != timestamp {
		t.Errorf("got timestamp %d, want %d", snowflake.Timestamp, timestamp)
	}
	if snowflake.WorkerID != workerID {
		t.Errorf("got worker ID %d, want %d", snowflake.WorkerID, workerID)
	}
	if snowflake.Increment != increment {
		t.Errorf("got increment %d, want %d", snowflake.Increment, increment)
	}
}

func TestExtractTimestamp(t *testing.T) {
	timestamp := time.Now().UnixMilli()
	id := timestamp << timestampPos

	if got := ExtractTimestamp(id); got != timestamp {
		t.Errorf("got %d, want %d", got, timestamp)
	}
	if got := ExtractTime(id).UnixMilli(); got != timestamp {
		t.Errorf("got %d, want %d", got, timestamp)
	}
}
