// Package snowflake decodes the server's snowflake ids. The client never
// generates ids, it only extracts the embedded creation timestamp, mainly as
// a fallback when a payload omits createdAt.
package snowflake

import "time"

type Snowflake struct {
	Timestamp int64
	WorkerID  int64
	Increment int64
}

const (
	timestampLength int64 = 42
	timestampPos          = 64 - timestampLength // 22
	workerLength    int64 = 10
	workerPos             = timestampPos - workerLength // 12
	incrementLength       = 64 - (timestampLength + workerLength)
)

func Extract(snowflakeId int64) Snowflake {
	return Snowflake{
		Timestamp: snowflakeId >> timestampPos,
		WorkerID:  (snowflakeId >> workerPos) & ((1 << workerLength) - 1),
		Increment: snowflakeId & ((1 << incrementLength) - 1),
	}
}

// ExtractTimestamp returns the unix millisecond timestamp baked into the id.
func ExtractTimestamp(snowflakeId int64) int64 {
	return snowflakeId >> timestampPos
}

func ExtractTime(snowflakeId int64) time.Time {
	return time.UnixMilli(ExtractTimestamp(snowflakeId))
}
