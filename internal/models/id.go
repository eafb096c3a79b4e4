package models

import (
	"encoding/json"
	"strconv"
)

// IDList is a list of snowflake ids carried on the wire as a JSON array of
// strings, the same convention as the `,string` tag on scalar id fields.
type IDList []int64

func (l IDList) MarshalJSON() ([]byte, error) {
	out := make([]string, len(l))
	for i, id := range l {
		out[i] = strconv.FormatInt(id, 10)
	}
	return json.Marshal(out)
}

func (l *IDList) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ids := make(IDList, len(raw))
	for i, value := range raw {
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		ids[i] = id
	}
	*l = ids
	return nil
}
