package types

import (
	"bytes"
	"encoding/json"
)

// FlexString строковое поле, которое сервер иногда присылает числом или bool
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	scalar, err := ParseScalar(data)
	if err != nil {
		return err
	}
	*f = FlexString(scalar)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}
