// AngelaMos | 2026
// jsonraw.go

package core

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONRaw is a free-form JSON document stored as jsonb on PostgreSQL and
// as text on SQLite.
type JSONRaw json.RawMessage

func (j JSONRaw) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSONRaw) UnmarshalJSON(data []byte) error {
	if j == nil {
		return fmt.Errorf("core.JSONRaw: UnmarshalJSON on nil pointer")
	}
	*j = append((*j)[0:0], data...)
	return nil
}

func (j JSONRaw) Value() (driver.Value, error) {
	if len(j) == 0 || string(j) == "null" {
		return nil, nil
	}
	return string(j), nil
}

func (j *JSONRaw) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append(JSONRaw(nil), v...)
	case string:
		*j = JSONRaw(v)
	default:
		return fmt.Errorf("core.JSONRaw: cannot scan %T", src)
	}
	return nil
}
