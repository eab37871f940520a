package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// RawScalar хранит JSON-скаляр в каноническом текстовом виде.
//
// Строки хранятся в кавычках, числа нормализуются, null хранится как "null",
// отсутствующее значение это пустая строка. Сравнение через == даёт строгое
// равенство без приведения типов: число 10 не равно строке "10".
type RawScalar string

// ScalarFromString строковое значение
func ScalarFromString(s string) RawScalar {
	b, _ := json.Marshal(s)
	return RawScalar(b)
}

// ScalarFromInt числовое значение
func ScalarFromInt(n int64) RawScalar {
	return RawScalar(strconv.FormatInt(n, 10))
}

// ParseScalar разбирает произвольный JSON-текст скаляра
func ParseScalar(raw []byte) (RawScalar, error) {
	var s RawScalar
	if err := s.UnmarshalJSON(raw); err != nil {
		return "", err
	}
	return s, nil
}

func (s *RawScalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*s = ""
		return nil
	}

	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = ScalarFromString(str)
	case 'n':
		*s = "null"
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*s = RawScalar(strconv.FormatBool(b))
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*s = RawScalar(buf.String())
	default:
		canonical, err := canonicalNumber(string(data))
		if err != nil {
			return err
		}
		*s = RawScalar(canonical)
	}
	return nil
}

func (s RawScalar) MarshalJSON() ([]byte, error) {
	if s == "" {
		return []byte("null"), nil
	}
	return []byte(s), nil
}

// IsAbsent true, если значение отсутствовало в исходном JSON
func (s RawScalar) IsAbsent() bool {
	return s == ""
}

// IsString true для строковых значений
func (s RawScalar) IsString() bool {
	return len(s) > 0 && s[0] == '"'
}

// String возвращает значение для отображения и query-параметров:
// строки без кавычек, null и отсутствие как пустая строка
func (s RawScalar) String() string {
	switch {
	case s == "" || s == "null":
		return ""
	case s.IsString():
		var str string
		if err := json.Unmarshal([]byte(s), &str); err != nil {
			return string(s)
		}
		return str
	default:
		return string(s)
	}
}

// IsFalsy повторяет ложность значения в условиях вида `a || b`:
// отсутствие, null, пустая строка, 0 и false
func (s RawScalar) IsFalsy() bool {
	switch s {
	case "", "null", `""`, "0", "false":
		return true
	}
	return false
}

// Or возвращает s, если значение не ложно, иначе fallback
func (s RawScalar) Or(fallback RawScalar) RawScalar {
	if s.IsFalsy() {
		return fallback
	}
	return s
}

func canonicalNumber(text string) (string, error) {
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return strconv.FormatInt(n, 10), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return "", fmt.Errorf("invalid JSON scalar %q", text)
	}
	if f == float64(int64(f)) && f < 1e15 && f > -1e15 {
		return strconv.FormatInt(int64(f), 10), nil
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}
