package logger

import (
	"encoding/json"
	"strings"
)

const maskValue = "xxxxx"

// Masker hide sensitive value before written to log or trace
type Masker interface {
	Mask(body []byte) []byte
}

type maskImpl struct {
	keywords map[string]struct{}
}

// NewMasker create json body masker, default keyword is password
func NewMasker(keywords ...string) Masker {
	if len(keywords) == 0 {
		keywords = []string{"password"}
	}
	m := &maskImpl{keywords: make(map[string]struct{}, len(keywords))}
	for _, k := range keywords {
		m.keywords[strings.ToLower(k)] = struct{}{}
	}
	return m
}

// Mask replace value of every matched key (case insensitive, nested included), non json body returned as is
func (m *maskImpl) Mask(body []byte) []byte {
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return body
	}
	masked, err := json.Marshal(m.walk(payload))
	if err != nil {
		return body
	}
	return masked
}

func (m *maskImpl) walk(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, child := range val {
			if _, ok := m.keywords[strings.ToLower(k)]; ok {
				val[k] = maskValue
				continue
			}
			val[k] = m.walk(child)
		}
		return val
	case []interface{}:
		for i, child := range val {
			val[i] = m.walk(child)
		}
		return val
	}
	return v
}
