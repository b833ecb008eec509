package helper

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

type multiError struct {
	lock sync.Mutex
	errs map[string]string
}

// NewMultiError constructor
func NewMultiError() MultiError {
	return &multiError{errs: make(map[string]string)}
}

// Append error to multierror, nil error is ignored
func (m *multiError) Append(key string, err error) MultiError {
	m.lock.Lock()
	defer m.lock.Unlock()
	if err != nil {
		m.errs[key] = err.Error()
	}
	return m
}

// HasError check if err is exist
func (m *multiError) HasError() bool {
	return len(m.errs) != 0
}

// ToMap return list map of error
func (m *multiError) ToMap() map[string]string {
	return m.errs
}

// Error implement error from multiError, keys are sorted so the output is stable
func (m *multiError) Error() string {
	keys := make([]string, 0, len(m.errs))
	for k := range m.errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	str := make([]string, 0, len(keys))
	for _, k := range keys {
		str = append(str, fmt.Sprintf("%s: %s", k, m.errs[k]))
	}
	return strings.Join(str, "\n")
}
