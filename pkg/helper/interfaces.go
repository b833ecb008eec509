package helper

// MultiError abstract interface
type MultiError interface {
	Append(key string, err error) MultiError
	HasError() bool
	ToMap() map[string]string
	Error() string
}
