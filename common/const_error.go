package common

// ConstError is an error type that can be used to define immutable
// error constants. Such constants are comparable with errors.Is even
// after being wrapped with fmt.Errorf and the %w verb.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}
