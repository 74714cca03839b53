package domain

// File is an absolute file-system location used as a property value.
type File string

// FileCollection is a set of files that several properties of one task may share.
type FileCollection struct {
	Files []File
}

// ValueSource yields the current value of a property. A nil value means absent.
type ValueSource interface {
	Get() (any, error)
}

type fixedValue struct {
	v any
}

func (f fixedValue) Get() (any, error) {
	return f.v, nil
}

// Value returns a source that always yields v.
func Value(v any) ValueSource {
	return fixedValue{v: v}
}

// Absent returns a source without a value.
func Absent() ValueSource {
	return fixedValue{}
}

// ValueFunc adapts a function to ValueSource. The function runs on every Get.
type ValueFunc func() (any, error)

// Get calls f.
func (f ValueFunc) Get() (any, error) {
	return f()
}
