package las

import (
	"errors"
	"fmt"
)

// Sentinels matched by the structured errors below via errors.Is.
var (
	ErrInvalidInverseTransform = errors.New("inverse transform out of int32 range")
	ErrNotZeroFilled           = errors.New("field is not zero filled")
	ErrNotASCII                = errors.New("field is not ascii")
	ErrStringTooLong           = errors.New("string too long for field")
)

// InvalidInverseTransformError is returned when an inverse-transformed value
// cannot be stored as an int32.
type InvalidInverseTransformError struct {
	ComputedValue float64
	Transform     Transform
}

func (e *InvalidInverseTransformError) Error() string {
	return fmt.Sprintf("the transform %s gave an out-of-range value: %v", e.Transform, e.ComputedValue)
}

func (e *InvalidInverseTransformError) Is(target error) bool {
	return target == ErrInvalidInverseTransform
}

// NotZeroFilledError is returned when a fixed-width field has non-zero bytes
// after its first zero byte. Bytes is a copy of the whole field.
type NotZeroFilledError struct {
	Bytes []byte
}

func (e *NotZeroFilledError) Error() string {
	return fmt.Sprintf("the bytes are not zero-filled after the first zero: %v", e.Bytes)
}

func (e *NotZeroFilledError) Is(target error) bool {
	return target == ErrNotZeroFilled
}

// NotASCIIError is returned when a field's text holds bytes above 0x7f.
type NotASCIIError struct {
	Text string
}

func (e *NotASCIIError) Error() string {
	return fmt.Sprintf("the text is not ascii: %q", e.Text)
}

func (e *NotASCIIError) Is(target error) bool {
	return target == ErrNotASCII
}

// StringTooLongError is returned when text does not fit in a field.
type StringTooLongError struct {
	Text     string
	Capacity int
}

func (e *StringTooLongError) Error() string {
	return fmt.Sprintf("the string %q is %d bytes, the field holds %d", e.Text, len(e.Text), e.Capacity)
}

func (e *StringTooLongError) Is(target error) bool {
	return target == ErrStringTooLong
}
