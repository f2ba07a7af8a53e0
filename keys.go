// Package elem provides the key codes used for element activation.
package elem

// Activation key codes.
const (
	Space   = " "
	Enter   = "\r"
	EnterLF = "\n"
)
