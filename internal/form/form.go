// Package form holds the editable draft shapes and the pure normalizers
// between them and the wire shapes. Validation here is presence/shape only;
// deeper rules live server-side.
package form

// ValidationError is a user-facing message that blocks submission before any
// network call.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
