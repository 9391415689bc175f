package form

// ResetPasswordDraft is the password-reset-confirm form.
type ResetPasswordDraft struct {
	Password string
	Confirm  string
}

// Validate blocks submission with a user-facing message.
func (d *ResetPasswordDraft) Validate() error {
	if len(d.Password) < 8 {
		return ValidationError("The password must be at least 8 characters.")
	}
	if d.Password != d.Confirm {
		return ValidationError("The passwords do not match.")
	}
	return nil
}
