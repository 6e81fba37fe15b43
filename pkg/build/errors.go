package build

import "fmt"

// MissingIdentifierError reports that a required name-or-ID argument was not
// supplied at all.
type MissingIdentifierError struct {
	// Field is the user-facing name of the missing argument.
	Field string
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("%s name or ID is required", e.Field)
}

// NotFoundError reports that a supplied name matched no entry in the fetched
// candidate list.
type NotFoundError struct {
	// Entity is the user-facing entity kind, e.g. "build profile".
	Entity string
	// Value is the name that failed to resolve.
	Value string
	// Scope describes the parent resource the lookup was scoped to, empty
	// for globally listed entities.
	Scope string
}

func (e *NotFoundError) Error() string {
	if e.Scope == "" {
		return fmt.Sprintf("%s '%s' not found", e.Entity, e.Value)
	}
	return fmt.Sprintf("%s '%s' not found for %s", e.Entity, e.Value, e.Scope)
}

// NoConfigurationsError reports that configuration auto-resolution had
// nothing to select from.
type NoConfigurationsError struct {
	ProfileID string
}

func (e *NoConfigurationsError) Error() string {
	return fmt.Sprintf("no configurations found for profile ID '%s'", e.ProfileID)
}

// NoCommitsError reports that latest-commit auto-resolution had nothing to
// select from.
type NoCommitsError struct {
	BranchID string
}

func (e *NoCommitsError) Error() string {
	return fmt.Sprintf("no commits found for branch ID '%s'", e.BranchID)
}
