package password

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// Validate returns the advisory messages for every composition rule the
// candidate fails, as a validation error the settings form renders inline.
// A nil result means all rule flags pass; the strength score is a separate
// concern and does not appear here.
func (e *Evaluator) Validate(pw string) error {
	return validation.Validate(pw,
		validation.Required.Error("Password is required."),
		validation.RuneLength(minLength, 0).Error("Password must be at least 8 characters long."),
		validation.Match(upperPattern).Error("Password must include at least one uppercase letter."),
		validation.Match(lowerPattern).Error("Password must include at least one lowercase letter."),
		validation.Match(numberPattern).Error("Password must include at least one number."),
		validation.Match(symbolPattern).Error("Password must include at least one special symbol."),
	)
}

// Messages flattens an Assessment into the advisory strings for its failed
// rule flags, in the order the settings screen lists them.
func Messages(a Assessment) []string {
	var msgs []string
	if !a.Rules.Length {
		msgs = append(msgs, "Password must be at least 8 characters long.")
	}
	if !a.Rules.Upper {
		msgs = append(msgs, "Password must include at least one uppercase letter.")
	}
	if !a.Rules.Lower {
		msgs = append(msgs, "Password must include at least one lowercase letter.")
	}
	if !a.Rules.Number {
		msgs = append(msgs, "Password must include at least one number.")
	}
	if !a.Rules.Symbol {
		msgs = append(msgs, "Password must include at least one special symbol.")
	}
	return msgs
}
