package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Institutional email pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// Custom binding tags
const (
	TagNotBlank    = "notblank"
	TagPersonName  = "personname"
	TagStudentMail = "studentemail"
)

// RegisterRules adds the custom tags to a validator. Gin's default
// validator is passed in at startup.
func RegisterRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		TagNotBlank:    notBlank,
		TagPersonName:  personName,
		TagStudentMail: studentEmail,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s rule: %w", tag, err)
		}
	}
	return nil
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func personName(fl validator.FieldLevel) bool {
	n := len([]rune(strings.TrimSpace(fl.Field().String())))
	return n >= NameMinLength && n <= NameMaxLength
}

// studentEmail matches case-insensitively since addresses are stored lowercased
func studentEmail(fl validator.FieldLevel) bool {
	email := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	return CompiledPatterns.Email.MatchString(email)
}
