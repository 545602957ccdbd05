package marketing

import (
	"fmt"
	"strings"
)

// ValidationError reports arguments that failed a tool's input contract.
type ValidationError struct {
	Tool   string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %s", e.Tool, strings.Join(e.Fields, "; "))
}

// NotFoundError reports an entity lookup that produced no result.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("no %s available", e.Entity)
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}
