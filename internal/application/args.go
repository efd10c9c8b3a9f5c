package application

import (
	"fmt"
	"strconv"

	"cabriolet/internal/domain"
	"cabriolet/internal/domain/entities"
)

// ParseArgs converts textual arguments (query values, command line) to the
// types the entry declares. Values past the declared parameters stay
// strings so that Resolve reports the arity mismatch.
func ParseArgs(e entities.Entry, raw []string) ([]any, error) {
	params := e.Params()
	args := make([]any, len(raw))
	for i, s := range raw {
		if i >= len(params) || !params[i].Kind.IsInteger() {
			args[i] = s
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, &domain.ArgumentMismatchError{
				Key:    e.Key().String(),
				Param:  params[i].Name,
				Reason: fmt.Sprintf("%q is not an integer", s),
			}
		}
		args[i] = n
	}
	return args, nil
}
