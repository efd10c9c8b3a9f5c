package input

import "cabriolet/internal/domain/entities"

// TextUseCase is what UI-side collaborators call to obtain display text.
type TextUseCase interface {
	Get(key string) (entities.Entry, error)
	Resolve(key string, args ...any) (entities.Text, error)
	Keys() []entities.Key
	Namespaces() []string
	KeysIn(namespace string) []entities.Key
	Variant() string
}
