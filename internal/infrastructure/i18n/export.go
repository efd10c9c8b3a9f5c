package i18n

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"cabriolet/internal/domain/entities"
)

// Export writes t as a go-i18n TOML message file that Load accepts back
// with the same shapes. Template messages carry a description listing
// their parameters for translators.
func Export(w io.Writer, t *entities.Table) error {
	root := make(map[string]any)

	for _, key := range t.Keys() {
		e, err := t.Get(key)
		if err != nil {
			return err
		}

		segs := key.Segments()
		node := root
		for _, seg := range segs[:len(segs)-1] {
			child, ok := node[seg].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[seg] = child
			}
			node = child
		}
		leaf := segs[len(segs)-1]

		switch e.Kind() {
		case entities.KindLiteral:
			node[leaf] = e.Text()
		case entities.KindList:
			node[leaf] = strings.Join(e.Items(), "\n")
		case entities.KindTemplate:
			msg := map[string]any{"description": describeParams(e.Params())}
			for _, form := range e.Forms() {
				body, _ := e.Source(form)
				msg[string(form)] = body
			}
			node[leaf] = msg
		}
	}

	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("i18n: export %s: %w", t.Variant(), err)
	}
	return nil
}

func describeParams(params []entities.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s (%s)", p.Name, p.Kind)
	}
	return "params: " + strings.Join(parts, ", ")
}
