package reflects

import (
	"fmt"
	"path/filepath"
)

// SymbolicName returns the package qualified type name of the received entity.
func SymbolicName(entity interface{}) string {
	t := BaseTypeOf(entity)

	if t.PkgPath() == "" {
		return fmt.Sprintf("%s", t.Name())
	}

	return fmt.Sprintf("%s.%s", filepath.Base(t.PkgPath()), t.Name())
}
