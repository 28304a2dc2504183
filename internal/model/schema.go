package model

import (
	"fmt"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateResumeJSON validates a raw resume document against the JSON
// schema at schemaPath. Used by the import endpoint, which accepts
// documents produced outside the editor; drafts saved by the editor go
// through ValidateForSave only.
func ValidateResumeJSON(schemaPath string, raw []byte) error {
	// Absolute canonical file:// path so the loader resolves references
	// correctly on all platforms.
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(abs))
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
