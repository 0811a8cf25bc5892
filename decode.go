// File: nickelodeon/decode.go
package nickelodeon

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// defaultTagName is the struct tag consulted when mapping Nickel record
// fields onto struct fields.
const defaultTagName = "nickel"

// decodeTree structurally decodes an evaluated tree into a value of type T.
// The tree is what an Evaluator produced: maps, slices, and scalars.
func decodeTree[T any](tree any, tagName string) (T, error) {
	var target T

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &target,
		TagName:          tagName,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return target, fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(tree); err != nil {
		return target, err
	}
	return target, nil
}
