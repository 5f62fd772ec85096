package util

import (
	"encoding/json"
	"fmt"

	"github.com/TylerBrock/colorjson"
	"github.com/fatih/color"
	"github.com/knadh/koanf/maps"
	"go.uber.org/zap"

	"github.com/coderelay/mcpsync/internal/log"
)

func ObjectToMapViaJSONSerde(data any) (map[string]any, error) {
	bytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := json.Unmarshal(bytes, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func prettyPrint(m map[string]any) {
	formatter := colorjson.NewFormatter()
	formatter.Indent = 2
	formatter.DisabledColor = color.NoColor
	s, _ := formatter.Marshal(m)
	fmt.Println(string(s))
}

func PrettyPrintJSON(data any) {
	m, err := ObjectToMapViaJSONSerde(data)
	if err != nil {
		log.Error("Failed to convert data to JSON",
			zap.Error(err))
		return
	}
	prettyPrint(m)
}

// PrettyPrintJSONFlatten prints data as a single-level object with
// dot-joined keys, which reads better for nested configuration.
func PrettyPrintJSONFlatten(data any) {
	m, err := ObjectToMapViaJSONSerde(data)
	if err != nil {
		log.Error("Failed to convert data to JSON",
			zap.Error(err))
		return
	}
	flat, _ := maps.Flatten(m, nil, ".")
	prettyPrint(flat)
}
