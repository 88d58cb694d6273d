// Package utils holds small parsing helpers shared by the API handlers.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common mistakes in hand-typed JSON payloads
// (single quotes, unquoted keys, trailing commas, comments, stray code
// fences). Classroom users poke this API with curl; being strict about
// commas helps nobody.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("JSON_REPAIR_FAILED: %v", err)
	}
	return repaired, nil
}

// ParseHJSONToStruct parses Human-friendly JSON (Hjson: comments, unquoted
// keys, optional commas, multiline strings) directly into a Go struct.
func ParseHJSONToStruct(data string, schema interface{}) error {
	if err := hjson.Unmarshal([]byte(data), schema); err != nil {
		return fmt.Errorf("HJSON_UNMARSHAL_ERROR: %v", err)
	}
	return nil
}

// SmartParse tries multiple strategies to decode a request body into the
// given struct. Order of attempts:
// 1. Standard JSON parse
// 2. Hjson parse (decodes numbers at full float64 precision)
// 3. JSON repair (last: it accepts almost anything but re-emits numbers
//    at float32 precision, which would corrupt rates like 0.10)
func SmartParse(input string, schema interface{}) error {
	if err := json.Unmarshal([]byte(input), schema); err == nil {
		return nil
	}

	if err := hjson.Unmarshal([]byte(input), schema); err == nil {
		return nil
	}

	if repaired, err := RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return nil
		}
	}

	return fmt.Errorf("SMART_PARSE_FAILED: body is not JSON, Hjson, or repairable JSON")
}
