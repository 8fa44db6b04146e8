// Command gen regenerates codes_generated.go from szerrors.json. Run it
// from the szerror package directory, normally via go generate.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"
)

type entry struct {
	Class   string `json:"class"`
	Comment string `json:"comment"`
}

// classCategory maps the class names used by szerrors.json to Category
// constants in package szerror.
var classCategory = map[string]string{
	"SzBadInputError":               "BadInput",
	"SzNotFoundError":               "NotFound",
	"SzUnknownDataSourceError":      "UnknownDataSource",
	"SzConfigurationError":          "Configuration",
	"SzRetryableError":              "Retryable",
	"SzDatabaseConnectionLostError": "DatabaseConnectionLost",
	"SzDatabaseTransientError":      "DatabaseTransient",
	"SzRetryTimeoutExceededError":   "RetryTimeoutExceeded",
	"SzUnrecoverableError":          "Unrecoverable",
	"SzDatabaseError":               "Database",
	"SzLicenseError":                "License",
	"SzNotInitializedError":         "NotInitialized",
	"SzUnhandledError":              "Unhandled",
	"SzReplaceConflictError":        "ReplaceConflict",
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gen: ")

	raw, err := os.ReadFile("szerrors.json")
	if err != nil {
		log.Fatal(err)
	}
	var table map[string]entry
	if err := json.Unmarshal(raw, &table); err != nil {
		log.Fatalf("szerrors.json: %v", err)
	}

	codes := make([]int64, 0, len(table))
	byCode := make(map[int64]entry, len(table))
	for key, e := range table {
		code, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			log.Fatalf("szerrors.json: bad code %q", key)
		}
		if _, ok := classCategory[e.Class]; !ok {
			log.Fatalf("szerrors.json: code %s: unknown class %q", key, e.Class)
		}
		codes = append(codes, code)
		byCode[code] = e
	}
	slices.Sort(codes)

	keyW, valW := 0, 0
	for _, code := range codes {
		if n := len(strconv.FormatInt(code, 10)) + 1; n > keyW {
			keyW = n
		}
		if n := len(classCategory[byCode[code].Class]) + 1; n > valW {
			valW = n
		}
	}

	var b strings.Builder
	b.WriteString("// Code generated by gen/main.go from szerrors.json. DO NOT EDIT.\n\n")
	b.WriteString("package szerror\n\n")
	b.WriteString("// codeCategory maps native return codes to error categories.\n")
	b.WriteString("var codeCategory = map[int64]Category{\n")
	for _, code := range codes {
		e := byCode[code]
		fmt.Fprintf(&b, "\t%-*s %-*s // %s\n",
			keyW, strconv.FormatInt(code, 10)+":",
			valW, classCategory[e.Class]+",",
			e.Comment)
	}
	b.WriteString("}\n")

	if err := os.WriteFile("codes_generated.go", []byte(b.String()), 0o644); err != nil {
		log.Fatal(err)
	}
}
