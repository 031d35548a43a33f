package output

import (
	"encoding/json"
	"strconv"
)

// JSONFormatter serializes the computed document as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) FormatPaystubs(doc *PaystubDocument) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

func (j JSONFormatter) FormatStatement(doc *StatementDocument) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

func intToString(i int) string { return strconv.Itoa(i) }
