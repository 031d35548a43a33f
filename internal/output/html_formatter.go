package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	"github.com/buelldocs/docgen/internal/domain"
)

// HTMLFormatter produces styled, self-contained HTML documents suitable
// for printing or browser preview.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/paystub.html.tmpl
var paystubTemplateSource string

//go:embed templates/statement.html.tmpl
var statementTemplateSource string

var templateFuncs = template.FuncMap{
	"curr":   FormatCurrency,
	"signed": FormatSignedCurrency,
	"date":   FormatDate,
	"mask":   MaskAccountNumber,
	"add":    func(i, j int) int { return i + j },
	"isDeposit": func(kind domain.TransactionKind) bool {
		return kind == domain.Deposit
	},
	"even": func(i int) bool { return i%2 == 0 },
}

var paystubTemplate = template.Must(template.New("paystub").Funcs(templateFuncs).Parse(paystubTemplateSource))

var statementTemplate = template.Must(template.New("statement").Funcs(templateFuncs).Parse(statementTemplateSource))

func (h HTMLFormatter) FormatPaystubs(doc *PaystubDocument) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*PaystubDocument
		GeneratedAt time.Time
	}{doc, time.Now()}
	if err := paystubTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (h HTMLFormatter) FormatStatement(doc *StatementDocument) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*StatementDocument
		GeneratedAt time.Time
	}{doc, time.Now()}
	if err := statementTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
